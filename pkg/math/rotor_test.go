package math

import (
	"math"
	"testing"
)

func vec3Near(a, b Vec3, eps float32) bool {
	return abs(a.X-b.X) < eps && abs(a.Y-b.Y) < eps && abs(a.Z-b.Z) < eps
}

func TestRotorIdentityRotate(t *testing.T) {
	v := Vec3{1, 2, 3}
	if got := RotorIdentity().Rotate(v); got != v {
		t.Errorf("identity rotor moved %v to %v", v, got)
	}
}

func TestRotorAxisAngle(t *testing.T) {
	tests := []struct {
		name string
		axis Vec3
		in   Vec3
		want Vec3
	}{
		{"y90 x->-z", UnitY(), Vec3{1, 0, 0}, Vec3{0, 0, -1}},
		{"y90 z->x", UnitY(), Vec3{0, 0, 1}, Vec3{1, 0, 0}},
		{"x90 y->z", UnitX(), Vec3{0, 1, 0}, Vec3{0, 0, 1}},
		{"z90 x->y", UnitZ(), Vec3{1, 0, 0}, Vec3{0, 1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := RotorFromAxisAngle(tt.axis, float32(math.Pi/2))
			got := r.Rotate(tt.in)
			if !vec3Near(got, tt.want, 1e-5) {
				t.Errorf("Rotate(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRotorConjugateInverts(t *testing.T) {
	r := RotorFromAxisAngle(Vec3{1, 1, 0}.Normalize(), 0.7)
	v := Vec3{3, -2, 5}
	back := r.Conjugate().Rotate(r.Rotate(v))
	if !vec3Near(back, v, 1e-5) {
		t.Errorf("conjugate did not invert: got %v, want %v", back, v)
	}
}

func TestRotorMulComposes(t *testing.T) {
	a := RotorFromAxisAngle(UnitY(), float32(math.Pi/2))
	b := RotorFromAxisAngle(UnitX(), float32(math.Pi/2))
	v := Vec3{0, 0, 1}
	// a.Mul(b) applies b first.
	got := a.Mul(b).Rotate(v)
	want := a.Rotate(b.Rotate(v))
	if !vec3Near(got, want, 1e-5) {
		t.Errorf("composition mismatch: got %v, want %v", got, want)
	}
}

func TestRotorToMat4MatchesRotate(t *testing.T) {
	r := RotorFromAxisAngle(Vec3{1, 2, 3}.Normalize(), 1.1)
	v := Vec3{-1, 4, 2}
	byMat := r.ToMat4().TransformPoint(v)
	byRotor := r.Rotate(v)
	if !vec3Near(byMat, byRotor, 1e-4) {
		t.Errorf("ToMat4 disagrees with Rotate: %v vs %v", byMat, byRotor)
	}
}

func TestRotorNormalizeDegenerate(t *testing.T) {
	if got := (Rotor{}).Normalize(); got != RotorIdentity() {
		t.Errorf("zero rotor should normalize to identity, got %v", got)
	}
}
