package math

import (
	"math"
	"testing"
)

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 || m[12] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translation(Vec3{1, 2, 3})
	got := m.Mul(Identity())
	if got != m {
		t.Errorf("M * I = %v, want %v", got, m)
	}
}

func TestMulOrder(t *testing.T) {
	// Translation and a non-uniform axis swap do not commute.
	a := Translation(Vec3{1, 0, 0})
	b := Mat4{
		0, 1, 0, 0,
		1, 0, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	ab := a.Mul(b)
	ba := b.Mul(a)
	if ab == ba {
		t.Fatal("expected non-commuting matrices")
	}
	// a.Mul(b) applies b first: the translation lands untouched in ab.
	if ab.Origin() != (Vec3{1, 0, 0}) {
		t.Errorf("(a*b) origin = %v, want (1,0,0)", ab.Origin())
	}
	if ba.Origin() != (Vec3{0, 1, 0}) {
		t.Errorf("(b*a) origin = %v, want (0,1,0)", ba.Origin())
	}
}

func TestTranslationColumn(t *testing.T) {
	m := Translation(Vec3{5, 10, 15})
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translation column: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestTransformPoint(t *testing.T) {
	m := Translation(Vec3{10, 20, 30})
	got := m.TransformPoint(Vec3{1, 2, 3})
	want := Vec3{11, 22, 33}
	if got != want {
		t.Errorf("TransformPoint: got %v, want %v", got, want)
	}
}

func TestOriginRoundTrip(t *testing.T) {
	m := Translation(Vec3{1, 2, 3})
	if m.Origin() != (Vec3{1, 2, 3}) {
		t.Errorf("Origin() = %v, want (1,2,3)", m.Origin())
	}
	m2 := m.WithOrigin(Vec3{7, 8, 9})
	if m2.Origin() != (Vec3{7, 8, 9}) {
		t.Errorf("WithOrigin origin = %v, want (7,8,9)", m2.Origin())
	}
	// WithOrigin must not touch the caller's copy.
	if m.Origin() != (Vec3{1, 2, 3}) {
		t.Error("WithOrigin mutated its receiver")
	}
}

func TestWithOriginKeepsRotation(t *testing.T) {
	rot := RotorFromAxisAngle(UnitY(), float32(math.Pi/2)).ToMat4()
	moved := rot.WithOrigin(Vec3{1, 2, 3})
	for i := 0; i < 12; i++ {
		if moved[i] != rot[i] {
			t.Fatalf("rotation part changed at %d: got %f, want %f", i, moved[i], rot[i])
		}
	}
}

func TestLookAtViewSpace(t *testing.T) {
	// Camera at origin looking down -Z: view must be identity.
	v := LookAt(Vec3{}, Vec3{0, 0, -1}, UnitY())
	id := Identity()
	for i := range v {
		if abs(v[i]-id[i]) > 1e-6 {
			t.Fatalf("LookAt from origin down -Z: element %d = %f, want %f", i, v[i], id[i])
		}
	}
}

func TestLookAtMovesEyeToOrigin(t *testing.T) {
	eye := Vec3{1, 2, 3}
	v := LookAt(eye, Vec3{1, 2, 0}, UnitY())
	got := v.TransformPoint(eye)
	if abs(got.X) > 1e-5 || abs(got.Y) > 1e-5 || abs(got.Z) > 1e-5 {
		t.Errorf("view matrix should map the eye to the origin, got %v", got)
	}
}

func TestPerspective(t *testing.T) {
	p := Perspective(float32(math.Pi/2), 1, 0.1, 100)
	// 90 degree fov, aspect 1: focal length 1 on the diagonal.
	if abs(p[0]-1) > 1e-5 || abs(p[5]-1) > 1e-5 {
		t.Errorf("Perspective focal terms: got (%f, %f), want (1, 1)", p[0], p[5])
	}
	if p[11] != -1 {
		t.Errorf("Perspective w row: got %f, want -1", p[11])
	}
}

func TestMulVec4(t *testing.T) {
	m := Translation(Vec3{1, 2, 3})
	got := m.MulVec4(Vec4{0, 0, 0, 1})
	want := Vec4{1, 2, 3, 1}
	if got != want {
		t.Errorf("MulVec4: got %v, want %v", got, want)
	}
	// Directions (w=0) ignore the translation.
	dir := m.MulVec4(Vec4{1, 0, 0, 0})
	if dir != (Vec4{1, 0, 0, 0}) {
		t.Errorf("MulVec4 direction: got %v, want (1,0,0,0)", dir)
	}
}
