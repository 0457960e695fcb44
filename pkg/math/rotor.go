package math

import "math"

// Rotor represents a 3D rotation as a unit quaternion. The camera stores
// its orientation as a Rotor; the view matrix and the drag controller's
// orientation snapshots are derived from it.
// Components are X, Y, Z, W with W the scalar part.
type Rotor struct {
	X, Y, Z, W float32
}

// RotorIdentity returns the identity rotation.
func RotorIdentity() Rotor {
	return Rotor{W: 1}
}

// RotorFromAxisAngle builds a rotor rotating by angle radians around axis.
// axis must be normalized.
func RotorFromAxisAngle(axis Vec3, angle float32) Rotor {
	half := float64(angle) / 2
	s := float32(math.Sin(half))
	return Rotor{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: float32(math.Cos(half)),
	}
}

// Mul composes two rotations: (r.Mul(other)) applies other first, then r.
func (r Rotor) Mul(other Rotor) Rotor {
	return Rotor{
		X: r.W*other.X + r.X*other.W + r.Y*other.Z - r.Z*other.Y,
		Y: r.W*other.Y - r.X*other.Z + r.Y*other.W + r.Z*other.X,
		Z: r.W*other.Z + r.X*other.Y - r.Y*other.X + r.Z*other.W,
		W: r.W*other.W - r.X*other.X - r.Y*other.Y - r.Z*other.Z,
	}
}

// Conjugate returns the inverse rotation (for a unit rotor).
func (r Rotor) Conjugate() Rotor {
	return Rotor{X: -r.X, Y: -r.Y, Z: -r.Z, W: r.W}
}

// Normalize returns a unit rotor, falling back to identity when the
// magnitude degenerates.
func (r Rotor) Normalize() Rotor {
	l := float32(math.Sqrt(float64(r.X*r.X + r.Y*r.Y + r.Z*r.Z + r.W*r.W)))
	if l < 1e-6 {
		return RotorIdentity()
	}
	inv := 1 / l
	return Rotor{X: r.X * inv, Y: r.Y * inv, Z: r.Z * inv, W: r.W * inv}
}

// Rotate applies the rotation to a vector: r * v * r⁻¹.
func (r Rotor) Rotate(v Vec3) Vec3 {
	// q * (v, 0)
	ix := r.W*v.X + r.Y*v.Z - r.Z*v.Y
	iy := r.W*v.Y + r.Z*v.X - r.X*v.Z
	iz := r.W*v.Z + r.X*v.Y - r.Y*v.X
	iw := -r.X*v.X - r.Y*v.Y - r.Z*v.Z

	// ... * q⁻¹
	return Vec3{
		X: ix*r.W + iw*-r.X + iy*-r.Z - iz*-r.Y,
		Y: iy*r.W + iw*-r.Y + iz*-r.X - ix*-r.Z,
		Z: iz*r.W + iw*-r.Z + ix*-r.Y - iy*-r.X,
	}
}

// ToMat4 converts the rotor to a homogeneous rotation matrix.
func (r Rotor) ToMat4() Mat4 {
	r = r.Normalize()

	xx := r.X * r.X
	xy := r.X * r.Y
	xz := r.X * r.Z
	xw := r.X * r.W
	yy := r.Y * r.Y
	yz := r.Y * r.Z
	yw := r.Y * r.W
	zz := r.Z * r.Z
	zw := r.Z * r.W

	return Mat4{
		1 - 2*(yy+zz), 2 * (xy + zw), 2 * (xz - yw), 0,
		2 * (xy - zw), 1 - 2*(xx+zz), 2 * (yz + xw), 0,
		2 * (xz + yw), 2 * (yz - xw), 1 - 2*(xx+yy), 0,
		0, 0, 0, 1,
	}
}
