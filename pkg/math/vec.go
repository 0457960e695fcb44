// Package math provides the vector, matrix and rotor types used by the
// editor's camera and view pipeline. Matrices are column-major float32,
// matching the layout the GPU uniform block expects.
package math

import "math"

// Vec3 is a 3D vector (world-space positions and directions).
type Vec3 struct {
	X, Y, Z float32
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude.
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.Dot(v))))
}

// Normalize returns a unit vector, or the zero vector unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Homogeneous returns the vector as a homogeneous point (w = 1).
func (v Vec3) Homogeneous() Vec4 {
	return Vec4{v.X, v.Y, v.Z, 1}
}

// Vec4 is a 4-component vector, used for homogeneous points in the
// camera uniform block.
type Vec4 struct {
	X, Y, Z, W float32
}

// Vec3 drops the w component.
func (v Vec4) Vec3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// UnitX returns the world-space x axis.
func UnitX() Vec3 { return Vec3{X: 1} }

// UnitY returns the world-space y axis.
func UnitY() Vec3 { return Vec3{Y: 1} }

// UnitZ returns the world-space z axis.
func UnitZ() Vec3 { return Vec3{Z: 1} }
