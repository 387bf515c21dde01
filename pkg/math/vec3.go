// Package math provides the small vector types used by the mesh bridge.
package math

import "math"

// Vec3 is a 3D vector of single-precision coordinates.
type Vec3 struct {
	X, Y, Z float32
}

// Splat returns a vector with all three components set to s.
func Splat(s float32) Vec3 {
	return Vec3{s, s, s}
}

// At returns the component for axis i (0 = X, 1 = Y, 2 = Z).
func (v Vec3) At(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * scalar.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Min returns the per-axis minimum of v and other. A NaN component in
// either operand yields NaN on that axis.
func (v Vec3) Min(other Vec3) Vec3 {
	if other.X < v.X || other.X != other.X {
		v.X = other.X
	}
	if other.Y < v.Y || other.Y != other.Y {
		v.Y = other.Y
	}
	if other.Z < v.Z || other.Z != other.Z {
		v.Z = other.Z
	}
	return v
}

// Max returns the per-axis maximum of v and other, with the same NaN rule
// as Min.
func (v Vec3) Max(other Vec3) Vec3 {
	if other.X > v.X || other.X != other.X {
		v.X = other.X
	}
	if other.Y > v.Y || other.Y != other.Y {
		v.Y = other.Y
	}
	if other.Z > v.Z || other.Z != other.Z {
		v.Z = other.Z
	}
	return v
}

// HasNaN reports whether any component is NaN.
func (v Vec3) HasNaN() bool {
	return v.X != v.X || v.Y != v.Y || v.Z != v.Z
}

// Length returns the magnitude.
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}
