package mesh

import "github.com/Faultbox/dualcon-bridge/pkg/math"

// boundsSentinel seeds an empty box so that Min > Max on every axis.
const boundsSentinel = 1.0e30

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min, Max math.Vec3
}

// EmptyBounds returns the inverted box used for a mesh without vertices.
func EmptyBounds() Bounds {
	return Bounds{
		Min: math.Splat(boundsSentinel),
		Max: math.Splat(-boundsSentinel),
	}
}

// ComputeBounds returns the per-axis min and max over vertices in a single
// pass. An empty slice yields EmptyBounds. A NaN coordinate in any vertex
// makes that axis of both Min and Max NaN.
func ComputeBounds(vertices []math.Vec3) Bounds {
	if len(vertices) == 0 {
		return EmptyBounds()
	}
	b := Bounds{Min: vertices[0], Max: vertices[0]}
	for _, v := range vertices[1:] {
		b.Min = b.Min.Min(v)
		b.Max = b.Max.Max(v)
	}
	return b
}

// Empty reports whether the box is inverted on any axis.
func (b Bounds) Empty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Contains reports whether v lies inside the box, boundary included.
func (b Bounds) Contains(v math.Vec3) bool {
	for i := 0; i < 3; i++ {
		if v.At(i) < b.Min.At(i) || v.At(i) > b.Max.At(i) {
			return false
		}
	}
	return true
}

// Size returns the extent of the box on each axis.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Center returns the midpoint of the box.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}
