// Package dualcon defines the call contract of a dual-contouring remeshing
// engine: what it receives, and the sink it deposits its quad mesh into.
//
// The engine owns traversal order and knows the final output size; the
// caller owns the storage. An engine must call Sink.Allocate exactly once,
// first, with the final vertex and quad counts, then AddVertex and AddQuad
// in any interleaving. Any error returned by the sink is fatal and must be
// returned from Remesh unchanged.
package dualcon

import (
	"context"
	"errors"
	"fmt"
	stdmath "math"
	"strings"

	"github.com/Faultbox/dualcon-bridge/pkg/math"
	"github.com/Faultbox/dualcon-bridge/pkg/mesh"
)

// MaxDepth is the deepest octree an engine is asked to build.
const MaxDepth = 24

// ErrInvalidParams reports remesh parameters outside their valid range.
var ErrInvalidParams = errors.New("invalid remesh parameters")

// Flags is a bit set of engine options.
type Flags uint32

// Flag constants.
const (
	// FloodFill removes disconnected interior pieces from the output.
	FloodFill Flags = 1 << 0
)

// Has reports whether all bits of x are set.
func (f Flags) Has(x Flags) bool {
	return f&x == x
}

// String returns the set flag names joined by "|".
func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	var names []string
	if f.Has(FloodFill) {
		names = append(names, "flood_fill")
		f &^= FloodFill
	}
	if f != 0 {
		names = append(names, fmt.Sprintf("0x%x", uint32(f)))
	}
	return strings.Join(names, "|")
}

// Mode selects how the engine places the output vertex of each cell.
type Mode int

// Mode constants.
const (
	Centroid      Mode = 0 // Cell centroid, blocky output
	MassPoint     Mode = 1 // Mass point of edge intersections, smooth output
	SharpFeatures Mode = 2 // QEF minimizer, preserves edges and corners
)

// String returns the mode name as used in configuration.
func (m Mode) String() string {
	switch m {
	case Centroid:
		return "centroid"
	case MassPoint:
		return "mass_point"
	case SharpFeatures:
		return "sharp"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// ParseMode converts a configuration name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "centroid", "blocks":
		return Centroid, nil
	case "mass_point", "smooth":
		return MassPoint, nil
	case "sharp", "sharp_features":
		return SharpFeatures, nil
	default:
		return 0, fmt.Errorf("%w: unknown mode %q", ErrInvalidParams, s)
	}
}

// Params are the scalar engine parameters.
type Params struct {
	Threshold     float32 // Error threshold for merging cells
	HermiteWeight float32 // Weight of Hermite data in vertex placement
	Scale         float32 // Ratio of the model's largest dimension to the grid size
	Depth         int     // Octree depth
}

// Validate checks that every parameter is finite and in range.
func (p Params) Validate() error {
	for _, v := range []struct {
		name  string
		value float32
	}{
		{"threshold", p.Threshold},
		{"hermite weight", p.HermiteWeight},
		{"scale", p.Scale},
	} {
		if stdmath.IsNaN(float64(v.value)) || stdmath.IsInf(float64(v.value), 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidParams, v.name)
		}
	}
	if p.Threshold < 0 {
		return fmt.Errorf("%w: threshold %g is negative", ErrInvalidParams, p.Threshold)
	}
	if p.HermiteWeight < 0 {
		return fmt.Errorf("%w: hermite weight %g is negative", ErrInvalidParams, p.HermiteWeight)
	}
	if p.Scale <= 0 {
		return fmt.Errorf("%w: scale %g must be positive", ErrInvalidParams, p.Scale)
	}
	if p.Depth < 1 || p.Depth > MaxDepth {
		return fmt.Errorf("%w: octree depth %d not in [1, %d]", ErrInvalidParams, p.Depth, MaxDepth)
	}
	return nil
}

// Input is everything an engine receives besides the output sink.
type Input struct {
	// Mesh is read-only for the duration of the call. Mesh.Loops may be nil.
	Mesh   *mesh.Mesh
	Bounds mesh.Bounds
	Flags  Flags
	Mode   Mode
	Params Params
}

// Sink receives the engine's output. *mesh.Builder implements it.
type Sink interface {
	Allocate(vertexCount, quadCount int) error
	AddVertex(co math.Vec3) error
	AddQuad(indices mesh.Quad) error
}

// Engine is a remeshing engine.
type Engine interface {
	Remesh(ctx context.Context, in Input, out Sink) error
}

// EngineFunc adapts an ordinary function to the Engine interface.
type EngineFunc func(ctx context.Context, in Input, out Sink) error

// Remesh calls f(ctx, in, out).
func (f EngineFunc) Remesh(ctx context.Context, in Input, out Sink) error {
	return f(ctx, in, out)
}
