// Package mesh holds the mesh buffers exchanged with the remeshing engine,
// the bounding-box computation and the output-construction builder.
package mesh

import (
	"fmt"
	"runtime"

	"github.com/Faultbox/dualcon-bridge/pkg/math"
)

// MaxElements caps the length of any single buffer allocated from a count
// read from a file or declared by an engine.
const MaxElements = 1 << 28

// Triangle is three 0-based vertex indices.
type Triangle [3]uint32

// Quad is four 0-based vertex indices.
type Quad [4]uint32

// Mesh is a triangulated input surface. Its buffers are sized exactly once,
// when the vertex and triangle counts are known.
type Mesh struct {
	Vertices  []math.Vec3
	Triangles []Triangle
	// Loops is an optional per-vertex loop index array. Nil unless requested.
	Loops []uint32
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// WithIdentityLoops fills Loops with the identity mapping Loops[i] = i.
func (m *Mesh) WithIdentityLoops() error {
	loops, err := Alloc[uint32](len(m.Vertices), MaxElements)
	if err != nil {
		return fmt.Errorf("loop buffer: %w", err)
	}
	for i := range loops {
		loops[i] = uint32(i)
	}
	m.Loops = loops
	return nil
}

// Validate checks that every triangle index lies in [0, VertexCount).
func (m *Mesh) Validate() error {
	n := uint32(len(m.Vertices))
	for i, tri := range m.Triangles {
		for _, idx := range tri {
			if idx >= n {
				return fmt.Errorf("%w: triangle %d references vertex %d of %d", ErrMalformedMesh, i, idx, n)
			}
		}
	}
	return nil
}

// QuadMesh is the engine's output: a vertex table followed by quads.
type QuadMesh struct {
	Vertices []math.Vec3
	Quads    []Quad
}

// Validate checks that every quad index lies in [0, len(Vertices)).
func (q *QuadMesh) Validate() error {
	n := uint32(len(q.Vertices))
	for i, quad := range q.Quads {
		for _, idx := range quad {
			if idx >= n {
				return fmt.Errorf("%w: quad %d references vertex %d of %d", ErrMalformedMesh, i, idx, n)
			}
		}
	}
	return nil
}

// Alloc returns a zeroed slice of exactly n elements. Counts that are
// negative or above limit, and allocations the runtime refuses, are
// reported as ErrOutOfMemory instead of crashing the process.
func Alloc[T any](n, limit int) (s []T, err error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrOutOfMemory, n)
	}
	if limit > 0 && n > limit {
		return nil, fmt.Errorf("%w: %d elements exceeds limit %d", ErrOutOfMemory, n, limit)
	}
	defer func() {
		if r := recover(); r != nil {
			if re, ok := r.(runtime.Error); ok {
				s, err = nil, fmt.Errorf("%w: %v", ErrOutOfMemory, re)
				return
			}
			panic(r)
		}
	}()
	return make([]T, n), nil
}
