package mesh

import (
	"fmt"

	"github.com/Faultbox/dualcon-bridge/pkg/math"
)

// Builder assembles a QuadMesh from the allocate / add-vertex / add-quad
// callbacks a remeshing engine issues during its own traversal.
//
// Allocate must come first and exactly once. Its counts are final: the
// buffers are never resized, and every append is checked against them.
// The first contract violation is latched and returned by every later call.
type Builder struct {
	// Limit caps the declared counts. Zero means MaxElements.
	Limit int

	allocated    bool
	vertices     []math.Vec3
	quads        []Quad
	vertexCursor int
	quadCursor   int
	err          error
}

// NewBuilder returns a builder in the uninitialized state.
func NewBuilder() *Builder {
	return &Builder{}
}

// Allocate sizes the output for exactly vertexCount vertices and quadCount
// quads and resets both cursors.
func (b *Builder) Allocate(vertexCount, quadCount int) error {
	if b.err != nil {
		return b.err
	}
	if b.allocated {
		return b.fail(fmt.Errorf("%w: allocate called twice", ErrEngineProtocol))
	}
	if vertexCount < 0 || quadCount < 0 {
		return b.fail(fmt.Errorf("%w: negative allocation (%d vertices, %d quads)", ErrEngineProtocol, vertexCount, quadCount))
	}

	limit := b.Limit
	if limit <= 0 {
		limit = MaxElements
	}
	vertices, err := Alloc[math.Vec3](vertexCount, limit)
	if err != nil {
		return b.fail(fmt.Errorf("output vertices: %w", err))
	}
	quads, err := Alloc[Quad](quadCount, limit)
	if err != nil {
		return b.fail(fmt.Errorf("output quads: %w", err))
	}

	b.vertices = vertices
	b.quads = quads
	b.vertexCursor = 0
	b.quadCursor = 0
	b.allocated = true
	return nil
}

// AddVertex appends a vertex position at the vertex cursor.
func (b *Builder) AddVertex(co math.Vec3) error {
	if err := b.ready("add vertex"); err != nil {
		return err
	}
	if b.vertexCursor >= len(b.vertices) {
		return b.fail(fmt.Errorf("%w: vertex %d exceeds declared count %d", ErrEngineProtocol, b.vertexCursor, len(b.vertices)))
	}
	b.vertices[b.vertexCursor] = co
	b.vertexCursor++
	return nil
}

// AddQuad appends four vertex indices at the quad cursor.
func (b *Builder) AddQuad(indices Quad) error {
	if err := b.ready("add quad"); err != nil {
		return err
	}
	if b.quadCursor >= len(b.quads) {
		return b.fail(fmt.Errorf("%w: quad %d exceeds declared count %d", ErrEngineProtocol, b.quadCursor, len(b.quads)))
	}
	b.quads[b.quadCursor] = indices
	b.quadCursor++
	return nil
}

// Err returns the first contract violation, if any.
func (b *Builder) Err() error {
	return b.err
}

// Allocated reports whether Allocate has succeeded.
func (b *Builder) Allocated() bool {
	return b.allocated
}

// Declared returns the counts passed to Allocate.
func (b *Builder) Declared() (vertices, quads int) {
	return len(b.vertices), len(b.quads)
}

// Cursors returns the number of vertices and quads appended so far.
func (b *Builder) Cursors() (vertices, quads int) {
	return b.vertexCursor, b.quadCursor
}

// Complete reports whether both cursors reached the declared counts.
func (b *Builder) Complete() bool {
	return b.allocated && b.vertexCursor == len(b.vertices) && b.quadCursor == len(b.quads)
}

// Result returns the output truncated to the cursor values. The cursors,
// not the declared counts, are authoritative.
func (b *Builder) Result() (*QuadMesh, error) {
	if b.err != nil {
		return nil, b.err
	}
	if !b.allocated {
		return nil, fmt.Errorf("%w: engine returned without allocating output", ErrEngineProtocol)
	}
	return &QuadMesh{
		Vertices: b.vertices[:b.vertexCursor],
		Quads:    b.quads[:b.quadCursor],
	}, nil
}

func (b *Builder) ready(op string) error {
	if b.err != nil {
		return b.err
	}
	if !b.allocated {
		return b.fail(fmt.Errorf("%w: %s before allocate", ErrEngineProtocol, op))
	}
	return nil
}

func (b *Builder) fail(err error) error {
	b.err = err
	return err
}
