package dualcon

import (
	"context"

	"github.com/Faultbox/dualcon-bridge/pkg/mesh"
)

// HullEngine emits the input bounding box, scaled about its center by
// Params.Scale, as a closed quad mesh: eight corners and six outward-facing
// quads. A non-positive scale leaves the box unscaled. It exercises the
// output protocol without doing any remeshing.
type HullEngine struct{}

// hullQuads lists the box faces over corner indices, where bit 0 of a
// corner index selects max X, bit 1 max Y and bit 2 max Z.
var hullQuads = [6]mesh.Quad{
	{0, 2, 3, 1}, // -Z
	{4, 5, 7, 6}, // +Z
	{0, 1, 5, 4}, // -Y
	{2, 6, 7, 3}, // +Y
	{0, 4, 6, 2}, // -X
	{1, 3, 7, 5}, // +X
}

// Remesh implements Engine.
func (HullEngine) Remesh(ctx context.Context, in Input, out Sink) error {
	if in.Bounds.Empty() {
		return out.Allocate(0, 0)
	}
	if err := out.Allocate(8, len(hullQuads)); err != nil {
		return err
	}

	scale := in.Params.Scale
	if scale <= 0 {
		scale = 1
	}
	center := in.Bounds.Center()
	lo, hi := in.Bounds.Min, in.Bounds.Max
	for i := 0; i < 8; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		corner := lo
		if i&1 != 0 {
			corner.X = hi.X
		}
		if i&2 != 0 {
			corner.Y = hi.Y
		}
		if i&4 != 0 {
			corner.Z = hi.Z
		}
		corner = center.Add(corner.Sub(center).Scale(scale))
		if err := out.AddVertex(corner); err != nil {
			return err
		}
	}

	for _, q := range hullQuads {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := out.AddQuad(q); err != nil {
			return err
		}
	}
	return nil
}

// PassthroughEngine copies the input vertices and emits every triangle as
// a degenerate quad whose last corner repeats the third.
type PassthroughEngine struct{}

// Remesh implements Engine.
func (PassthroughEngine) Remesh(ctx context.Context, in Input, out Sink) error {
	m := in.Mesh
	if m == nil {
		m = &mesh.Mesh{}
	}
	if err := out.Allocate(len(m.Vertices), len(m.Triangles)); err != nil {
		return err
	}

	for _, v := range m.Vertices {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := out.AddVertex(v); err != nil {
			return err
		}
	}

	for _, tri := range m.Triangles {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := out.AddQuad(mesh.Quad{tri[0], tri[1], tri[2], tri[2]}); err != nil {
			return err
		}
	}
	return nil
}
