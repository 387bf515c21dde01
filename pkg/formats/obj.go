package formats

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"github.com/Faultbox/dualcon-bridge/pkg/encoding"
	"github.com/Faultbox/dualcon-bridge/pkg/math"
	"github.com/Faultbox/dualcon-bridge/pkg/mesh"
)

// MaxLineBytes is the longest OBJ line the reader accepts.
const MaxLineBytes = 1 << 20

// OBJCounts holds the element counts found by the OBJ count pass.
type OBJCounts struct {
	Vertices  int
	Triangles int
}

// OBJReader reads triangle meshes from OBJ text in two passes: a count pass
// that sizes the buffers exactly, then a fill pass over the rewound stream.
// Only "v x y z" and "f a b c" lines are used; all other lines are ignored.
type OBJReader struct {
	// MaxElements caps each buffer. Zero means mesh.MaxElements.
	MaxElements int
}

// ReadOBJ reads a triangle mesh with the default reader settings.
func ReadOBJ(r io.ReadSeeker) (*mesh.Mesh, error) {
	return OBJReader{}.Read(r)
}

// ReadOBJFile opens path, reads a triangle mesh from it and closes it.
func ReadOBJFile(path string) (*mesh.Mesh, error) {
	return OBJReader{}.ReadFile(path)
}

// ReadFile opens path, reads a triangle mesh from it and closes it on every
// path. A close failure is reported alongside any read error.
func (o OBJReader) ReadFile(path string) (m *mesh.Mesh, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %w", mesh.ErrIO, path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			err = multierr.Append(err, fmt.Errorf("%w: closing %s: %w", mesh.ErrIO, path, cerr))
			m = nil
		}
	}()

	m, err = o.Read(file)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return m, nil
}

// CountOBJ runs the count pass alone, from the start of r.
func CountOBJ(r io.ReadSeeker) (OBJCounts, error) {
	var counts OBJCounts
	err := scanOBJ(r, func(lineNo int, fields []string) error {
		switch fields[0] {
		case "v":
			counts.Vertices++
		case "f":
			counts.Triangles++
		}
		return nil
	})
	if err != nil {
		return OBJCounts{}, err
	}
	return counts, nil
}

// Read parses r into a mesh whose buffers hold exactly one entry per "v"
// and "f" line, in file order.
func (o OBJReader) Read(r io.ReadSeeker) (*mesh.Mesh, error) {
	counts, err := CountOBJ(r)
	if err != nil {
		return nil, fmt.Errorf("count pass: %w", err)
	}

	limit := o.MaxElements
	if limit <= 0 {
		limit = mesh.MaxElements
	}
	vertices, err := mesh.Alloc[math.Vec3](counts.Vertices, limit)
	if err != nil {
		return nil, fmt.Errorf("vertex buffer: %w", err)
	}
	triangles, err := mesh.Alloc[mesh.Triangle](counts.Triangles, limit)
	if err != nil {
		return nil, fmt.Errorf("triangle buffer: %w", err)
	}

	vi, ti := 0, 0
	err = scanOBJ(r, func(lineNo int, fields []string) error {
		switch fields[0] {
		case "v":
			if vi >= len(vertices) {
				return fmt.Errorf("%w: line %d: more vertices than counted (%d)", mesh.ErrMalformedMesh, lineNo, len(vertices))
			}
			v, err := parseVertex(fields[1:])
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			vertices[vi] = v
			vi++
		case "f":
			if ti >= len(triangles) {
				return fmt.Errorf("%w: line %d: more faces than counted (%d)", mesh.ErrMalformedMesh, lineNo, len(triangles))
			}
			tri, err := parseTriangle(fields[1:], vi, len(vertices))
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			triangles[ti] = tri
			ti++
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fill pass: %w", err)
	}

	if vi != len(vertices) || ti != len(triangles) {
		return nil, fmt.Errorf("%w: passes disagree: counted %d vertices %d faces, read %d and %d",
			mesh.ErrMalformedMesh, len(vertices), len(triangles), vi, ti)
	}

	return &mesh.Mesh{
		Vertices:  vertices,
		Triangles: triangles,
	}, nil
}

// scanOBJ rewinds r and calls fn for every non-blank line with its 1-based
// line number and whitespace-separated fields. Text from '#' to the end of
// the line is a comment and never reaches fn.
func scanOBJ(r io.ReadSeeker, fn func(lineNo int, fields []string) error) error {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("%w: rewinding: %w", mesh.ErrIO, err)
	}

	scanner := bufio.NewScanner(encoding.NewTextReader(r))
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text, _, _ := strings.Cut(scanner.Text(), "#")
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if err := fn(lineNo, fields); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return fmt.Errorf("%w: line %d longer than %d bytes", mesh.ErrMalformedMesh, lineNo+1, MaxLineBytes)
		}
		return fmt.Errorf("%w: reading line %d: %w", mesh.ErrIO, lineNo+1, err)
	}
	return nil
}

// parseVertex parses exactly three float coordinates.
func parseVertex(fields []string) (math.Vec3, error) {
	if len(fields) != 3 {
		return math.Vec3{}, fmt.Errorf("%w: vertex needs 3 coordinates, got %d", mesh.ErrMalformedMesh, len(fields))
	}
	var co [3]float32
	for i, f := range fields {
		value, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return math.Vec3{}, fmt.Errorf("%w: vertex coordinate %q", mesh.ErrMalformedMesh, f)
		}
		co[i] = float32(value)
	}
	return math.Vec3{X: co[0], Y: co[1], Z: co[2]}, nil
}

// parseTriangle parses exactly three face corners into 0-based indices.
// seen is the number of vertices read so far, used for negative indices.
func parseTriangle(fields []string, seen, vertexCount int) (mesh.Triangle, error) {
	if len(fields) != 3 {
		return mesh.Triangle{}, fmt.Errorf("%w: face needs 3 indices, got %d", mesh.ErrMalformedMesh, len(fields))
	}
	var tri mesh.Triangle
	for i, f := range fields {
		idx, err := parseFaceIndex(f, seen)
		if err != nil {
			return mesh.Triangle{}, err
		}
		if idx >= vertexCount {
			return mesh.Triangle{}, fmt.Errorf("%w: face index %s out of range (%d vertices)", mesh.ErrMalformedMesh, f, vertexCount)
		}
		tri[i] = uint32(idx)
	}
	return tri, nil
}

// parseFaceIndex converts one face corner ("i", "i/t", "i//n" or "i/t/n")
// to a 0-based vertex index. Negative indices count back from seen.
func parseFaceIndex(field string, seen int) (int, error) {
	pos, _, _ := strings.Cut(field, "/")
	n, err := strconv.ParseInt(pos, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: face index %q", mesh.ErrMalformedMesh, field)
	}

	var idx int
	switch {
	case n > 0:
		idx = int(n) - 1
	case n < 0:
		idx = seen + int(n)
	default:
		return 0, fmt.Errorf("%w: face index 0 (indices are 1-based)", mesh.ErrMalformedMesh)
	}
	if idx < 0 {
		return 0, fmt.Errorf("%w: relative face index %s before first vertex", mesh.ErrMalformedMesh, field)
	}
	return idx, nil
}
