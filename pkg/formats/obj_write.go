package formats

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"

	"github.com/Faultbox/dualcon-bridge/pkg/mesh"
)

// WriteOBJ writes q as OBJ text: every vertex as "v x y z", then every quad
// as "f a b c d" with 1-based indices. Indices are written as given; callers
// check them with QuadMesh.Validate. Partial output is not rolled back.
func WriteOBJ(w io.Writer, q *mesh.QuadMesh) error {
	bw := bufio.NewWriter(w)

	for _, v := range q.Vertices {
		if _, err := fmt.Fprintf(bw, "v %f %f %f\n", v.X, v.Y, v.Z); err != nil {
			return fmt.Errorf("%w: writing vertex: %w", mesh.ErrIO, err)
		}
	}

	for _, quad := range q.Quads {
		if _, err := fmt.Fprintf(bw, "f %d %d %d %d\n",
			uint64(quad[0])+1,
			uint64(quad[1])+1,
			uint64(quad[2])+1,
			uint64(quad[3])+1); err != nil {
			return fmt.Errorf("%w: writing face: %w", mesh.ErrIO, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: flushing: %w", mesh.ErrIO, err)
	}
	return nil
}

// WriteOBJFile creates (or truncates) path and writes q to it.
func WriteOBJFile(path string, q *mesh.QuadMesh) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: creating %s: %w", mesh.ErrIO, path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			err = multierr.Append(err, fmt.Errorf("%w: closing %s: %w", mesh.ErrIO, path, cerr))
		}
	}()

	if err := WriteOBJ(file, q); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
