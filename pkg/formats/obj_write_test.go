package formats

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/dualcon-bridge/pkg/math"
	"github.com/Faultbox/dualcon-bridge/pkg/mesh"
)

func TestWriteOBJ(t *testing.T) {
	q := &mesh.QuadMesh{
		Vertices: []math.Vec3{{X: 1.0, Y: 2.0, Z: 3.0}},
		Quads:    []mesh.Quad{{0, 1, 2, 3}},
	}

	var buf bytes.Buffer
	if err := WriteOBJ(&buf, q); err != nil {
		t.Fatalf("WriteOBJ failed: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	if lines[0] != "v 1.000000 2.000000 3.000000" {
		t.Errorf("vertex line = %q", lines[0])
	}
	if lines[1] != "f 1 2 3 4" {
		t.Errorf("face line = %q", lines[1])
	}
}

func TestWriteOBJVerticesBeforeFaces(t *testing.T) {
	q := &mesh.QuadMesh{
		Vertices: []math.Vec3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: -0.5, Y: 0.25, Z: 8}},
		Quads:    []mesh.Quad{{0, 1, 2, 3}, {4, 3, 2, 1}},
	}

	var buf bytes.Buffer
	if err := WriteOBJ(&buf, q); err != nil {
		t.Fatalf("WriteOBJ failed: %v", err)
	}

	want := `v 0.000000 0.000000 0.000000
v 1.000000 0.000000 0.000000
v 1.000000 1.000000 0.000000
v 0.000000 1.000000 0.000000
v -0.500000 0.250000 8.000000
f 1 2 3 4
f 5 4 3 2
`
	if buf.String() != want {
		t.Errorf("output mismatch:\ngot:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestWriteOBJEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOBJ(&buf, &mesh.QuadMesh{}); err != nil {
		t.Fatalf("WriteOBJ failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected empty output, got %q", buf.String())
	}
}

type errWriter struct{}

func (errWriter) Write(p []byte) (int, error) {
	return 0, errors.New("no space left on device")
}

func TestWriteOBJWriteError(t *testing.T) {
	q := &mesh.QuadMesh{Vertices: []math.Vec3{{X: 1, Y: 2, Z: 3}}}
	err := WriteOBJ(errWriter{}, q)
	if !errors.Is(err, mesh.ErrIO) {
		t.Errorf("expected ErrIO, got %v", err)
	}
}

func TestWriteOBJFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.obj")
	q := &mesh.QuadMesh{
		Vertices: []math.Vec3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0}},
		Quads:    []mesh.Quad{{0, 1, 2, 3}},
	}

	if err := WriteOBJFile(path, q); err != nil {
		t.Fatalf("WriteOBJFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if !strings.HasSuffix(string(data), "f 1 2 3 4\n") {
		t.Errorf("unexpected output: %q", data)
	}

	// Quad faces are not triangles, so the triangle reader rejects them.
	if _, err := ReadOBJFile(path); !errors.Is(err, mesh.ErrMalformedMesh) {
		t.Errorf("expected ErrMalformedMesh reading quads, got %v", err)
	}
}

func TestWriteOBJFileBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "out.obj")
	err := WriteOBJFile(path, &mesh.QuadMesh{})
	if !errors.Is(err, mesh.ErrIO) {
		t.Errorf("expected ErrIO, got %v", err)
	}
}
