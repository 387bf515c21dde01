// Package formats reads and writes the line-oriented OBJ mesh text exchanged
// with the remeshing engine: triangle meshes in, quad meshes out.
package formats
