package mesh

import "errors"

// Error taxonomy shared by the reader, writer, builder and driver.
var (
	// ErrIO reports a failed open, read, seek, write or close of a mesh stream.
	ErrIO = errors.New("mesh i/o error")
	// ErrMalformedMesh reports a structural violation in mesh data.
	ErrMalformedMesh = errors.New("malformed mesh")
	// ErrOutOfMemory reports a buffer that could not be sized or allocated.
	ErrOutOfMemory = errors.New("out of memory")
	// ErrEngineProtocol reports a broken output-construction contract
	// between the remeshing engine and the builder.
	ErrEngineProtocol = errors.New("engine protocol violation")
)
