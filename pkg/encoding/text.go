// Package encoding provides text decoding for line-oriented mesh files.
package encoding

import (
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// NewTextReader wraps r so that it yields UTF-8 without a byte order mark.
// Files saved with a UTF-8 BOM have it stripped; files with a UTF-16 BOM are
// transcoded. Input without a BOM passes through as UTF-8.
func NewTextReader(r io.Reader) io.Reader {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	return transform.NewReader(r, decoder)
}
