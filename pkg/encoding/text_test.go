package encoding

import (
	"io"
	"strings"
	"testing"
)

func TestNewTextReader(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "v 1 2 3\n", "v 1 2 3\n"},
		{"utf8 bom", "\xef\xbb\xbfv 1 2 3\n", "v 1 2 3\n"},
		{"utf16le bom", "\xff\xfev\x00 \x001\x00\n\x00", "v 1\n"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := io.ReadAll(NewTextReader(strings.NewReader(tt.input)))
			if err != nil {
				t.Fatalf("read failed: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
