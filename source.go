package trackable

import (
	"bytes"
	"fmt"
	"os"
)

// Open creates a stream over the file at path. The file size is captured
// once, from the file metadata at open time; if the file grows or shrinks
// afterwards the stream's behavior is unspecified.
func Open(path string) (*BodyStream, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	f, err := os.Open(path) //nolint:gosec // G304: path is caller-provided by design
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return NewBodyStream(f, info.Size()), nil
}

// FromBytes creates a stream over an in-memory slice. The total size is the
// slice length; no I/O is performed and construction cannot fail.
func FromBytes(b []byte) *BodyStream {
	return NewBodyStream(bytes.NewReader(b), int64(len(b)))
}
