package trackable

import (
	"fmt"
	"io"
)

// DefaultChunkSize is the buffer size used for each read against the source
// unless overridden with SetChunkSize.
const DefaultChunkSize = 2048

// Callback reports progress after each chunk is produced.
// It receives the total source size, the cumulative bytes read so far, and
// the length of the chunk that was just produced. It is invoked synchronously
// from the pulling goroutine; implementations that touch shared UI state must
// handle their own synchronization.
type Callback func(totalBytes, bytesRead, chunkBytes int64)

// BodyStream wraps a readable source with a known total size and produces it
// as a sequence of byte chunks, firing an optional progress callback after
// every chunk. It is the upload-side counterpart of a progress bar: hand the
// stream to an upload client and let the callback drive the UI.
//
// A BodyStream is consumed exactly once, by repeated calls to Next or by
// converting it to an UploadBody. Pulls are strictly sequential; the stream
// performs no internal locking and must not be shared across goroutines.
type BodyStream struct {
	source    io.Reader
	totalSize int64
	bytesRead int64
	chunkSize int
	callback  Callback

	done     bool
	consumed bool
	err      error
}

// NewBodyStream creates a stream over an arbitrary reader with a declared
// total size. The stream takes ownership of r; if r implements io.Closer it
// is closed by Close.
func NewBodyStream(r io.Reader, size int64) *BodyStream {
	return &BodyStream{
		source:    r,
		totalSize: size,
		chunkSize: DefaultChunkSize,
	}
}

// WithCallback sets the progress callback and returns the stream, for
// builder-style construction. A previously installed callback is replaced.
func (s *BodyStream) WithCallback(cb Callback) *BodyStream {
	s.callback = cb
	return s
}

// SetCallback sets the progress callback. A previously installed callback is
// replaced; the new callback applies to chunks produced afterwards.
func (s *BodyStream) SetCallback(cb Callback) {
	s.callback = cb
}

// SetChunkSize overrides the default read-chunk size. It returns
// ErrInvalidChunkSize for n <= 0 (a zero-size read would never observe the
// end of the source) and ErrStreamStarted once consumption has begun.
func (s *BodyStream) SetChunkSize(n int) error {
	if n <= 0 {
		return ErrInvalidChunkSize
	}
	if s.consumed || s.done || s.err != nil || s.bytesRead > 0 {
		return ErrStreamStarted
	}
	s.chunkSize = n
	return nil
}

// ContentLength returns the total declared size of the source. Upload clients
// should pass this alongside the body so the transfer has a known length;
// some servers reject large objects sent with a chunked-transfer fallback.
func (s *BodyStream) ContentLength() int64 {
	return s.totalSize
}

// SizeHint reports an estimate of the bytes still to be produced: at least
// totalSize-bytesRead and at most totalSize. It is a hint for consumers that
// pre-size buffers, not a guarantee.
func (s *BodyStream) SizeHint() (atLeast, atMost int64) {
	return s.totalSize - s.bytesRead, s.totalSize
}

// Next produces the next chunk of the source.
//
// It returns a chunk of at most the configured chunk size, truncated to the
// bytes actually read. A clean end of source is reported as io.EOF; a read
// failure is reported as a terminal error wrapping ErrTransfer. Both terminal
// results are idempotent: further calls return the same signal without
// touching the source. The progress callback, if set, fires after the
// stream's counters are updated and before the chunk is returned.
func (s *BodyStream) Next() ([]byte, error) {
	if s.consumed {
		return nil, ErrStreamConsumed
	}
	return s.next()
}

func (s *BodyStream) next() ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.done {
		return nil, io.EOF
	}

	buf := make([]byte, s.chunkSize)
	n, err := io.ReadFull(s.source, buf)
	switch {
	case err == io.EOF:
		// Zero bytes read: clean end. No callback for the terminal pull.
		s.done = true
		return nil, io.EOF
	case err == io.ErrUnexpectedEOF:
		// Short final chunk. The source is exhausted, so the next pull
		// must not read it again.
		s.done = true
	case err != nil:
		s.err = fmt.Errorf("%w: %v", ErrTransfer, err)
		return nil, s.err
	}

	s.bytesRead += int64(n)
	if s.callback != nil {
		s.callback(s.totalSize, s.bytesRead, int64(n))
	}
	// Truncate to the bytes actually read so no stale trailing bytes from
	// the allocation ever reach the consumer.
	return buf[:n], nil
}

// Close releases the underlying source if it implements io.Closer.
func (s *BodyStream) Close() error {
	if closer, ok := s.source.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
