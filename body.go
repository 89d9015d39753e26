package trackable

// UploadBody adapts a BodyStream into the io.ReadCloser shape that HTTP
// upload clients expect for their request body. Chunks are served strictly
// in the order the stream produces them, with no duplication or loss; a
// consumer reading with a buffer smaller than the chunk size simply drains
// each chunk across several reads.
type UploadBody struct {
	stream   *BodyStream
	leftover []byte
}

// UploadBody consumes the stream and returns its upload-body form. The
// stream cannot be pulled or converted again afterwards; both report
// ErrStreamConsumed.
func (s *BodyStream) UploadBody() (*UploadBody, error) {
	if s.consumed {
		return nil, ErrStreamConsumed
	}
	s.consumed = true
	return &UploadBody{stream: s}, nil
}

// ContentLength returns the total declared size of the underlying source.
func (b *UploadBody) ContentLength() int64 {
	return b.stream.ContentLength()
}

// Read implements io.Reader. Progress callbacks fire per produced chunk, not
// per Read call.
func (b *UploadBody) Read(p []byte) (int, error) {
	if len(b.leftover) == 0 {
		chunk, err := b.stream.next()
		if err != nil {
			return 0, err
		}
		b.leftover = chunk
	}
	n := copy(p, b.leftover)
	b.leftover = b.leftover[n:]
	return n, nil
}

// Close releases the stream's underlying source.
func (b *UploadBody) Close() error {
	return b.stream.Close()
}
