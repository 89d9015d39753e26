package trackable

import "errors"

// Sentinel errors for common failure conditions.
var (
	// ErrInvalidChunkSize indicates a chunk size of zero or less was requested.
	ErrInvalidChunkSize = errors.New("trackable: invalid chunk size")

	// ErrStreamStarted indicates a configuration change was attempted after
	// the stream produced its first chunk.
	ErrStreamStarted = errors.New("trackable: stream already started")

	// ErrStreamConsumed indicates the stream was already converted to an
	// upload body and can no longer be pulled or converted again.
	ErrStreamConsumed = errors.New("trackable: stream already consumed")

	// ErrTransfer indicates a read against the source failed after the
	// stream was constructed. The underlying I/O error is included in the
	// message of the wrapping error.
	ErrTransfer = errors.New("trackable: transfer failed")
)
