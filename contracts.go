package trackable

import (
	"context"
	"io"
)

type objectStore interface {
	Put(ctx context.Context, bucket, key string, body io.Reader, size int64) (etag string, err error)
}
