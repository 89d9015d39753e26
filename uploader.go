package trackable

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/sapessi/trackable/internal/s3remote"
)

// PutResult describes a completed upload.
type PutResult struct {
	Bucket string
	Key    string
	Size   int64
	ETag   string
}

// Uploader sends body streams to an S3 bucket.
type Uploader struct {
	store  objectStore
	logger *slog.Logger

	// configuration passed to s3remote
	region    string
	endpoint  string
	accessKey string
	secretKey string
}

// NewUploader creates an uploader backed by the AWS SDK.
//
// By default, credentials and region are resolved the way the SDK does
// (environment, shared config, instance metadata). Use WithRegion,
// WithEndpoint, and WithStaticCredentials to override, e.g. for
// S3-compatible stores.
func NewUploader(ctx context.Context, opts ...UploaderOption) (*Uploader, error) {
	u := &Uploader{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		if err := opt(u); err != nil {
			return nil, err
		}
	}

	if u.store == nil {
		var remoteOpts []s3remote.Option
		if u.region != "" {
			remoteOpts = append(remoteOpts, s3remote.WithRegion(u.region))
		}
		if u.endpoint != "" {
			remoteOpts = append(remoteOpts, s3remote.WithEndpoint(u.endpoint))
		}
		if u.accessKey != "" {
			remoteOpts = append(remoteOpts, s3remote.WithStaticCredentials(u.accessKey, u.secretKey))
		}

		store, err := s3remote.New(ctx, remoteOpts...)
		if err != nil {
			return nil, fmt.Errorf("create s3 client: %w", err)
		}
		u.store = store
	}

	return u, nil
}

// Put uploads the stream to bucket under key. The stream is consumed: it is
// converted to an upload body, sent with its declared content length, and
// its source is closed before Put returns. The stream's callback observes
// the transfer as the SDK drains the body.
func (u *Uploader) Put(ctx context.Context, bucket, key string, stream *BodyStream) (*PutResult, error) {
	body, err := stream.UploadBody()
	if err != nil {
		return nil, err
	}
	defer body.Close()

	size := body.ContentLength()
	u.logger.Debug("uploading object", "bucket", bucket, "key", key, "size", size)

	etag, err := u.store.Put(ctx, bucket, key, body, size)
	if err != nil {
		return nil, fmt.Errorf("put %s/%s: %w", bucket, key, err)
	}

	u.logger.Debug("upload complete", "bucket", bucket, "key", key, "etag", etag)

	return &PutResult{
		Bucket: bucket,
		Key:    key,
		Size:   size,
		ETag:   etag,
	}, nil
}
