package trackable

import "log/slog"

// UploaderOption configures an Uploader.
type UploaderOption func(*Uploader) error

// WithRegion sets the AWS region for the uploader.
func WithRegion(region string) UploaderOption {
	return func(u *Uploader) error {
		u.region = region
		return nil
	}
}

// WithEndpoint sets a custom S3 endpoint, e.g. for MinIO or other
// S3-compatible stores. Requests to a custom endpoint use path-style
// addressing.
func WithEndpoint(endpoint string) UploaderOption {
	return func(u *Uploader) error {
		u.endpoint = endpoint
		return nil
	}
}

// WithStaticCredentials sets explicit credentials instead of the SDK's
// default resolution chain.
func WithStaticCredentials(accessKey, secretKey string) UploaderOption {
	return func(u *Uploader) error {
		u.accessKey = accessKey
		u.secretKey = secretKey
		return nil
	}
}

// WithLogger sets a logger for the uploader. By default, logging is disabled.
func WithLogger(logger *slog.Logger) UploaderOption {
	return func(u *Uploader) error {
		u.logger = logger
		return nil
	}
}
