package trackable

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeStore struct {
	bucket string
	key    string
	body   []byte
	size   int64
	etag   string
	err    error
}

func (f *fakeStore) Put(_ context.Context, bucket, key string, body io.Reader, size int64) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	f.bucket = bucket
	f.key = key
	f.body = data
	f.size = size
	return f.etag, nil
}

func TestUploader_Put(t *testing.T) {
	t.Parallel()

	data := []byte("the quick brown fox")
	store := &fakeStore{etag: "abc123"}
	u := &Uploader{store: store, logger: discardLogger()}

	var events []progressEvent
	stream := FromBytes(data).WithCallback(recordEvents(&events))

	result, err := u.Put(context.Background(), "my-bucket", "fox.txt", stream)
	require.NoError(t, err)

	assert.Equal(t, "my-bucket", result.Bucket)
	assert.Equal(t, "fox.txt", result.Key)
	assert.Equal(t, int64(len(data)), result.Size)
	assert.Equal(t, "abc123", result.ETag)

	assert.Equal(t, data, store.body)
	assert.Equal(t, int64(len(data)), store.size)

	require.Len(t, events, 1)
	assert.Equal(t, int64(len(data)), events[0].sent)
}

func TestUploader_PutStoreError(t *testing.T) {
	t.Parallel()

	storeErr := errors.New("access denied")
	u := &Uploader{store: &fakeStore{err: storeErr}, logger: discardLogger()}

	result, err := u.Put(context.Background(), "my-bucket", "key", FromBytes([]byte("data")))
	require.ErrorIs(t, err, storeErr)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "put my-bucket/key")
}

func TestUploader_PutConsumedStream(t *testing.T) {
	t.Parallel()

	u := &Uploader{store: &fakeStore{}, logger: discardLogger()}

	stream := FromBytes([]byte("data"))
	_, err := stream.UploadBody()
	require.NoError(t, err)

	_, err = u.Put(context.Background(), "bucket", "key", stream)
	assert.ErrorIs(t, err, ErrStreamConsumed)
}
