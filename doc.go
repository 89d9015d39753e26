// Package trackable wraps a readable source as a progress-observable upload
// body for S3.
//
// A BodyStream owns a source (a file or an in-memory slice) with a known
// total size and produces it lazily as byte chunks. After every chunk an
// optional callback receives (total, cumulative, chunk) byte counts, which is
// all a progress bar needs.
//
// # Basic Usage
//
// Open a file, attach a callback, and upload:
//
//	stream, err := trackable.Open("./sample.jpeg")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer stream.Close()
//
//	bar := progressbar.DefaultBytes(stream.ContentLength())
//	stream.SetCallback(func(total, sent, chunk int64) {
//	    bar.Add64(chunk)
//	})
//
//	uploader, err := trackable.NewUploader(ctx)
//	result, err := uploader.Put(ctx, "my-bucket", "sample.jpeg", stream)
//
// The stream is consumed once; there is no retry or resume. A failed upload
// is restarted from scratch by the caller with a fresh stream.
package trackable
