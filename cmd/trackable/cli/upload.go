package cli

import (
	"fmt"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/sapessi/trackable"
)

var uploadChunkSize int

var uploadCmd = &cobra.Command{
	Use:   "upload <file> <bucket> [key]",
	Short: "Upload a file to an S3 bucket",
	Long: `Upload sends a local file to an S3 bucket, rendering a progress bar
while the transfer runs. The object key defaults to the file's base name.

Examples:
  trackable upload ./sample.jpeg my-bucket
  trackable upload ./backup.tar my-bucket backups/2026-08/backup.tar
  trackable upload ./large.bin my-bucket --chunk-size 65536`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runUpload,
}

func init() {
	uploadCmd.Flags().IntVar(&uploadChunkSize, "chunk-size", trackable.DefaultChunkSize, "Read-chunk size in bytes")
	rootCmd.AddCommand(uploadCmd)
}

func runUpload(_ *cobra.Command, args []string) error {
	file := args[0]
	bucket := args[1]
	key := filepath.Base(file)
	if len(args) == 3 {
		key = args[2]
	}

	stream, err := trackable.Open(file)
	if err != nil {
		return err
	}
	defer stream.Close()

	if uploadChunkSize != trackable.DefaultChunkSize {
		if err := stream.SetChunkSize(uploadChunkSize); err != nil {
			return err
		}
	}

	callback, finish := newUploadProgress(stream.ContentLength())
	if callback != nil {
		stream.SetCallback(callback)
	}

	ctx, cancel := signalContext()
	defer cancel()

	uploader, err := newUploader(ctx)
	if err != nil {
		return err
	}

	result, err := uploader.Put(ctx, bucket, key, stream)
	finish()
	if err != nil {
		return err
	}

	fmt.Printf("Uploaded %s to %s/%s (%s, etag %s)\n",
		file, result.Bucket, result.Key, humanize.Bytes(uint64(result.Size)), result.ETag)
	return nil
}
