package cli

import (
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/sapessi/trackable"
)

// progressMode returns the configured progress mode: "auto", "tty", or "plain".
func progressMode() string {
	mode := viper.GetString("progress")
	switch mode {
	case "auto", "tty", "plain":
		return mode
	default:
		return "auto"
	}
}

// shouldShowProgress returns true if progress bars should be displayed.
func shouldShowProgress() bool {
	mode := progressMode()

	// Plain mode disables progress
	if mode == "plain" {
		return false
	}

	// TTY mode forces progress regardless of terminal detection
	if mode == "tty" {
		return true
	}

	// Auto mode: show progress only if connected to a TTY
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// newProgressBar creates a new progress bar for byte-based operations.
func newProgressBar(total int64, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions64(
		total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionUseANSICodes(true),
	)
}

// newUploadProgress creates a progress callback for upload operations.
// Returns the callback and a finish function to call when done.
// Returns nil callback if progress should not be shown.
func newUploadProgress(total int64) (callback trackable.Callback, finish func()) {
	if !shouldShowProgress() {
		return nil, func() {}
	}

	bar := newProgressBar(total, "Uploading")

	callback = func(totalBytes, sent, _ int64) {
		//nolint:errcheck // progress bar errors are not critical
		bar.Set64(sent)
		if sent == totalBytes {
			//nolint:errcheck // progress bar errors are not critical
			bar.Finish()
		}
	}

	finish = func() {
		//nolint:errcheck // progress bar errors are not critical
		bar.Finish()
	}

	return callback, finish
}
