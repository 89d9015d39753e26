// Package cli implements the trackable command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sapessi/trackable"
	"github.com/sapessi/trackable/cmd/trackable/cli/config"
)

// Build information set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Global flags.
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "trackable",
	Short: "Upload files to S3 with progress tracking",
	Long: `Trackable uploads files to S3 or S3-compatible object stores while
rendering a terminal progress bar driven by the upload stream itself.

The declared content length of every upload is taken from the file metadata,
so transfers never fall back to a chunked encoding without a known length.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("region", "", "AWS region")
	rootCmd.PersistentFlags().String("endpoint", "", "Custom S3 endpoint (enables path-style addressing)")
	rootCmd.PersistentFlags().String("progress", "auto", "Progress display mode (auto, tty, plain)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose debug logging")
	rootCmd.Version = version

	// Binding registered flags cannot fail.
	_ = viper.BindPFlag("region", rootCmd.PersistentFlags().Lookup("region"))
	_ = viper.BindPFlag("endpoint", rootCmd.PersistentFlags().Lookup("endpoint"))
	_ = viper.BindPFlag("progress", rootCmd.PersistentFlags().Lookup("progress"))
}

// initConfig loads the config file and environment overrides.
func initConfig() {
	if configDir, err := config.Dir(); err == nil {
		viper.SetConfigFile(filepath.Join(configDir, "config.yaml"))
	}
	viper.SetEnvPrefix("TRACKABLE")
	viper.AutomaticEnv()

	// A missing config file is fine; flags and env cover everything.
	var notFound viper.ConfigFileNotFoundError
	if err := viper.ReadInConfig(); err != nil && !errors.As(err, &notFound) && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: could not read config: %v\n", err)
	}
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, formatError(err))
	}
	return err
}

// newUploader creates an uploader with configured options.
func newUploader(ctx context.Context) (*trackable.Uploader, error) {
	var cfg config.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	opts := []trackable.UploaderOption{}
	if cfg.Region != "" {
		opts = append(opts, trackable.WithRegion(cfg.Region))
	}
	if cfg.Endpoint != "" {
		opts = append(opts, trackable.WithEndpoint(cfg.Endpoint))
	}
	if verbose {
		opts = append(opts, trackable.WithLogger(
			slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelDebug})),
		))
	}
	return trackable.NewUploader(ctx, opts...)
}

// signalContext returns a context that is canceled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}

// formatError converts trackable errors to user-friendly messages.
func formatError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, os.ErrNotExist):
		return fmt.Sprintf("Error: file not found: %v", err)
	case errors.Is(err, os.ErrPermission):
		return fmt.Sprintf("Error: permission denied: %v", err)
	case errors.Is(err, trackable.ErrInvalidChunkSize):
		return "Error: chunk size must be greater than zero"
	case errors.Is(err, trackable.ErrTransfer):
		return fmt.Sprintf("Error: transfer failed: %v", err)
	case errors.Is(err, context.Canceled):
		return "Error: operation canceled"
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
