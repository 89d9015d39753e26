package config

import (
	"os"
	"path/filepath"
)

// Dir returns the trackable config directory.
// Uses XDG_CONFIG_HOME/trackable, defaulting to ~/.config/trackable.
func Dir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "trackable"), nil
}
