// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands ~ and environment variables in a file path.
// It handles both ~ for home directory and $VAR style environment variables.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}

// DefaultDatabasePath returns the default location of the dataset cache.
func DefaultDatabasePath() string {
	return ExpandPath("~/.local/share/cartlens/cartlens.db")
}

// DefaultDataDir returns the default CSV data directory, relative to the
// working directory like the original dashboard's fixed "data" folder.
func DefaultDataDir() string {
	return "data"
}
