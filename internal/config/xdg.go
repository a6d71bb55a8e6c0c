// Package config provides XDG path helpers for the CLI.
package config

import (
	"os"
	"path/filepath"
)

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultProfilePath returns the default TOML delay profile path.
func DefaultProfilePath() string {
	return filepath.Join(XDGConfigHome(), "typewriter", "profile.toml")
}
