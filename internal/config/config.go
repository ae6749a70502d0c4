package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds persistent defaults loaded from the user config file.
// Flags override everything here; the zero value means "unset".
type Config struct {
	// Editor overrides $EDITOR in the default execute template.
	Editor string `toml:"editor"`
	// Command replaces the default execute template entirely.
	Command string `toml:"command"`
	// PageSize is the default selector page size.
	PageSize int `toml:"page_size"`
	// IgnoreCase makes queries case-insensitive by default.
	IgnoreCase bool `toml:"ignore_case"`
	// NoSource disables source-line context resolution by default.
	NoSource bool `toml:"no_source"`
}

// Path returns the config file location under the user config dir.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config directory: %w", err)
	}
	return filepath.Join(dir, "tagscout", "config.toml"), nil
}

// Load reads the config file if it exists. A missing file yields the
// zero config; a malformed one is a configuration error.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Config{}, err
	}
	return LoadFile(path)
}

func LoadFile(path string) (Config, error) {
	var cfg Config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}
