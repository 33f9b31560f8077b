// Package config loads and stores shell configuration in the XDG config dir.
// Only non-secret settings are kept here; the shell stores no secrets at all.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"sqlshell/cli/internal/xdg"
)

// Config holds non-sensitive shell settings.
type Config struct {
	// NoColor disables colored terminal output.
	NoColor bool `json:"no_color"`
	// HistoryLimit caps the number of persisted history entries.
	HistoryLimit int `json:"history_limit"`
	// Prompt overrides the default "<name> > " prompt when non-empty.
	Prompt string `json:"prompt"`
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration; missing file returns defaults.
func Load() (Config, error) {
	c := Config{HistoryLimit: 1000}
	p, err := path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return c, err
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, err
	}
	if c.HistoryLimit <= 0 {
		c.HistoryLimit = 1000
	}
	return c, nil
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}
