package app

import (
	"fmt"
	"path/filepath"

	"github.com/vk/defpeek/internal/config"
	"github.com/vk/defpeek/internal/fsutil"
)

// Config holds the command-line level settings for an App. Empty fields
// defer to the session file, and then to the defaults.
type Config struct {
	Root       string // dataset root
	ConfigPath string // HCL session file

	LogFormat string
	LogLevel  string
}

// session resolves the HCL session file and applies the overrides in c.
func (c *Config) session() (*config.Session, error) {
	path := c.ConfigPath
	if path == "" {
		root := c.Root
		if root == "" {
			root = "."
		}
		if candidate := filepath.Join(root, config.DefaultFileName); fsutil.Exists(candidate) {
			path = candidate
		}
	}

	s := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		s = loaded
	}

	if c.Root != "" {
		s.Root = c.Root
	}
	if c.LogLevel != "" {
		s.LogLevel = c.LogLevel
	}
	if c.LogFormat != "" {
		s.LogFormat = c.LogFormat
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("session configuration: %w", err)
	}
	return s, nil
}
