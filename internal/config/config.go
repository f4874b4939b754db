// Package config reads the optional rnlink.yaml tool configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the optional per-project configuration file.
const FileName = "rnlink.yaml"

// Config represents the optional rnlink.yaml configuration. Command-line
// flags take precedence over every field.
type Config struct {
	// Platform is the default platform when --platform is not given.
	Platform string `yaml:"platform,omitempty"`
	// SearchPaths lists extra directories scanned for package
	// installations, relative paths resolving against the project root.
	SearchPaths []string `yaml:"searchPaths,omitempty"`
	// Exclude names dependencies to leave out of the compat config even
	// when they carry native code.
	Exclude []string `yaml:"exclude,omitempty"`
}

// LoadOptional reads rnlink.yaml if present. A missing file is not an
// error; a malformed one is, since the user wrote it on purpose.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// ResolveSearchPaths makes the configured search paths absolute relative to
// the project root.
func (c *Config) ResolveSearchPaths(projectRoot string) []string {
	if len(c.SearchPaths) == 0 {
		return nil
	}
	out := make([]string, 0, len(c.SearchPaths))
	for _, p := range c.SearchPaths {
		if !filepath.IsAbs(p) {
			p = filepath.Join(projectRoot, p)
		}
		out = append(out, p)
	}
	return out
}
