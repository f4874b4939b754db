// Package linker turns located package roots into the merged autolinking
// compatibility configuration a native build-file generator consumes.
package linker

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// PlatformConfigName is the per-package configuration file consulted to tell
// platform hosts apart from ordinary native modules.
const PlatformConfigName = "react-native.config.json"

// PlatformConfig is the parsed per-package platform declaration. Only the
// presence of keys under "platforms" matters to autolinking; their payloads
// are opaque here.
type PlatformConfig struct {
	Platforms map[string]json.RawMessage `json:"platforms"`
}

// IsHost reports whether the package declares at least one platform, which
// makes it a platform host rather than a linkable module.
func (c *PlatformConfig) IsHost() bool {
	return c != nil && len(c.Platforms) > 0
}

// LoadPlatformConfig reads the package-local platform configuration.
// A missing file means "no native configuration" and returns an empty
// config. A malformed file is treated the same way: a best-effort compat
// config beats aborting the whole resolution over one bad package.
func LoadPlatformConfig(packageRoot string) *PlatformConfig {
	data, err := os.ReadFile(filepath.Join(packageRoot, PlatformConfigName))
	if err != nil {
		return &PlatformConfig{}
	}

	var cfg PlatformConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return &PlatformConfig{}
	}
	return &cfg
}
