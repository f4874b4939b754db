// Package npm reads node package manifests and locates installed package
// roots across a growing set of search paths.
package npm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ManifestName is the manifest file expected at every package root.
const ManifestName = "package.json"

// Manifest is the depth-one view of a package.json that autolinking needs.
// Dependency names keep their manifest order, which map types would lose.
type Manifest struct {
	Name            string
	Version         string
	Dependencies    []Dependency
	DevDependencies []Dependency
}

// Dependency is a single name -> version-range entry from a manifest block.
type Dependency struct {
	Name    string
	Version string
}

// FindProjectRoot walks up from the current directory to the nearest
// directory containing a package.json.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, ManifestName)); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a node project (no %s found)", ManifestName)
		}
		dir = parent
	}
}

// ReadManifest loads and parses <dir>/package.json.
// A missing or malformed project manifest is a hard error; there is nothing
// to resolve against without it.
func ReadManifest(dir string) (*Manifest, error) {
	path := filepath.Join(dir, ManifestName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	m, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return m, nil
}

// ParseManifest parses raw package.json bytes, preserving the order of the
// dependencies and devDependencies blocks.
func ParseManifest(data []byte) (*Manifest, error) {
	var head struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, err
	}

	deps, err := orderedBlock(data, "dependencies")
	if err != nil {
		return nil, err
	}
	devDeps, err := orderedBlock(data, "devDependencies")
	if err != nil {
		return nil, err
	}

	return &Manifest{
		Name:            head.Name,
		Version:         head.Version,
		Dependencies:    deps,
		DevDependencies: devDeps,
	}, nil
}

// DependencyNames returns production then development dependency names in
// manifest order, deduplicated (a name in both blocks appears once).
func (m *Manifest) DependencyNames() []string {
	seen := make(map[string]bool, len(m.Dependencies)+len(m.DevDependencies))
	var names []string
	for _, block := range [][]Dependency{m.Dependencies, m.DevDependencies} {
		for _, d := range block {
			if seen[d.Name] {
				continue
			}
			seen[d.Name] = true
			names = append(names, d.Name)
		}
	}
	return names
}

// orderedBlock extracts a top-level object of string values from raw JSON,
// walking tokens so key order survives. A missing block yields nil.
func orderedBlock(data []byte, key string) ([]Dependency, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, err
	}
	raw, ok := top[key]
	if !ok {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("invalid %s block: %w", key, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("invalid %s block: expected object", key)
	}

	var deps []Dependency
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("invalid %s block: %w", key, err)
		}
		name, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("invalid %s block: non-string key", key)
		}

		var version string
		if err := dec.Decode(&version); err != nil {
			return nil, fmt.Errorf("invalid %s entry %q: %w", key, name, err)
		}
		deps = append(deps, Dependency{Name: name, Version: version})
	}

	return deps, nil
}
