package linker

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/nextcore/rnlink/internal/npm"
)

// CorePackage is the well-known name of the framework package. Its root is
// surfaced as a top-level field instead of appearing as a dependency.
const CorePackage = "react-native"

// CompatResult is the merged autolinking configuration for one project and
// one platform. Every entry in Dependencies is non-nil; packages that
// resolved to nothing are absent, not present with an empty value.
type CompatResult struct {
	Root               string                       `json:"root"`
	ReactNativePath    string                       `json:"reactNativePath,omitempty"`
	ReactNativeVersion string                       `json:"reactNativeVersion,omitempty"`
	Dependencies       map[string]*DependencyConfig `json:"dependencies"`
	Project            ProjectConfig                `json:"project"`
}

// ProjectConfig carries project-level platform metadata.
type ProjectConfig struct {
	IOS *IOSProject `json:"ios,omitempty"`
}

// IOSProject points the generator at the project's native iOS sources.
type IOSProject struct {
	SourceDir string `json:"sourceDir"`
}

// Assemble builds the compatibility config for projectRoot on platform.
//
// The project's own manifest is the only fatal input: without it there is
// nothing to resolve against. Every per-dependency failure degrades to "this
// package contributes nothing". With no searchPaths given, the project's
// node_modules is searched.
func Assemble(platform Platform, projectRoot string, searchPaths []string) (*CompatResult, error) {
	manifest, err := npm.ReadManifest(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to load project manifest: %w", err)
	}

	if len(searchPaths) == 0 {
		searchPaths = []string{filepath.Join(projectRoot, "node_modules")}
	}
	set := npm.NewSearchPathSet(searchPaths...)
	roots := npm.Locate(manifest.DependencyNames(), set)

	// Each located root is disjoint and lands on a disjoint map key, so the
	// per-dependency resolutions fan out freely and fan in over a channel.
	type outcome struct {
		name string
		res  Resolution
	}
	ch := make(chan outcome, len(roots))
	for name, root := range roots {
		go func(name, root string) {
			ch <- outcome{name: name, res: Resolve(platform, name, root)}
		}(name, root)
	}

	deps := make(map[string]*DependencyConfig)
	for range roots {
		out := <-ch
		if out.res.Kind == ResolvedLinked {
			deps[out.name] = out.res.Config
		}
	}

	result := &CompatResult{
		Root:         projectRoot,
		Dependencies: deps,
	}

	if coreRoot, ok := roots[CorePackage]; ok {
		result.ReactNativePath = coreRoot
		result.ReactNativeVersion = coreVersion(coreRoot)
	}

	if platform == PlatformIOS {
		result.Project.IOS = &IOSProject{
			SourceDir: filepath.Join(projectRoot, "ios"),
		}
	}

	return result, nil
}

// coreVersion reads the framework package's declared version and returns it
// in canonical form, or empty when it cannot be read or is not a version.
func coreVersion(coreRoot string) string {
	manifest, err := npm.ReadManifest(coreRoot)
	if err != nil {
		return ""
	}
	v := manifest.Version
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return ""
	}
	return strings.TrimPrefix(semver.Canonical(v), "v")
}
