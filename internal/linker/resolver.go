package linker

import (
	"fmt"
)

// Platform selects which native toolchain a resolution targets.
type Platform string

// Supported platforms.
const (
	PlatformAndroid Platform = "android"
	PlatformIOS     Platform = "ios"
)

// ParsePlatform validates a user-supplied platform name.
func ParsePlatform(s string) (Platform, error) {
	switch Platform(s) {
	case PlatformAndroid, PlatformIOS:
		return Platform(s), nil
	}
	return "", fmt.Errorf("unknown platform %q (expected android or ios)", s)
}

// Linkage is the platform-specific linkage data attached to a dependency.
// Concrete types are AndroidLinkage and IOSLinkage.
type Linkage interface {
	linkage()
}

// AndroidLinkage describes how a package's Android sources join the Gradle
// build.
type AndroidLinkage struct {
	SourceDir   string `json:"sourceDir"`
	PackageName string `json:"packageName"`
}

func (AndroidLinkage) linkage() {}

// IOSLinkage describes how a package joins the Xcode/CocoaPods build.
type IOSLinkage struct {
	PodspecPath string `json:"podspecPath"`
}

func (IOSLinkage) linkage() {}

// DependencyConfig is the resolved result for a single linkable dependency.
type DependencyConfig struct {
	Name      string               `json:"name"`
	Root      string               `json:"root"`
	Platforms map[Platform]Linkage `json:"platforms"`
}

// ResolutionKind is the three-way outcome of resolving one package.
type ResolutionKind int

const (
	// ResolvedHost marks a package that declares platforms itself (the
	// core framework, out-of-tree platforms). Hosts are never linked.
	ResolvedHost ResolutionKind = iota
	// ResolvedLinked marks a package with native code for the requested
	// platform; Config carries its linkage data.
	ResolvedLinked
	// ResolvedNotApplicable marks a package with no native code for the
	// requested platform. It contributes nothing to the output.
	ResolvedNotApplicable
)

// Resolution is the tagged result of Resolve. Config is non-nil only for
// ResolvedLinked.
type Resolution struct {
	Kind   ResolutionKind
	Config *DependencyConfig
}

// Resolve classifies one located package for one platform. A package linked
// on both platforms takes two calls; the assembler merges results by name.
func Resolve(platform Platform, name, packageRoot string) Resolution {
	if LoadPlatformConfig(packageRoot).IsHost() {
		return Resolution{Kind: ResolvedHost}
	}

	var link Linkage
	switch platform {
	case PlatformAndroid:
		link = resolveAndroid(packageRoot)
	case PlatformIOS:
		link = resolveIOS(packageRoot)
	}
	if link == nil {
		return Resolution{Kind: ResolvedNotApplicable}
	}

	return Resolution{
		Kind: ResolvedLinked,
		Config: &DependencyConfig{
			Name:      name,
			Root:      packageRoot,
			Platforms: map[Platform]Linkage{platform: link},
		},
	}
}
