package linker

import (
	"os"
	"path/filepath"
	"regexp"
)

var (
	// namespace "com.example.lib" / namespace = 'com.example.lib'
	gradleNamespaceRe = regexp.MustCompile(`(?m)^\s*namespace\s*=?\s*["']([^"']+)["']`)
	// <manifest package="com.example.lib" ...>
	manifestPackageRe = regexp.MustCompile(`package\s*=\s*"([^"]+)"`)
)

// resolveAndroid inspects a package root for an Android library project and
// returns its linkage data, or nil when the package ships no Android code.
func resolveAndroid(packageRoot string) Linkage {
	sourceDir := filepath.Join(packageRoot, "android")

	gradlePath := filepath.Join(sourceDir, "build.gradle")
	if _, err := os.Stat(gradlePath); err != nil {
		gradlePath = filepath.Join(sourceDir, "build.gradle.kts")
		if _, err := os.Stat(gradlePath); err != nil {
			return nil
		}
	}

	pkg := androidPackageName(sourceDir, gradlePath)
	if pkg == "" {
		// A Gradle file without a resolvable package name cannot be
		// registered with the host application build.
		return nil
	}

	return &AndroidLinkage{
		SourceDir:   sourceDir,
		PackageName: pkg,
	}
}

// androidPackageName finds the library's package name, preferring the Gradle
// namespace declaration over the legacy AndroidManifest package attribute.
func androidPackageName(sourceDir, gradlePath string) string {
	if data, err := os.ReadFile(gradlePath); err == nil {
		if m := gradleNamespaceRe.FindSubmatch(data); m != nil {
			return string(m[1])
		}
	}

	for _, manifest := range []string{
		filepath.Join(sourceDir, "src", "main", "AndroidManifest.xml"),
		filepath.Join(sourceDir, "AndroidManifest.xml"),
	} {
		data, err := os.ReadFile(manifest)
		if err != nil {
			continue
		}
		if m := manifestPackageRe.FindSubmatch(data); m != nil {
			return string(m[1])
		}
	}

	return ""
}
