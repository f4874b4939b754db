package linker

import (
	"os"
	"path/filepath"
	"strings"
)

// resolveIOS inspects a package root for a CocoaPods podspec and returns its
// linkage data, or nil when the package ships no iOS code.
//
// The package root is searched before ios/, matching where community modules
// conventionally keep their podspec. Directory entries come back sorted, so
// the first podspec found is stable across runs.
func resolveIOS(packageRoot string) Linkage {
	for _, dir := range []string{packageRoot, filepath.Join(packageRoot, "ios")} {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".podspec") {
				continue
			}
			return &IOSLinkage{
				PodspecPath: filepath.Join(dir, entry.Name()),
			}
		}
	}
	return nil
}
