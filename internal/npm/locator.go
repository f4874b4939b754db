package npm

import (
	"os"
	"path/filepath"
	"strings"
)

// pnpmStoreDir marks a pnpm isolated-module store. A package installed under
// node_modules/.pnpm/<pkg@ver>/node_modules keeps its own dependencies next
// to itself rather than in the project-level node_modules.
const pnpmStoreDir = ".pnpm"

// SearchPathSet is an ordered, deduplicating set of directories scanned for
// package installations. It only grows; paths appended while a scan is in
// flight are still visited by that scan.
type SearchPathSet struct {
	paths []string
	seen  map[string]bool
}

// NewSearchPathSet builds a set from the given paths, preserving order and
// dropping duplicates.
func NewSearchPathSet(paths ...string) *SearchPathSet {
	s := &SearchPathSet{seen: make(map[string]bool, len(paths))}
	for _, p := range paths {
		s.Add(p)
	}
	return s
}

// Add appends a path unless it is already present. Returns true when the
// path was new.
func (s *SearchPathSet) Add(path string) bool {
	path = filepath.Clean(path)
	if s.seen[path] {
		return false
	}
	s.seen[path] = true
	s.paths = append(s.paths, path)
	return true
}

// Len returns the current number of paths.
func (s *SearchPathSet) Len() int { return len(s.paths) }

// At returns the path at index i. Index-based access is what lets a caller
// iterate past entries added after the iteration started.
func (s *SearchPathSet) At(i int) string { return s.paths[i] }

// Paths returns a copy of the current path list in insertion order.
func (s *SearchPathSet) Paths() []string {
	out := make([]string, len(s.paths))
	copy(out, s.paths)
	return out
}

// Locate resolves each dependency name to the root directory of its
// installation: the first search path containing <path>/<name>/package.json
// wins, and later candidates for that name are not consulted. Names found
// nowhere are omitted from the result.
//
// When a located root sits inside a pnpm isolated store, the root's own
// node_modules directory joins the search set immediately, so packages that
// exist only inside that store are reachable for the names still pending.
// Completeness therefore depends on processing order; callers pass names in
// manifest order and that order is part of the contract.
func Locate(names []string, set *SearchPathSet) map[string]string {
	roots := make(map[string]string, len(names))

	for _, name := range names {
		// Index loop on purpose: set.Len() is re-evaluated every pass, so
		// paths added below are candidates for this same name.
		for i := 0; i < set.Len(); i++ {
			root := filepath.Join(set.At(i), name)
			if _, err := os.Stat(filepath.Join(root, ManifestName)); err != nil {
				continue
			}
			// Package managers with isolated stores install through
			// symlinks; the real location is what marks the store and
			// what native build files need to reference.
			if real, err := filepath.EvalSymlinks(root); err == nil {
				root = real
			}
			roots[name] = root
			expandIsolatedStore(name, root, set)
			break
		}
	}

	return roots
}

// expandIsolatedStore adds the node_modules directory holding root to the
// set when root lives in a pnpm virtual store. Packages hoisted into that
// store exist only there, so the group becomes searchable as soon as any of
// its members is located.
func expandIsolatedStore(name, root string, set *SearchPathSet) {
	if !insideIsolatedStore(root) {
		return
	}

	// Strip the package name off the root to get the containing
	// node_modules; scoped names occupy two path segments.
	group := root
	for range strings.Split(name, "/") {
		group = filepath.Dir(group)
	}
	if filepath.Base(group) != "node_modules" {
		return
	}
	set.Add(group)
}

func insideIsolatedStore(root string) bool {
	for _, part := range strings.Split(filepath.ToSlash(root), "/") {
		if part == pnpmStoreDir {
			return true
		}
	}
	return false
}
