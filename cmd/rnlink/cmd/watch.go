package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay coalesces bursts of filesystem events (package managers
// rewrite whole trees) into one re-emit.
const debounceDelay = 500 * time.Millisecond

// watchAndEmit re-runs emit whenever the project manifest, rnlink.yaml, or
// one of the search roots changes. Blocks until interrupted.
func watchAndEmit(projectRoot string, searchPaths []string, emit func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(projectRoot); err != nil {
		return fmt.Errorf("failed to watch %s: %w", projectRoot, err)
	}

	roots := searchPaths
	if len(roots) == 0 {
		roots = []string{filepath.Join(projectRoot, "node_modules")}
	}
	for _, dir := range roots {
		// A search root may not exist yet (fresh checkout before
		// install); events under the project root still cover that.
		if err := addPackageWatchers(watcher, dir); err == nil {
			fmt.Fprintf(os.Stderr, "Watching %s\n", dir)
		}
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	var (
		mu      sync.Mutex
		pending *time.Timer
	)
	schedule := func() {
		mu.Lock()
		defer mu.Unlock()
		if pending != nil {
			pending.Stop()
		}
		pending = time.AfterFunc(debounceDelay, func() {
			if err := emit(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		})
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !relevantEvent(event) {
				continue
			}
			schedule()

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)

		case <-sigs:
			mu.Lock()
			if pending != nil {
				pending.Stop()
			}
			mu.Unlock()
			return nil
		}
	}
}

// addPackageWatchers watches a search root and every package directory
// directly under it. fsnotify is not recursive, and the files that matter
// sit at a fixed depth: <root>/<name>/package.json, with scoped packages one
// level deeper.
func addPackageWatchers(watcher *fsnotify.Watcher, root string) error {
	if err := watcher.Add(root); err != nil {
		return err
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(root, entry.Name())
		watcher.Add(dir)

		if entry.Name()[0] != '@' {
			continue
		}
		scoped, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, sub := range scoped {
			if sub.IsDir() {
				watcher.Add(filepath.Join(dir, sub.Name()))
			}
		}
	}
	return nil
}

// relevantEvent filters events down to the files that can change the compat
// config: manifests, platform configs, and tool configuration.
func relevantEvent(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	switch filepath.Base(event.Name) {
	case "package.json", "react-native.config.json", "rnlink.yaml":
		return true
	}
	return false
}
