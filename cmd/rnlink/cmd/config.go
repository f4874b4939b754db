package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nextcore/rnlink/internal/config"
	"github.com/nextcore/rnlink/internal/linker"
	"github.com/nextcore/rnlink/internal/npm"
)

var configOpts struct {
	platform    string
	projectRoot string
	searchPaths []string
	pretty      bool
	watch       bool
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Emit the autolinking compatibility config as JSON",
	Long: `Resolve the project's native-module dependencies and print the merged
compatibility configuration.

The project manifest (package.json) decides which dependencies are
considered, in manifest order. Each located dependency is classified as a
platform host (skipped), a linkable native module, or plain JavaScript
(skipped). Dependencies missing from every search path are omitted
silently.

With --watch, the config is re-emitted whenever the project manifest,
rnlink.yaml, or a search root changes.`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVarP(&configOpts.platform, "platform", "p", "", "Target platform: android or ios")
	configCmd.Flags().StringVar(&configOpts.projectRoot, "project-root", "", "Project root (default: nearest package.json upward from cwd)")
	configCmd.Flags().StringArrayVar(&configOpts.searchPaths, "search-path", nil, "Extra directory to scan for packages (repeatable)")
	configCmd.Flags().BoolVar(&configOpts.pretty, "pretty", false, "Indent the JSON output")
	configCmd.Flags().BoolVarP(&configOpts.watch, "watch", "w", false, "Re-emit the config when project files change")
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	root := configOpts.projectRoot
	if root == "" {
		var err error
		root, err = npm.FindProjectRoot()
		if err != nil {
			return err
		}
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("failed to resolve project root: %w", err)
	}

	cfg, err := config.LoadOptional(root)
	if err != nil {
		return err
	}

	platformName := configOpts.platform
	if platformName == "" {
		platformName = cfg.Platform
	}
	if platformName == "" {
		return fmt.Errorf("platform is required (pass --platform or set it in %s)", config.FileName)
	}
	platform, err := linker.ParsePlatform(platformName)
	if err != nil {
		return err
	}

	searchPaths := append([]string(nil), configOpts.searchPaths...)
	searchPaths = append(searchPaths, cfg.ResolveSearchPaths(root)...)

	emit := func() error {
		result, err := linker.Assemble(platform, root, searchPaths)
		if err != nil {
			return err
		}
		for _, name := range cfg.Exclude {
			delete(result.Dependencies, name)
		}
		return printJSON(result, configOpts.pretty)
	}

	if err := emit(); err != nil {
		return err
	}

	if configOpts.watch {
		return watchAndEmit(root, searchPaths, emit)
	}
	return nil
}

func printJSON(v any, pretty bool) error {
	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	_, err = fmt.Fprintln(os.Stdout, string(data))
	return err
}
