// Package cmd implements the rnlink CLI commands.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "rnlink",
	Short: "Autolinking dependency-configuration resolver for React Native projects",
	Long: `rnlink discovers the native-module dependencies of a React Native
project, resolves each one's platform linkage data, and emits the merged
compatibility configuration consumed by native build-file generators
(Gradle settings, CocoaPods Podfiles).

It also ships the header-import patcher used when vendoring native
sources into a modular framework build.`,
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
