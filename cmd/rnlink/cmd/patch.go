package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nextcore/rnlink/internal/headers"
)

var patchOpts struct {
	allChunks bool
}

var patchCmd = &cobra.Command{
	Use:   "patch-headers [file...]",
	Short: "Rewrite quoted framework includes to angle-bracket form",
	Long: `Rewrite #import "RCTFoo.h" statements (and __has_include checks) into
their <React/RCTFoo.h> module form, for headers in the framework's known
public set. Lines referencing unknown headers pass through unchanged.

With file arguments, each file is rewritten in place. With none, stdin is
patched to stdout; by default only the first chunk of the stream is
transformed, since includes sit near the top of a source file.`,
	RunE: runPatch,
}

func init() {
	patchCmd.Flags().BoolVar(&patchOpts.allChunks, "all-chunks", false, "Transform every chunk of the stream, not just the first")
	rootCmd.AddCommand(patchCmd)
}

func runPatch(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return headers.Patch(os.Stdout, os.Stdin, headers.TransformOptions{
			TransformAll: patchOpts.allChunks,
		})
	}

	for _, path := range args {
		if err := headers.PatchFile(path); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Patched %s\n", path)
	}
	return nil
}
