package headers

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// modulePrefix is the module the known headers are re-exported from.
const modulePrefix = "React/"

var (
	// #import "RCTBridge.h" / #import "React/RCTBridge.h"
	importRe = regexp.MustCompile(`^(\s*)#import\s+"(React/)?([A-Za-z0-9_+.]+\.h)"\s*$`)
	// #if __has_include("RCTLog.h") / #elif __has_include("React/RCTLog.h")
	hasIncludeRe = regexp.MustCompile(`^(\s*)#(if|elif)\s+__has_include\(\s*"(React/)?([A-Za-z0-9_+.]+\.h)"\s*\)\s*$`)
)

// Rewrite converts quoted includes of known framework headers into
// angle-bracket module includes. Only lines that are entirely one of the
// recognized forms are touched; every other line passes through unchanged.
func Rewrite(chunk string) string {
	lines := strings.Split(chunk, "\n")
	for i, line := range lines {
		lines[i] = rewriteLine(line)
	}
	return strings.Join(lines, "\n")
}

func rewriteLine(line string) string {
	body, cr := strings.CutSuffix(line, "\r")

	if m := importRe.FindStringSubmatch(body); m != nil && Known(m[3]) {
		body = fmt.Sprintf("%s#import <%s%s>", m[1], modulePrefix, m[3])
	} else if m := hasIncludeRe.FindStringSubmatch(body); m != nil && Known(m[4]) {
		body = fmt.Sprintf("%s#%s __has_include(<%s%s>)", m[1], m[2], modulePrefix, m[4])
	} else {
		return line
	}

	if cr {
		body += "\r"
	}
	return body
}

// Transformer streams chunks through a rewrite function into an underlying
// writer. By default only the first chunk is rewritten: includes live near
// the top of a source file, and skipping the rest keeps large copies cheap.
// A file whose relevant includes straddle the first chunk boundary will not
// be fully patched; callers that care set TransformAll.
type Transformer struct {
	dst     io.Writer
	rewrite func(string) string
	all     bool
	chunks  int
}

// TransformOptions configures a Transformer.
type TransformOptions struct {
	// TransformAll rewrites every chunk instead of just the first.
	TransformAll bool
	// Rewrite replaces the default rewrite function. Intended for tests.
	Rewrite func(string) string
}

// NewTransformer wraps dst with the header-import rewrite.
func NewTransformer(dst io.Writer, opts TransformOptions) *Transformer {
	rewrite := opts.Rewrite
	if rewrite == nil {
		rewrite = Rewrite
	}
	return &Transformer{dst: dst, rewrite: rewrite, all: opts.TransformAll}
}

// Write rewrites p when it is eligible and forwards it. Chunks go out in the
// order they come in; nothing is buffered across calls.
func (t *Transformer) Write(p []byte) (int, error) {
	out := p
	if t.all || t.chunks == 0 {
		out = []byte(t.rewrite(string(p)))
	}
	t.chunks++

	if _, err := t.dst.Write(out); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Patch copies src to dst through the rewrite.
func Patch(dst io.Writer, src io.Reader, opts TransformOptions) error {
	if _, err := io.Copy(NewTransformer(dst, opts), src); err != nil {
		return fmt.Errorf("failed to patch stream: %w", err)
	}
	return nil
}

// PatchFile rewrites a file in place. The whole file is handled as a single
// chunk, so the first-chunk rule never truncates the rewrite here.
func PatchFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	patched := Rewrite(string(data))
	if patched == string(data) {
		return nil
	}

	if err := os.WriteFile(path, []byte(patched), info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
