package headers

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRewrite_ImportForms(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"known header",
			`#import "RCTBridge.h"`,
			`#import <React/RCTBridge.h>`,
		},
		{
			"already prefixed",
			`#import "React/RCTBridge.h"`,
			`#import <React/RCTBridge.h>`,
		},
		{
			"unknown header",
			`#import "NotAHeader.h"`,
			`#import "NotAHeader.h"`,
		},
		{
			"prefixed unknown header",
			`#import "React/NotAHeader.h"`,
			`#import "React/NotAHeader.h"`,
		},
		{
			"has_include if",
			`#if __has_include("RCTLog.h")`,
			`#if __has_include(<React/RCTLog.h>)`,
		},
		{
			"has_include elif",
			`#elif __has_include("React/RCTLog.h")`,
			`#elif __has_include(<React/RCTLog.h>)`,
		},
		{
			"has_include unknown",
			`#if __has_include("SomethingElse.h")`,
			`#if __has_include("SomethingElse.h")`,
		},
		{
			"leading whitespace preserved",
			`    #import "RCTUtils.h"`,
			`    #import <React/RCTUtils.h>`,
		},
		{
			"angle import untouched",
			`#import <React/RCTBridge.h>`,
			`#import <React/RCTBridge.h>`,
		},
		{
			"import not alone on line",
			`#import "RCTBridge.h" // bridge`,
			`#import "RCTBridge.h" // bridge`,
		},
		{
			"plain code line",
			`RCTBridge *bridge = self.bridge;`,
			`RCTBridge *bridge = self.bridge;`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Rewrite(tt.in); got != tt.want {
				t.Errorf("Rewrite(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRewrite_MultiLine(t *testing.T) {
	in := strings.Join([]string{
		`#import "RCTBridge.h"`,
		`#import "MyOwnHeader.h"`,
		``,
		`#if __has_include("RCTLog.h")`,
		`#import "RCTLog.h"`,
		`#endif`,
	}, "\n")
	want := strings.Join([]string{
		`#import <React/RCTBridge.h>`,
		`#import "MyOwnHeader.h"`,
		``,
		`#if __has_include(<React/RCTLog.h>)`,
		`#import <React/RCTLog.h>`,
		`#endif`,
	}, "\n")

	if got := Rewrite(in); got != want {
		t.Errorf("Rewrite mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRewrite_CRLF(t *testing.T) {
	in := "#import \"RCTBridge.h\"\r\nint x;\r\n"
	want := "#import <React/RCTBridge.h>\r\nint x;\r\n"
	if got := Rewrite(in); got != want {
		t.Errorf("Rewrite(%q) = %q, want %q", in, got, want)
	}
}

func TestTransformer_FirstChunkOnly(t *testing.T) {
	var out bytes.Buffer
	tr := NewTransformer(&out, TransformOptions{})

	chunks := []string{
		"#import \"RCTBridge.h\"\n",
		"#import \"RCTLog.h\"\n",
	}
	for _, chunk := range chunks {
		n, err := tr.Write([]byte(chunk))
		if err != nil {
			t.Fatalf("Write failed: %v", err)
		}
		if n != len(chunk) {
			t.Errorf("Write returned %d, want %d", n, len(chunk))
		}
	}

	want := "#import <React/RCTBridge.h>\n#import \"RCTLog.h\"\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q (second chunk must pass through)", out.String(), want)
	}
}

func TestTransformer_AllChunks(t *testing.T) {
	var out bytes.Buffer
	tr := NewTransformer(&out, TransformOptions{TransformAll: true})

	for _, chunk := range []string{"#import \"RCTBridge.h\"\n", "#import \"RCTLog.h\"\n"} {
		if _, err := tr.Write([]byte(chunk)); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
	}

	want := "#import <React/RCTBridge.h>\n#import <React/RCTLog.h>\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestTransformer_PluggableRewrite(t *testing.T) {
	var out bytes.Buffer
	tr := NewTransformer(&out, TransformOptions{
		TransformAll: true,
		Rewrite:      strings.ToUpper,
	})

	if _, err := tr.Write([]byte("abc")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if out.String() != "ABC" {
		t.Errorf("output = %q, want ABC", out.String())
	}
}

func TestTransformer_PreservesChunkOrder(t *testing.T) {
	var out bytes.Buffer
	tr := NewTransformer(&out, TransformOptions{})

	chunks := []string{"one\n", "two\n", "three\n"}
	for _, chunk := range chunks {
		if _, err := tr.Write([]byte(chunk)); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
	}
	if out.String() != "one\ntwo\nthree\n" {
		t.Errorf("output = %q, chunks reordered or dropped", out.String())
	}
}

func TestPatch_Stream(t *testing.T) {
	in := strings.NewReader("#import \"RCTBridge.h\"\nbody\n")
	var out bytes.Buffer

	if err := Patch(&out, in, TransformOptions{}); err != nil {
		t.Fatalf("Patch failed: %v", err)
	}
	if want := "#import <React/RCTBridge.h>\nbody\n"; out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestPatchFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "RCTSomeView.m")
	content := "#import \"RCTView.h\"\n#import \"Private.h\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := PatchFile(path); err != nil {
		t.Fatalf("PatchFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "#import <React/RCTView.h>\n#import \"Private.h\"\n"
	if string(data) != want {
		t.Errorf("patched file = %q, want %q", string(data), want)
	}
}

func TestPatchFile_Missing(t *testing.T) {
	if err := PatchFile(filepath.Join(t.TempDir(), "nope.m")); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}

func TestKnown(t *testing.T) {
	if !Known("RCTBridge.h") {
		t.Error("RCTBridge.h should be known")
	}
	if Known("RCTMadeUp.h") {
		t.Error("RCTMadeUp.h should not be known")
	}
	if Known("React/RCTBridge.h") {
		t.Error("Known takes bare header names, not prefixed paths")
	}
}
