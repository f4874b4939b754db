package npm

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseManifest_PreservesDependencyOrder(t *testing.T) {
	data := []byte(`{
		"name": "app",
		"version": "1.0.0",
		"dependencies": {
			"zeta": "^1.0.0",
			"alpha": "^2.0.0",
			"mid-pkg": "~0.3.1"
		},
		"devDependencies": {
			"beta": "^0.1.0"
		}
	}`)

	m, err := ParseManifest(data)
	if err != nil {
		t.Fatalf("ParseManifest failed: %v", err)
	}

	if m.Name != "app" || m.Version != "1.0.0" {
		t.Errorf("got name=%q version=%q", m.Name, m.Version)
	}

	want := []string{"zeta", "alpha", "mid-pkg", "beta"}
	if got := m.DependencyNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("DependencyNames() = %v, want %v", got, want)
	}
}

func TestParseManifest_DeduplicatesAcrossBlocks(t *testing.T) {
	data := []byte(`{
		"name": "app",
		"dependencies": {"shared": "1.0.0", "only-prod": "1.0.0"},
		"devDependencies": {"shared": "1.0.0", "only-dev": "1.0.0"}
	}`)

	m, err := ParseManifest(data)
	if err != nil {
		t.Fatalf("ParseManifest failed: %v", err)
	}

	want := []string{"shared", "only-prod", "only-dev"}
	if got := m.DependencyNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("DependencyNames() = %v, want %v", got, want)
	}
}

func TestParseManifest_MissingBlocks(t *testing.T) {
	m, err := ParseManifest([]byte(`{"name": "bare"}`))
	if err != nil {
		t.Fatalf("ParseManifest failed: %v", err)
	}
	if len(m.DependencyNames()) != 0 {
		t.Errorf("expected no dependencies, got %v", m.DependencyNames())
	}
}

func TestParseManifest_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "not json at all"},
		{"deps not object", `{"dependencies": ["a", "b"]}`},
		{"non-string version", `{"dependencies": {"a": {"nested": true}}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseManifest([]byte(tt.data)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestReadManifest_Missing(t *testing.T) {
	if _, err := ReadManifest(t.TempDir()); err == nil {
		t.Error("expected error for missing package.json, got nil")
	}
}

func TestReadManifest_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	content := `{"name": "pkg", "version": "2.3.4", "dependencies": {"dep": "1.0.0"}}`
	if err := os.WriteFile(filepath.Join(dir, "package.json"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := ReadManifest(dir)
	if err != nil {
		t.Fatalf("ReadManifest failed: %v", err)
	}
	if m.Name != "pkg" || m.Version != "2.3.4" {
		t.Errorf("got name=%q version=%q", m.Name, m.Version)
	}
	if len(m.Dependencies) != 1 || m.Dependencies[0].Name != "dep" {
		t.Errorf("got dependencies %v", m.Dependencies)
	}
}
