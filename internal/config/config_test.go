package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[package]
name = "app"

[resolve]
check_aliases = true
jobs = 2

[cache]
enabled = true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Package.Name != "app" || !cfg.Resolve.CheckAliases || cfg.Resolve.Jobs != 2 || !cfg.Cache.Enabled {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.Resolve.MaxDiagnostics != 100 {
		t.Fatalf("defaults must survive partial manifests, got %d", cfg.Resolve.MaxDiagnostics)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown key", "[resolve]\nfoo = 1\n"},
		{"negative jobs", "[resolve]\njobs = -1\n"},
		{"bad crate name", "[package]\nname = \"1app\"\n"},
		{"keyword crate name", "[package]\nname = \"crate\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, t.TempDir(), tt.body)
			if _, err := Load(path); !errors.Is(err, ErrInvalid) {
				t.Fatalf("err = %v, want ErrInvalid", err)
			}
		})
	}
	path := writeManifest(t, t.TempDir(), "[package]\nname = \"модуль\"\n")
	if _, err := Load(path); err != nil {
		t.Fatalf("unicode crate name rejected: %v", err)
	}
	path = writeManifest(t, t.TempDir(), "[resolve\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected TOML syntax error")
	}
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"top\"\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	cfg, err := Discover(nested)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if cfg.Package.Name != "top" || cfg.Path == "" {
		t.Fatalf("cfg = %+v", cfg)
	}
}
