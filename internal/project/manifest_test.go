package project

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "aud.toml"), []byte(body), 0o644); err != nil {
		t.Fatalf("write aud.toml: %v", err)
	}
}

func TestFindManifestWalksUpToParent(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[run]\nmain = \"main.aud\"\n")
	sub := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path, ok, err := FindManifest(sub)
	if err != nil || !ok {
		t.Fatalf("FindManifest() = %q, %v, %v", path, ok, err)
	}
	want := filepath.Join(root, "aud.toml")
	if path != want {
		t.Fatalf("path = %q, want %q", path, want)
	}
}

func TestFindManifestNotFound(t *testing.T) {
	dir := t.TempDir()
	_, ok, err := FindManifest(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected ok=false with no aud.toml anywhere above dir")
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[package]\nname = \"demo\"\n[run]\nmain = \"main.aud\"\n")
	m, ok, err := Load(dir)
	if err != nil || !ok {
		t.Fatalf("Load() = %v, %v, %v", m, ok, err)
	}
	if m.Config.Run.Mode != "run" {
		t.Fatalf("Mode = %q, want default %q", m.Config.Run.Mode, "run")
	}
	if m.Config.Run.Color != "auto" {
		t.Fatalf("Color = %q, want default %q", m.Config.Run.Color, "auto")
	}
	if got, want := m.EntryPath(), filepath.Join(dir, "main.aud"); got != want {
		t.Fatalf("EntryPath() = %q, want %q", got, want)
	}
}

func TestLoadRejectsMissingRunMain(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[package]\nname = \"demo\"\n")
	if _, _, err := Load(dir); err == nil {
		t.Fatal("expected an error for a manifest missing [run].main")
	}
}
