// Package project loads the optional aud.toml project manifest: a
// host-tooling convenience that names a package, its entry file, default
// run mode, and preferred color mode. It is adapted from the teacher's
// surge.toml manifest loader in cmd/surge/project_manifest.go and
// internal/project/root.go, scaled down from a multi-module import graph
// to Aud's single-entry-file model.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Manifest is the parsed contents of an aud.toml file plus where it lives.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config mirrors aud.toml's top-level tables. None of these fields ever
// supply the interpreter's MAX_* limits; those come only from the JSON
// config loaded by internal/config, per spec.md §6.
type Config struct {
	Package PackageConfig `toml:"package"`
	Run     RunConfig     `toml:"run"`
}

// PackageConfig is aud.toml's [package] table.
type PackageConfig struct {
	Name string `toml:"name"`
}

// RunConfig is aud.toml's [run] table.
type RunConfig struct {
	// Main is the entry .aud file, relative to the manifest's directory.
	Main string `toml:"main"`
	// Mode names a run mode: "lex", "parse", "type-check", or "run" (full
	// execution). cmd/aud does not load aud.toml, so neither Mode nor
	// Color changes what the CLI does.
	Mode string `toml:"mode"`
	// Color names a color mode: "auto", "on", or "off".
	Color string `toml:"color"`
}

// FindManifest walks up from startDir looking for aud.toml.
func FindManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "aud.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load walks up from startDir and parses aud.toml if present. ok is false
// (with a nil error) when no manifest exists anywhere above startDir.
func Load(startDir string) (m *Manifest, ok bool, err error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := loadConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

func loadConfig(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("run") || strings.TrimSpace(cfg.Run.Main) == "" {
		return Config{}, fmt.Errorf("%s: missing [run].main", path)
	}
	if cfg.Run.Mode == "" {
		cfg.Run.Mode = "run"
	}
	if cfg.Run.Color == "" {
		cfg.Run.Color = "auto"
	}
	return cfg, nil
}

// EntryPath resolves [run].main to an absolute path relative to m.Root.
func (m *Manifest) EntryPath() string {
	return filepath.Join(m.Root, filepath.FromSlash(m.Config.Run.Main))
}
