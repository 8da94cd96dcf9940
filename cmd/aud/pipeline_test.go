package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"aud/internal/config"
	"aud/internal/diag"
	"aud/internal/source"
)

func newTestCmd(t *testing.T) *cobra.Command {
	t.Helper()
	root := &cobra.Command{Use: "aud"}
	root.PersistentFlags().String("color", "auto", "")
	root.PersistentFlags().String("config", "", "")
	child := &cobra.Command{Use: "child"}
	root.AddCommand(child)
	return child
}

func TestResolveColorHonorsExplicitModes(t *testing.T) {
	cmd := newTestCmd(t)

	if err := cmd.Root().PersistentFlags().Set("color", "on"); err != nil {
		t.Fatal(err)
	}
	got, err := resolveColor(cmd, os.Stdout)
	if err != nil || !got {
		t.Fatalf("resolveColor(on) = %v, %v, want true, nil", got, err)
	}

	if err := cmd.Root().PersistentFlags().Set("color", "off"); err != nil {
		t.Fatal(err)
	}
	got, err = resolveColor(cmd, os.Stdout)
	if err != nil || got {
		t.Fatalf("resolveColor(off) = %v, %v, want false, nil", got, err)
	}
}

func TestLoadConfigDefaultsWithoutFlag(t *testing.T) {
	cmd := newTestCmd(t)
	cfg, err := loadConfig(cmd)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.MaxFuncDepth != 200 {
		t.Fatalf("MaxFuncDepth = %d, want default 200", cfg.MaxFuncDepth)
	}
}

func TestLoadConfigReadsFile(t *testing.T) {
	cmd := newTestCmd(t)
	path := filepath.Join(t.TempDir(), "aud.json")
	if err := os.WriteFile(path, []byte(`{"MAX_FUNC_DEPTH": 5}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Root().PersistentFlags().Set("config", path); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.MaxFuncDepth != 5 {
		t.Fatalf("MaxFuncDepth = %d, want 5", cfg.MaxFuncDepth)
	}
}

func TestCheckOneFileReportsParseErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.aud")
	if err := os.WriteFile(path, []byte(`int x = ;`), 0o644); err != nil {
		t.Fatal(err)
	}
	oc := checkOneFile(config.Default(), path)
	if oc.ok {
		t.Fatal("expected checkOneFile to report a parse error")
	}
	if oc.bag.Empty() {
		t.Fatal("expected at least one diagnostic")
	}
}

func TestLexAndParseSkipsParseOnLexError(t *testing.T) {
	r := source.New("int x = 34a7;")
	bag := diag.NewBag()
	_, ok := lexAndParse(config.Default(), r, bag)
	if ok {
		t.Fatal("expected lexAndParse to fail on an invalid numeric literal")
	}
	if len(bag.Items()) != 1 {
		t.Fatalf("expected exactly one diagnostic once the lex stage fails, got %+v", bag.Items())
	}
	if bag.Items()[0].Code != diag.InvalidValueLex {
		t.Fatalf("expected InvalidValueLex, got %+v", bag.Items()[0])
	}
}

func TestCheckOneFileAcceptsWellTypedProgram(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ok.aud")
	if err := os.WriteFile(path, []byte(`int x = 1;`), 0o644); err != nil {
		t.Fatal(err)
	}
	oc := checkOneFile(config.Default(), path)
	if !oc.ok {
		t.Fatalf("expected a well-typed program to check cleanly, got diagnostics: %+v", oc.bag.Items())
	}
}
