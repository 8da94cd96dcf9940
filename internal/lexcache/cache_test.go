package lexcache

import (
	"path/filepath"
	"testing"

	"aud/internal/config"
	"aud/internal/diag"
	"aud/internal/lexer"
	"aud/internal/source"
	"aud/internal/token"
)

func lexAll(src string) []token.Token {
	r := source.New(src)
	bag := diag.NewBag()
	lx := lexer.New(r, config.Default(), bag)
	var toks []token.Token
	for {
		t := lx.Next()
		toks = append(toks, t)
		if t.Kind == token.EOF {
			break
		}
	}
	return toks
}

func TestSaveLoadRoundTripsTokens(t *testing.T) {
	src := `int x = 1 + 2;`
	toks := lexAll(src)
	payload := FromTokens(src, toks)

	path := filepath.Join(t.TempDir(), "cache.mp")
	if err := Save(path, payload); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Source != src {
		t.Fatalf("Source = %q, want %q", loaded.Source, src)
	}
	got := loaded.ToTokens()
	if len(got) != len(toks) {
		t.Fatalf("len(ToTokens()) = %d, want %d", len(got), len(toks))
	}
	for i := range toks {
		if got[i].Kind != toks[i].Kind || got[i].Span != toks[i].Span || got[i].Text != toks[i].Text {
			t.Fatalf("token %d = %+v, want %+v", i, got[i], toks[i])
		}
	}
}

func TestLoadRejectsMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.mp")); err == nil {
		t.Fatal("expected an error loading a nonexistent cache file")
	}
}
