package lexer

import (
	"testing"

	"aud/internal/config"
	"aud/internal/diag"
	"aud/internal/source"
	"aud/internal/token"
)

func lexAll(t *testing.T, src string, cfg config.Config) ([]token.Token, *diag.Bag) {
	t.Helper()
	bag := diag.NewBag()
	r := source.New(src)
	lx := New(r, cfg, bag)
	return lx.Tokens(), bag
}

func TestLexerBasicTokens(t *testing.T) {
	toks, bag := lexAll(t, `int x = 10 + 20;`, config.Default())
	if !bag.Empty() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	wantKinds := []token.Kind{token.KwInt, token.Ident, token.Assign, token.IntLit, token.Plus, token.IntLit, token.Semicolon, token.EOF}
	if len(toks) != len(wantKinds) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(wantKinds), toks)
	}
	for i, want := range wantKinds {
		if toks[i].Kind != want {
			t.Fatalf("token[%d] = %v, want %v", i, toks[i].Kind, want)
		}
	}
}

func TestLexerBlockComment(t *testing.T) {
	toks, bag := lexAll(t, `/* comment */ true`, config.Default())
	if !bag.Empty() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	if len(toks) != 2 || toks[0].Kind != token.KwTrue {
		t.Fatalf("unexpected tokens: %+v", toks)
	}
}

func TestLexerUnterminatedComment(t *testing.T) {
	_, bag := lexAll(t, `/* never closes`, config.Default())
	if bag.Len() != 1 || bag.Items()[0].Code != diag.MissingCommentClose {
		t.Fatalf("expected MissingCommentClose, got %+v", bag.Items())
	}
}

func TestLexerInvalidNumericSuffix(t *testing.T) {
	toks, bag := lexAll(t, `34a7`, config.Default())
	if bag.Len() != 1 || bag.Items()[0].Code != diag.InvalidValueLex {
		t.Fatalf("expected InvalidValueLex, got %+v", bag.Items())
	}
	if toks[0].Kind != token.Invalid || toks[0].Text != "34a7" {
		t.Fatalf("unexpected token: %+v", toks[0])
	}
}

func TestLexerFloatLiteral(t *testing.T) {
	toks, bag := lexAll(t, `3.14`, config.Default())
	if !bag.Empty() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	if toks[0].Kind != token.FloatLit || toks[0].Literal.Float != 3.14 {
		t.Fatalf("unexpected token: %+v", toks[0])
	}
}

func TestLexerUnterminatedString(t *testing.T) {
	_, bag := lexAll(t, `"unterminated`, config.Default())
	if bag.Len() != 1 || bag.Items()[0].Code != diag.InvalidValueLex {
		t.Fatalf("expected InvalidValueLex, got %+v", bag.Items())
	}
}

func TestLexerMaxStringLengthCountsCharsNotBytes(t *testing.T) {
	cfg := config.Default()
	cfg.MaxStringLength = 3
	// Three escape pairs decode to three characters; each pair is two raw
	// bytes, so a byte-based count would trip the limit early.
	_, bag := lexAll(t, `"\n\n\n"`, cfg)
	if !bag.Empty() {
		t.Fatalf("expected three decoded characters to stay within the limit, got %+v", bag.Items())
	}

	_, bag = lexAll(t, `"\n\n\n\n"`, cfg)
	if bag.Len() != 1 || bag.Items()[0].Code != diag.MaxStringLengthExceeded {
		t.Fatalf("expected MaxStringLengthExceeded for a fourth character, got %+v", bag.Items())
	}
}

func TestLexerMaxIdentifierLength(t *testing.T) {
	cfg := config.Default()
	cfg.MaxIdentifierLength = 3
	_, bag := lexAll(t, `abcdef`, cfg)
	if bag.Len() != 1 || bag.Items()[0].Code != diag.MaxIdentifierLenExceeded {
		t.Fatalf("expected MaxIdentifierLenExceeded, got %+v", bag.Items())
	}
}

func TestLexerInvalidSymbolSkipsAndContinues(t *testing.T) {
	toks, bag := lexAll(t, `1 $ 2`, config.Default())
	if bag.Len() != 1 || bag.Items()[0].Code != diag.InvalidSymbol {
		t.Fatalf("expected InvalidSymbol, got %+v", bag.Items())
	}
	wantKinds := []token.Kind{token.IntLit, token.IntLit, token.EOF}
	if len(toks) != len(wantKinds) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(wantKinds), toks)
	}
}

func TestLexerPositionsAreOneIndexed(t *testing.T) {
	r := source.New("int x = 10 / 0;")
	bag := diag.NewBag()
	lx := New(r, config.Default(), bag)
	toks := lx.Tokens()
	pos := r.PositionAt(toks[0].Span.Start)
	if pos.Line != 1 || pos.Column != 1 {
		t.Fatalf("first token position = %+v, want (1,1)", pos)
	}
}
