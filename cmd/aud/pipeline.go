package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"aud/internal/ast"
	"aud/internal/config"
	"aud/internal/diag"
	"aud/internal/diagfmt"
	"aud/internal/lexer"
	"aud/internal/parser"
	"aud/internal/sema"
	"aud/internal/source"
	"aud/internal/token"
)

// loadConfig resolves --config against internal/config's defaults,
// mirroring the teacher's flag-then-default resolution order.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return config.Config{}, err
	}
	if path == "" {
		return config.Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return config.Load(f)
}

// resolveColor turns the --color flag (auto|on|off) into a bool, checking
// isTerminal on out only when the flag is "auto" — the same resolution
// the teacher's cmd/surge/main.go isTerminal helper feeds.
func resolveColor(cmd *cobra.Command, out *os.File) (bool, error) {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, err
	}
	switch mode {
	case "on":
		return true, nil
	case "off":
		return false, nil
	default:
		return isTerminal(out), nil
	}
}

// readSource loads path's contents into a normalized source.Reader.
func readSource(path string) (*source.Reader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return source.New(string(data)), nil
}

// lexAndParse runs the lexer to completion before ever starting the
// parser. Per the pipeline's "downstream stages are skipped once a stage
// reports an error" rule, a lex error must not also produce parse errors
// from the same invalid token (e.g. an Invalid token hitting parsePrimary's
// default case): the lexer is drained into a token slice first, and
// parsing only begins once the bag is confirmed empty, replaying the
// slice through the same TokenSource fmt-diag uses for cached tokens.
func lexAndParse(cfg config.Config, r *source.Reader, bag *diag.Bag) (*ast.Program, bool) {
	lx := lexer.New(r, cfg, bag)
	toks := drainTokens(lx)
	if !bag.Empty() {
		return nil, false
	}
	p := parser.New(newReplayLexer(toks), bag)
	prog := p.Parse()
	return prog, p.Valid() && bag.Empty()
}

// drainTokens runs lx to EOF and returns every token it produced.
func drainTokens(lx *lexer.Lexer) []token.Token {
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

// typeCheck runs sema.Check over prog, reporting into bag.
func typeCheck(prog *ast.Program, bag *diag.Bag) bool {
	res := sema.Check(prog, sema.Options{Reporter: bag})
	return res.Valid
}

// printDiagnostics renders every diagnostic in bag to stderr in the
// spec's wire format, honoring --color.
func printDiagnostics(cmd *cobra.Command, r *source.Reader, bag *diag.Bag) {
	useColor, _ := resolveColor(cmd, os.Stderr)
	fmt.Fprint(os.Stderr, diagfmt.FormatAll(bag, r, useColor))
}
