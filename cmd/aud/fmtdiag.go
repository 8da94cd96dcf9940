package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"aud/internal/diag"
	"aud/internal/diagfmt"
	"aud/internal/lexcache"
	"aud/internal/parser"
	"aud/internal/source"
	"aud/internal/token"
)

var fmtDiagCmd = &cobra.Command{
	Use:   "fmt-diag --cache <path>",
	Short: "Re-render diagnostics from a saved token cache without re-lexing source",
	Args:  cobra.NoArgs,
	RunE:  runFmtDiag,
}

func init() {
	fmtDiagCmd.Flags().String("cache", "", "msgpack token cache written by `aud lex --cache`")
	_ = fmtDiagCmd.MarkFlagRequired("cache")
}

func runFmtDiag(cmd *cobra.Command, args []string) error {
	cachePath, err := cmd.Flags().GetString("cache")
	if err != nil {
		return err
	}
	payload, err := lexcache.Load(cachePath)
	if err != nil {
		return fmt.Errorf("load cache: %w", err)
	}

	r := source.New(payload.Source)
	bag := diag.NewBag()
	p := parser.New(newReplayLexer(payload.ToTokens()), bag)
	prog := p.Parse()
	if !p.Valid() || !bag.Empty() {
		printDiagnostics(cmd, r, bag)
		os.Exit(1)
	}
	if !typeCheck(prog, bag) {
		printDiagnostics(cmd, r, bag)
		os.Exit(1)
	}

	useColor, _ := resolveColor(cmd, os.Stdout)
	fmt.Fprint(cmd.OutOrStdout(), diagfmt.FormatAll(bag, r, useColor))
	return nil
}

// replayLexer implements parser.TokenSource by draining a pre-lexed token
// slice instead of scanning source, so fmt-diag can re-parse a cached
// token stream without re-running the lexer.
type replayLexer struct {
	toks []token.Token
	pos  int
}

func newReplayLexer(toks []token.Token) *replayLexer {
	return &replayLexer{toks: toks}
}

func (l *replayLexer) Next() token.Token {
	if l.pos >= len(l.toks) {
		return token.Token{Kind: token.EOF}
	}
	t := l.toks[l.pos]
	l.pos++
	return t
}
