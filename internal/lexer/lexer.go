// Package lexer implements Aud's tokenizer: a whitespace/comment filter in
// front of a set of per-shape scanners, following the teacher's
// lexer.Lexer/scan_*.go decomposition.
package lexer

import (
	"aud/internal/config"
	"aud/internal/diag"
	"aud/internal/source"
	"aud/internal/token"
)

// Lexer produces a finite token sequence terminated by EOF.
type Lexer struct {
	r    *source.Reader
	cfg  config.Config
	bag  *diag.Bag
}

// New builds a Lexer over the given source, enforcing cfg's limits and
// reporting into bag.
func New(r *source.Reader, cfg config.Config, bag *diag.Bag) *Lexer {
	return &Lexer{r: r, cfg: cfg, bag: bag}
}

func (lx *Lexer) mark() source.Span {
	off := lx.r.Offset()
	return source.Span{Start: off, End: off}
}

// Next scans and returns the next significant token, skipping whitespace
// and comments first. Always returns Kind == token.EOF once input is
// exhausted.
func (lx *Lexer) Next() token.Token {
	lx.skipTrivia()

	if lx.r.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.mark()}
	}

	ch := lx.r.Peek(0)
	switch {
	case isIdentStart(ch):
		return lx.scanIdentOrKeyword()
	case isDigit(ch):
		return lx.scanNumber()
	case ch == '"':
		return lx.scanString()
	default:
		return lx.scanOperatorOrPunct()
	}
}

// Tokens drains the lexer into a slice, always ending with one EOF token.
func (lx *Lexer) Tokens() []token.Token {
	var out []token.Token
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
	}
}

func (lx *Lexer) skipTrivia() {
	for {
		switch {
		case !lx.r.EOF() && isSpace(lx.r.Peek(0)):
			lx.r.Advance()
		case lx.r.Peek(0) == '/' && lx.r.Peek(1) == '*':
			lx.skipBlockComment()
		default:
			return
		}
	}
}

func (lx *Lexer) skipBlockComment() {
	start := lx.r.Offset()
	startPos := lx.r.Position()
	lx.r.Advance() // '/'
	lx.r.Advance() // '*'
	for {
		if lx.r.EOF() {
			lx.bag.Add(diag.Diagnostic{
				Severity: diag.SevError, Code: diag.MissingCommentClose,
				Message: "Missing comment close",
				Primary: source.Span{Start: start, End: lx.r.Offset()},
			})
			_ = startPos
			return
		}
		if lx.r.Peek(0) == '*' && lx.r.Peek(1) == '/' {
			lx.r.Advance()
			lx.r.Advance()
			length := lx.r.Offset() - start
			if int(length) > lx.cfg.MaxCommentLength {
				lx.bag.Add(diag.Diagnostic{
					Severity: diag.SevError, Code: diag.MaxCommentLengthExceeded,
					Message: "Max comment length exceeded",
					Primary: source.Span{Start: start, End: lx.r.Offset()},
				})
			}
			return
		}
		lx.r.Advance()
	}
}

func isSpace(r rune) bool { return r == ' ' || r == '\t' || r == '\n' }

// isIdentStart reports the characters that may begin an identifier. Per
// spec, identifiers start with a letter; '_' is a continuation character
// only, so a leading underscore is not identifier-shaped and falls
// through to the invalid-symbol path instead.
func isIdentStart(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentContinue(r rune) bool {
	return isIdentStart(r) || r == '_' || isDigit(r)
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
