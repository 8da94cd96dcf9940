package lexer

import (
	"aud/internal/diag"
	"aud/internal/source"
	"aud/internal/token"
)

func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.r.Offset()
	var runes []rune
	for isIdentContinue(lx.r.Peek(0)) {
		runes = append(runes, lx.r.Advance())
	}
	end := lx.r.Offset()
	text := string(runes)
	span := source.Span{Start: start, End: end}

	if len(runes) > lx.cfg.MaxIdentifierLength {
		lx.bag.Add(diag.Diagnostic{
			Severity: diag.SevError, Code: diag.MaxIdentifierLenExceeded,
			Message: "Max identifier length exceeded",
			Primary: source.Span{Start: start, End: start},
		})
	}

	if kind, ok := token.Keywords[text]; ok {
		tok := token.Token{Kind: kind, Span: span, Text: text}
		if kind == token.KwTrue || kind == token.KwFalse {
			tok.Literal.Bool = kind == token.KwTrue
		}
		return tok
	}
	return token.Token{Kind: token.Ident, Span: span, Text: text}
}
