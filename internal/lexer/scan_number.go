package lexer

import (
	"strconv"

	"aud/internal/diag"
	"aud/internal/source"
	"aud/internal/token"
)

// scanNumber scans an integer or float literal. Integers are either a
// lone "0" or a non-zero digit followed by digits; floats add a "." and
// zero or more trailing digits. A literal immediately followed by an
// identifier-shaped character (e.g. "34a7") is reported as Invalid value
// and the whole alphanumeric run is consumed as one bad token.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.r.Offset()
	var digits []rune
	for isDigit(lx.r.Peek(0)) {
		digits = append(digits, lx.r.Advance())
	}

	isFloat := false
	if lx.r.Peek(0) == '.' && len(digits) > 0 {
		isFloat = true
		digits = append(digits, lx.r.Advance()) // '.'
		for isDigit(lx.r.Peek(0)) {
			digits = append(digits, lx.r.Advance())
		}
	}

	if isIdentContinue(lx.r.Peek(0)) {
		for isIdentContinue(lx.r.Peek(0)) {
			digits = append(digits, lx.r.Advance())
		}
		end := lx.r.Offset()
		lx.bag.Add(diag.Diagnostic{
			Severity: diag.SevError, Code: diag.InvalidValueLex,
			Message: "Invalid value",
			Primary: source.Span{Start: start, End: start},
		})
		return token.Token{Kind: token.Invalid, Span: source.Span{Start: start, End: end}, Text: string(digits)}
	}

	end := lx.r.Offset()
	text := string(digits)
	span := source.Span{Start: start, End: end}
	if isFloat {
		f, _ := strconv.ParseFloat(text, 64)
		return token.Token{Kind: token.FloatLit, Span: span, Text: text, Literal: token.Literal{Float: f}}
	}
	i, _ := strconv.ParseInt(text, 10, 64)
	return token.Token{Kind: token.IntLit, Span: span, Text: text, Literal: token.Literal{Int: i}}
}
