package lexer

import (
	"strings"

	"aud/internal/diag"
	"aud/internal/source"
	"aud/internal/token"
)

// scanString scans a double-quoted string literal. A backslash escapes
// the following character (so `\"` does not terminate the string); all
// other characters between the quotes are taken verbatim. Exceeding
// MAX_STRING_LENGTH (measured in characters between the quotes) or
// running off the end of input before the closing quote are reported at
// the opening quote's position, and a best-effort token is still
// produced so the lexer can continue.
func (lx *Lexer) scanString() token.Token {
	start := lx.r.Offset()
	lx.r.Advance() // opening '"'

	var raw strings.Builder
	var decoded strings.Builder
	terminated := false
	chars := 0
	for {
		if lx.r.EOF() {
			break
		}
		ch := lx.r.Peek(0)
		if ch == '"' {
			lx.r.Advance()
			terminated = true
			break
		}
		if ch == '\\' && lx.r.Peek(1) != eofRune {
			lx.r.Advance()
			esc := lx.r.Advance()
			raw.WriteRune('\\')
			raw.WriteRune(esc)
			decoded.WriteRune(unescape(esc))
			chars++
			continue
		}
		lx.r.Advance()
		raw.WriteRune(ch)
		decoded.WriteRune(ch)
		chars++
	}
	end := lx.r.Offset()
	span := source.Span{Start: start, End: end}

	if !terminated {
		lx.bag.Add(diag.Diagnostic{
			Severity: diag.SevError, Code: diag.InvalidValueLex,
			Message: "Invalid value",
			Primary: source.Span{Start: start, End: start},
		})
	} else if chars > lx.cfg.MaxStringLength {
		lx.bag.Add(diag.Diagnostic{
			Severity: diag.SevError, Code: diag.MaxStringLengthExceeded,
			Message: "Max string length exceeded",
			Primary: source.Span{Start: start, End: start},
		})
	}

	return token.Token{Kind: token.StringLit, Span: span, Text: raw.String(), Literal: token.Literal{String: decoded.String()}}
}

func unescape(ch rune) rune {
	switch ch {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	default:
		return ch
	}
}

const eofRune rune = -1
