package lexer

import (
	"aud/internal/diag"
	"aud/internal/source"
	"aud/internal/token"
)

// two-character operators, checked before their one-character prefixes.
var twoCharOps = map[[2]rune]token.Kind{
	{'<', '='}: token.LtEq,
	{'>', '='}: token.GtEq,
	{'=', '='}: token.EqEq,
	{'!', '='}: token.BangEq,
	{'&', '&'}: token.AndAnd,
	{'|', '|'}: token.OrOr,
}

var oneCharOps = map[rune]token.Kind{
	'+': token.Plus, '-': token.Minus, '*': token.Star, '/': token.Slash,
	'<': token.Lt, '>': token.Gt, '=': token.Assign,
	'(': token.LParen, ')': token.RParen,
	'{': token.LBrace, '}': token.RBrace,
	'[': token.LBracket, ']': token.RBracket,
	',': token.Comma, ';': token.Semicolon, '.': token.Dot,
}

func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.r.Offset()
	a, b := lx.r.Peek(0), lx.r.Peek(1)
	if kind, ok := twoCharOps[[2]rune{a, b}]; ok {
		lx.r.Advance()
		lx.r.Advance()
		end := lx.r.Offset()
		return token.Token{Kind: kind, Span: source.Span{Start: start, End: end}, Text: string([]rune{a, b})}
	}
	if kind, ok := oneCharOps[a]; ok {
		lx.r.Advance()
		end := lx.r.Offset()
		return token.Token{Kind: kind, Span: source.Span{Start: start, End: end}, Text: string(a)}
	}

	lx.r.Advance()
	lx.bag.Add(diag.Diagnostic{
		Severity: diag.SevError, Code: diag.InvalidSymbol,
		Message: "Invalid symbol",
		Primary: source.Span{Start: start, End: start},
	})
	return lx.Next()
}
