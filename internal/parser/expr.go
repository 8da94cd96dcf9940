package parser

import (
	"aud/internal/ast"
	"aud/internal/diag"
	"aud/internal/source"
	"aud/internal/token"
)

// parseExpr is the entry point of the precedence chain, per spec.md's
// operator table:
//
//	or (||) < and (&&) < comparison (==,!=,<,<=,>,>=, non-associative)
//	< additive (+,-) < multiplicative (*,/) < unary (-) < postfix (.member)
func (p *Parser) parseExpr() ast.Expr {
	return p.parseOr()
}

func (p *Parser) parseOr() ast.Expr {
	left := p.parseAnd()
	if left == nil {
		return nil
	}
	for p.at(token.OrOr) {
		opTok := p.advance()
		right := p.parseAnd()
		if right == nil {
			return nil
		}
		left = &ast.Binary{Base: ast.Base{Span: left.Pos().Cover(right.Pos())}, Op: opTok.Kind.String(), Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseAnd() ast.Expr {
	left := p.parseComparison()
	if left == nil {
		return nil
	}
	for p.at(token.AndAnd) {
		opTok := p.advance()
		right := p.parseComparison()
		if right == nil {
			return nil
		}
		left = &ast.Binary{Base: ast.Base{Span: left.Pos().Cover(right.Pos())}, Op: opTok.Kind.String(), Left: left, Right: right}
	}
	return left
}

// parseComparison allows at most one comparison/equality operator: the
// grammar's comparison level is non-associative, so `a < b < c` is a parse
// error rather than `(a < b) < c`.
func (p *Parser) parseComparison() ast.Expr {
	left := p.parseAdditive()
	if left == nil {
		return nil
	}
	if isComparisonOp(p.cur.Kind) {
		opTok := p.advance()
		right := p.parseAdditive()
		if right == nil {
			return nil
		}
		return &ast.Binary{Base: ast.Base{Span: left.Pos().Cover(right.Pos())}, Op: opTok.Kind.String(), Left: left, Right: right}
	}
	return left
}

func isComparisonOp(k token.Kind) bool {
	switch k {
	case token.EqEq, token.BangEq, token.Lt, token.LtEq, token.Gt, token.GtEq:
		return true
	default:
		return false
	}
}

func (p *Parser) parseAdditive() ast.Expr {
	left := p.parseMultiplicative()
	if left == nil {
		return nil
	}
	for p.at(token.Plus) || p.at(token.Minus) {
		opTok := p.advance()
		right := p.parseMultiplicative()
		if right == nil {
			return nil
		}
		left = &ast.Binary{Base: ast.Base{Span: left.Pos().Cover(right.Pos())}, Op: opTok.Kind.String(), Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseMultiplicative() ast.Expr {
	left := p.parseUnary()
	if left == nil {
		return nil
	}
	for p.at(token.Star) || p.at(token.Slash) {
		opTok := p.advance()
		right := p.parseUnary()
		if right == nil {
			return nil
		}
		left = &ast.Binary{Base: ast.Base{Span: left.Pos().Cover(right.Pos())}, Op: opTok.Kind.String(), Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseUnary() ast.Expr {
	if p.at(token.Minus) {
		tok := p.advance()
		operand := p.parseUnary()
		if operand == nil {
			return nil
		}
		return &ast.Unary{Base: ast.Base{Span: tok.Span.Cover(operand.Pos())}, Op: "-", Expr: operand}
	}
	return p.parsePostfix()
}

// parsePostfix wraps a primary expression in a left-associative chain of
// '.name' attribute reads and '.name(args)' method calls.
func (p *Parser) parsePostfix() ast.Expr {
	expr := p.parsePrimary()
	if expr == nil {
		return nil
	}
	for p.at(token.Dot) {
		p.advance()
		nameTok := p.expect(token.Ident, "member name")
		m := &ast.Member{Base: ast.Base{Span: expr.Pos().Cover(nameTok.Span)}, Target: expr, Name: nameTok.Text}
		if p.at(token.LParen) {
			args, end := p.parseParenArgs()
			m.HasArgs = true
			m.Args = args
			m.Span = expr.Pos().Cover(end)
		}
		expr = m
	}
	return expr
}

func (p *Parser) parsePrimary() ast.Expr {
	tok := p.cur
	switch tok.Kind {
	case token.IntLit:
		p.advance()
		return &ast.IntLit{Base: ast.Base{Span: tok.Span}, Value: tok.Literal.Int}
	case token.FloatLit:
		p.advance()
		return &ast.FloatLit{Base: ast.Base{Span: tok.Span}, Value: tok.Literal.Float}
	case token.StringLit:
		p.advance()
		return &ast.StringLit{Base: ast.Base{Span: tok.Span}, Value: tok.Literal.String}
	case token.KwTrue, token.KwFalse:
		p.advance()
		return &ast.BoolLit{Base: ast.Base{Span: tok.Span}, Value: tok.Literal.Bool}
	case token.KwNull:
		p.advance()
		return &ast.NullLit{Base: ast.Base{Span: tok.Span}}
	case token.KwFolder, token.KwFile, token.KwAudio:
		p.advance()
		args, end := p.parseParenArgs()
		return &ast.Ctor{Base: ast.Base{Span: tok.Span.Cover(end)}, TypeName: tok.Kind.String(), Args: args}
	case token.Ident:
		p.advance()
		if p.at(token.LParen) {
			args, end := p.parseParenArgs()
			return &ast.Call{Base: ast.Base{Span: tok.Span.Cover(end)}, Callee: tok.Text, Args: args}
		}
		return &ast.Ident{Base: ast.Base{Span: tok.Span}, Name: tok.Text}
	case token.LBracket:
		p.advance()
		var items []ast.Expr
		for !p.at(token.RBracket) && !p.at(token.EOF) {
			if it := p.parseExpr(); it != nil {
				items = append(items, it)
			}
			if p.at(token.Comma) {
				p.advance()
				continue
			}
			break
		}
		end := p.cur.Span
		p.expect(token.RBracket, "]")
		return &ast.ListLit{Base: ast.Base{Span: tok.Span.Cover(end)}, Items: items}
	case token.LParen:
		p.advance()
		inner := p.parseExpr()
		end := p.cur.Span
		p.expect(token.RParen, ")")
		if inner == nil {
			return nil
		}
		return &ast.Paren{Base: ast.Base{Span: tok.Span.Cover(end)}, Inner: inner}
	default:
		p.errorf(diag.UnexpectedToken, tok.Span, "Unexpected token")
		return nil
	}
}

// parseParenArgs parses a parenthesized, comma-separated argument list
// starting at the current '(' token, consuming through the matching ')'.
func (p *Parser) parseParenArgs() ([]ast.Expr, source.Span) {
	p.expect(token.LParen, "(")
	var args []ast.Expr
	for !p.at(token.RParen) && !p.at(token.EOF) {
		if a := p.parseExpr(); a != nil {
			args = append(args, a)
		}
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	closeSpan := p.cur.Span
	p.expect(token.RParen, ")")
	return args, closeSpan
}
