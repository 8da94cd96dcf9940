package parser

import (
	"aud/internal/ast"
	"aud/internal/token"
)

// parseBlockStatement parses one block_statement per the grammar:
//
//	block_statement := var_decl | assignment | function_call_stmt
//	                 | if_stmt | while_stmt | expression_stmt | return_stmt
//
// return_stmt is accepted here (not only at the tail of a function body)
// so nested if/while blocks inside a function can return early; parseFuncDef
// separately enforces that the body's last top-level statement is a return.
// On error the statement resynchronizes and this returns nil.
func (p *Parser) parseBlockStatement() ast.Stmt {
	switch {
	case p.cur.Kind.IsTypeKeyword():
		return p.parseVarDecl()
	case p.at(token.KwIf):
		return p.parseIf()
	case p.at(token.KwWhile):
		return p.parseWhile()
	case p.at(token.KwReturn):
		return p.parseReturn()
	default:
		return p.parseExprStatement()
	}
}

func (p *Parser) parseVarDecl() ast.Stmt {
	start := p.cur.Span
	ty := p.parseType()
	name := p.expect(token.Ident, "variable name")
	p.expect(token.Assign, "=")
	init := p.parseExpr()
	end := p.cur.Span
	semi := p.expect(token.Semicolon, ";")
	if init == nil {
		if semi.Kind != token.Semicolon {
			p.sync()
		}
		return nil
	}
	return &ast.VarDecl{Base: ast.Base{Span: start.Cover(end)}, Type: ty, Name: name.Text, Init: init}
}

// parseExprStatement parses either an assignment (when the parsed
// expression is a bare identifier immediately followed by '='), or a
// standalone expression statement (a function call, in valid programs).
func (p *Parser) parseExprStatement() ast.Stmt {
	start := p.cur.Span
	expr := p.parseExpr()
	if expr == nil {
		p.sync()
		return nil
	}
	if id, ok := expr.(*ast.Ident); ok && p.at(token.Assign) {
		p.advance()
		rhs := p.parseExpr()
		end := p.cur.Span
		semi := p.expect(token.Semicolon, ";")
		if rhs == nil {
			if semi.Kind != token.Semicolon {
				p.sync()
			}
			return nil
		}
		return &ast.Assign{Base: ast.Base{Span: start.Cover(end)}, Name: id.Name, Expr: rhs}
	}
	end := p.cur.Span
	p.expect(token.Semicolon, ";")
	return &ast.ExprStmt{Base: ast.Base{Span: start.Cover(end)}, Expr: expr}
}

func (p *Parser) parseIf() ast.Stmt {
	start := p.cur.Span
	p.advance() // 'if'
	p.expect(token.LParen, "(")
	cond := p.parseExpr()
	p.expect(token.RParen, ")")
	p.expect(token.LBrace, "{")
	then := p.parseBlockUntil(token.RBrace)
	end := p.cur.Span
	p.expect(token.RBrace, "}")
	var elseBlock []ast.Stmt
	if p.at(token.KwElse) {
		p.advance()
		p.expect(token.LBrace, "{")
		elseBlock = p.parseBlockUntil(token.RBrace)
		end = p.cur.Span
		p.expect(token.RBrace, "}")
		if elseBlock == nil {
			elseBlock = []ast.Stmt{}
		}
	}
	if cond == nil {
		p.sync()
		return nil
	}
	return &ast.If{Base: ast.Base{Span: start.Cover(end)}, Cond: cond, Then: then, Else: elseBlock}
}

func (p *Parser) parseWhile() ast.Stmt {
	start := p.cur.Span
	p.advance() // 'while'
	p.expect(token.LParen, "(")
	cond := p.parseExpr()
	p.expect(token.RParen, ")")
	p.expect(token.LBrace, "{")
	body := p.parseBlockUntil(token.RBrace)
	end := p.cur.Span
	p.expect(token.RBrace, "}")
	if cond == nil {
		p.sync()
		return nil
	}
	return &ast.While{Base: ast.Base{Span: start.Cover(end)}, Cond: cond, Body: body}
}

func (p *Parser) parseReturn() ast.Stmt {
	start := p.cur.Span
	p.advance() // 'return'
	var value ast.Expr
	if !p.at(token.Semicolon) {
		value = p.parseExpr()
	}
	end := p.cur.Span
	p.expect(token.Semicolon, ";")
	return &ast.Return{Base: ast.Base{Span: start.Cover(end)}, Value: value}
}
