// Package parser implements Aud's recursive-descent parser: a single
// token of lookahead over the lexer's token stream, producing an
// internal/ast tree. Parse errors resynchronize to the next ';' or the
// closing '}' at the current nesting depth and parsing resumes, following
// the teacher's parser.Parser error-recovery discipline.
package parser

import (
	"aud/internal/ast"
	"aud/internal/diag"
	"aud/internal/source"
	"aud/internal/token"
)

// TokenSource is anything the parser can pull a token stream from.
// *lexer.Lexer satisfies it directly; cmd/aud's fmt-diag also feeds the
// parser a cached token slice through this same interface, so a re-parse
// from `aud lex --cache`'s output never needs to re-run the lexer.
type TokenSource interface {
	Next() token.Token
}

// Parser consumes a TokenSource and builds a Program.
type Parser struct {
	lx    TokenSource
	bag   *diag.Bag
	cur   token.Token
	valid bool // false once any parse error has been recorded
}

// New builds a Parser over lx, reporting into bag.
func New(lx TokenSource, bag *diag.Bag) *Parser {
	p := &Parser{lx: lx, bag: bag, valid: true}
	p.cur = p.lx.Next()
	return p
}

// Valid reports whether parsing completed with zero parse errors, per
// spec.md §4.3 ("the tree is considered invalid ... if any parse error
// was emitted").
func (p *Parser) Valid() bool { return p.valid }

func (p *Parser) advance() token.Token {
	tok := p.cur
	p.cur = p.lx.Next()
	return tok
}

func (p *Parser) at(k token.Kind) bool { return p.cur.Kind == k }

func (p *Parser) errorf(code diag.Code, span source.Span, format string, args ...any) {
	p.valid = false
	p.bag.Errorf(code, span, format, args...)
}

// expect consumes the current token if it matches k, else records
// Unexpected token and resynchronizes.
func (p *Parser) expect(k token.Kind, what string) token.Token {
	if p.at(k) {
		return p.advance()
	}
	p.errorf(diag.UnexpectedToken, p.cur.Span, "Unexpected token")
	_ = what
	return p.cur
}

// sync resynchronizes to the next ';' (consuming it) or the next '}' at
// the current nesting depth (not consuming it), whichever comes first.
func (p *Parser) sync() {
	depth := 0
	for {
		switch p.cur.Kind {
		case token.EOF:
			return
		case token.Semicolon:
			if depth == 0 {
				p.advance()
				return
			}
		case token.LBrace:
			depth++
		case token.RBrace:
			if depth == 0 {
				return
			}
			depth--
		}
		p.advance()
	}
}

// Parse consumes the entire token stream and returns the Program. Multiple
// parse errors may be recorded; check Valid() before handing the tree to
// the type checker.
func (p *Parser) Parse() *ast.Program {
	prog := &ast.Program{}
	for !p.at(token.EOF) {
		if p.at(token.KwFunc) {
			if fn := p.parseFuncDef(); fn != nil {
				prog.Funcs = append(prog.Funcs, fn)
			}
			continue
		}
		if s := p.parseBlockStatement(); s != nil {
			prog.Stmts = append(prog.Stmts, s)
		}
	}
	return prog
}

func (p *Parser) parseFuncDef() *ast.FuncDef {
	start := p.cur.Span
	p.advance() // 'func'
	retType := p.parseType()
	nameTok := p.expect(token.Ident, "function name")
	p.expect(token.LParen, "(")
	var params []ast.Param
	for !p.at(token.RParen) && !p.at(token.EOF) {
		pt := p.parseType()
		pn := p.expect(token.Ident, "parameter name")
		params = append(params, ast.Param{Type: pt, Name: pn.Text, Span: pn.Span})
		if p.at(token.Comma) {
			p.advance()
		} else {
			break
		}
	}
	p.expect(token.RParen, ")")
	p.expect(token.LBrace, "{")
	body := p.parseBlockUntil(token.RBrace)
	closeSpan := p.cur.Span
	p.expect(token.RBrace, "}")

	if len(body) == 0 || !isReturn(body[len(body)-1]) {
		p.errorf(diag.UnexpectedToken, closeSpan, "Unexpected token")
	}

	return &ast.FuncDef{
		ReturnType: retType,
		Name:       nameTok.Text,
		Params:     params,
		Body:       body,
		Span:       start.Cover(closeSpan),
	}
}

func isReturn(s ast.Stmt) bool {
	_, ok := s.(*ast.Return)
	return ok
}

// parseType parses a TypeExpr: a bare type keyword, or List<Elem>.
func (p *Parser) parseType() ast.TypeExpr {
	start := p.cur.Span
	if p.at(token.KwList) {
		p.advance()
		p.expect(token.Lt, "<")
		elem := p.parseType()
		end := p.cur.Span
		p.expect(token.Gt, ">")
		return ast.TypeExpr{Name: "List", Elem: &elem, Span: start.Cover(end)}
	}
	if !p.cur.Kind.IsTypeKeyword() {
		p.errorf(diag.UnexpectedToken, p.cur.Span, "Unexpected token")
		return ast.TypeExpr{Name: "void", Span: p.cur.Span}
	}
	tok := p.advance()
	return ast.TypeExpr{Name: tok.Kind.String(), Span: tok.Span}
}

// parseBlockUntil parses block_statements until the closer token (not
// consumed) or EOF.
func (p *Parser) parseBlockUntil(closer token.Kind) []ast.Stmt {
	var out []ast.Stmt
	for !p.at(closer) && !p.at(token.EOF) {
		if s := p.parseBlockStatement(); s != nil {
			out = append(out, s)
		}
	}
	return out
}
