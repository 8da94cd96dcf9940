package parser

import (
	"testing"

	"aud/internal/ast"
	"aud/internal/config"
	"aud/internal/diag"
	"aud/internal/lexer"
	"aud/internal/source"
)

func parseSrc(t *testing.T, src string) (*ast.Program, *Parser) {
	t.Helper()
	r := source.New(src)
	bag := diag.NewBag()
	lx := lexer.New(r, config.Default(), bag)
	p := New(lx, bag)
	prog := p.Parse()
	return prog, p
}

func TestParserFuncDefRequiresTrailingReturn(t *testing.T) {
	prog, p := parseSrc(t, `func int add(int a, int b) { return a + b; }`)
	if !p.Valid() {
		t.Fatalf("expected valid parse")
	}
	if len(prog.Funcs) != 1 {
		t.Fatalf("expected 1 func, got %d", len(prog.Funcs))
	}
	fn := prog.Funcs[0]
	if fn.Name != "add" || len(fn.Params) != 2 {
		t.Fatalf("unexpected func shape: %+v", fn)
	}
	ret, ok := fn.Body[len(fn.Body)-1].(*ast.Return)
	if !ok {
		t.Fatalf("expected trailing return, got %T", fn.Body[len(fn.Body)-1])
	}
	bin, ok := ret.Value.(*ast.Binary)
	if !ok || bin.Op != "+" {
		t.Fatalf("unexpected return value: %+v", ret.Value)
	}
}

func TestParserFuncDefWithoutTrailingReturnIsInvalid(t *testing.T) {
	_, p := parseSrc(t, `func void noop() { int x = 1; }`)
	if p.Valid() {
		t.Fatalf("expected invalid parse: missing trailing return")
	}
}

func TestParserVoidFuncRequiresBareReturn(t *testing.T) {
	prog, p := parseSrc(t, `func void noop() { return; }`)
	if !p.Valid() {
		t.Fatalf("expected valid parse")
	}
	ret := prog.Funcs[0].Body[0].(*ast.Return)
	if ret.Value != nil {
		t.Fatalf("expected bare return, got %+v", ret.Value)
	}
}

func TestParserVarDeclAndAssign(t *testing.T) {
	prog, p := parseSrc(t, `int x = 1; x = 2;`)
	if !p.Valid() {
		t.Fatalf("expected valid parse")
	}
	if len(prog.Stmts) != 2 {
		t.Fatalf("expected 2 stmts, got %d", len(prog.Stmts))
	}
	decl, ok := prog.Stmts[0].(*ast.VarDecl)
	if !ok || decl.Name != "x" || decl.Type.Name != "int" {
		t.Fatalf("unexpected decl: %+v", prog.Stmts[0])
	}
	assign, ok := prog.Stmts[1].(*ast.Assign)
	if !ok || assign.Name != "x" {
		t.Fatalf("unexpected assign: %+v", prog.Stmts[1])
	}
}

func TestParserListType(t *testing.T) {
	prog, p := parseSrc(t, `List<int> xs = [1, 2, 3];`)
	if !p.Valid() {
		t.Fatalf("expected valid parse")
	}
	decl := prog.Stmts[0].(*ast.VarDecl)
	if decl.Type.Name != "List" || decl.Type.Elem.Name != "int" {
		t.Fatalf("unexpected type: %+v", decl.Type)
	}
	lit, ok := decl.Init.(*ast.ListLit)
	if !ok || len(lit.Items) != 3 {
		t.Fatalf("unexpected init: %+v", decl.Init)
	}
}

func TestParserIfWhileNesting(t *testing.T) {
	prog, p := parseSrc(t, `
func int f(int n) {
    if (n < 0) {
        n = 0;
    } else {
        while (n > 0) {
            n = n - 1;
        }
    }
    return n;
}`)
	if !p.Valid() {
		t.Fatalf("expected valid parse")
	}
	fn := prog.Funcs[0]
	if len(fn.Body) != 2 {
		t.Fatalf("expected 2 top-level body stmts, got %d", len(fn.Body))
	}
	ifs, ok := fn.Body[0].(*ast.If)
	if !ok {
		t.Fatalf("expected if stmt, got %T", fn.Body[0])
	}
	if len(ifs.Then) != 1 || len(ifs.Else) != 1 {
		t.Fatalf("unexpected if shape: then=%d else=%d", len(ifs.Then), len(ifs.Else))
	}
	if _, ok := ifs.Else[0].(*ast.While); !ok {
		t.Fatalf("expected while as the else stmt, got %T", ifs.Else[0])
	}
	if _, ok := fn.Body[1].(*ast.Return); !ok {
		t.Fatalf("expected trailing return, got %T", fn.Body[1])
	}
}

func TestParserMemberChainAndMethodCall(t *testing.T) {
	prog, p := parseSrc(t, `Folder f = Folder("a"); File g = f.get_file("b.txt");`)
	if !p.Valid() {
		t.Fatalf("expected valid parse")
	}
	decl := prog.Stmts[1].(*ast.VarDecl)
	m, ok := decl.Init.(*ast.Member)
	if !ok || m.Name != "get_file" || !m.HasArgs || len(m.Args) != 1 {
		t.Fatalf("unexpected member: %+v", decl.Init)
	}
	if _, ok := m.Target.(*ast.Ident); !ok {
		t.Fatalf("expected ident target, got %T", m.Target)
	}
}

func TestParserOperatorPrecedence(t *testing.T) {
	prog, p := parseSrc(t, `bool r = 1 + 2 * 3 < 10 && true || false;`)
	if !p.Valid() {
		t.Fatalf("expected valid parse")
	}
	decl := prog.Stmts[0].(*ast.VarDecl)
	or, ok := decl.Init.(*ast.Binary)
	if !ok || or.Op != "||" {
		t.Fatalf("expected top-level ||, got %+v", decl.Init)
	}
	and, ok := or.Left.(*ast.Binary)
	if !ok || and.Op != "&&" {
		t.Fatalf("expected && under ||, got %+v", or.Left)
	}
	cmp, ok := and.Left.(*ast.Binary)
	if !ok || cmp.Op != "<" {
		t.Fatalf("expected < under &&, got %+v", and.Left)
	}
	add, ok := cmp.Left.(*ast.Binary)
	if !ok || add.Op != "+" {
		t.Fatalf("expected + under <, got %+v", cmp.Left)
	}
	if _, ok := add.Right.(*ast.Binary); !ok {
		t.Fatalf("expected * folded into right of +, got %+v", add.Right)
	}
}

func TestParserComparisonNonAssociative(t *testing.T) {
	_, p := parseSrc(t, `bool r = 1 < 2 < 3;`)
	if p.Valid() {
		t.Fatalf("expected invalid parse: chained comparison is non-associative")
	}
}

func TestParserUnaryMinus(t *testing.T) {
	prog, p := parseSrc(t, `int x = -5;`)
	if !p.Valid() {
		t.Fatalf("expected valid parse")
	}
	decl := prog.Stmts[0].(*ast.VarDecl)
	u, ok := decl.Init.(*ast.Unary)
	if !ok || u.Op != "-" {
		t.Fatalf("unexpected init: %+v", decl.Init)
	}
}

func TestParserCtorCallStatement(t *testing.T) {
	prog, p := parseSrc(t, `Audio a = Audio("song.mp3"); a.change_volume(50);`)
	if !p.Valid() {
		t.Fatalf("expected valid parse")
	}
	stmt, ok := prog.Stmts[1].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("expected expr stmt, got %T", prog.Stmts[1])
	}
	m, ok := stmt.Expr.(*ast.Member)
	if !ok || m.Name != "change_volume" || !m.HasArgs {
		t.Fatalf("unexpected expr: %+v", stmt.Expr)
	}
}

func TestParserResyncsAfterError(t *testing.T) {
	prog, p := parseSrc(t, `int x = ; int y = 2;`)
	if p.Valid() {
		t.Fatalf("expected invalid parse")
	}
	found := false
	for _, s := range prog.Stmts {
		if d, ok := s.(*ast.VarDecl); ok && d.Name == "y" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected parser to resynchronize and still parse y, got stmts: %+v", prog.Stmts)
	}
}
