package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Print renders a Program back to Aud source text. Reparsing the result is
// expected to produce a structurally equal tree (spec.md §8's AST
// round-trip property over the valid subset of the grammar).
func Print(p *Program) string {
	var b strings.Builder
	for _, fn := range p.Funcs {
		printFuncDef(&b, fn)
		b.WriteByte('\n')
	}
	for _, s := range p.Stmts {
		printStmt(&b, s, 0)
	}
	return b.String()
}

func printType(b *strings.Builder, t TypeExpr) {
	if t.Name == "List" {
		b.WriteString("List<")
		printType(b, *t.Elem)
		b.WriteByte('>')
		return
	}
	b.WriteString(t.Name)
}

func printFuncDef(b *strings.Builder, fn *FuncDef) {
	b.WriteString("func ")
	printType(b, fn.ReturnType)
	b.WriteByte(' ')
	b.WriteString(fn.Name)
	b.WriteByte('(')
	for i, p := range fn.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		printType(b, p.Type)
		b.WriteByte(' ')
		b.WriteString(p.Name)
	}
	b.WriteString(") {\n")
	for _, s := range fn.Body {
		printStmt(b, s, 1)
	}
	b.WriteString("}\n")
}

func indent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("    ")
	}
}

func printStmt(b *strings.Builder, s Stmt, depth int) {
	indent(b, depth)
	switch n := s.(type) {
	case *VarDecl:
		printType(b, n.Type)
		b.WriteByte(' ')
		b.WriteString(n.Name)
		b.WriteString(" = ")
		printExpr(b, n.Init)
		b.WriteString(";\n")
	case *Assign:
		b.WriteString(n.Name)
		b.WriteString(" = ")
		printExpr(b, n.Expr)
		b.WriteString(";\n")
	case *If:
		b.WriteString("if (")
		printExpr(b, n.Cond)
		b.WriteString(") {\n")
		for _, st := range n.Then {
			printStmt(b, st, depth+1)
		}
		indent(b, depth)
		b.WriteString("}")
		if n.Else != nil {
			b.WriteString(" else {\n")
			for _, st := range n.Else {
				printStmt(b, st, depth+1)
			}
			indent(b, depth)
			b.WriteString("}")
		}
		b.WriteString("\n")
	case *While:
		b.WriteString("while (")
		printExpr(b, n.Cond)
		b.WriteString(") {\n")
		for _, st := range n.Body {
			printStmt(b, st, depth+1)
		}
		indent(b, depth)
		b.WriteString("}\n")
	case *ExprStmt:
		printExpr(b, n.Expr)
		b.WriteString(";\n")
	case *Return:
		b.WriteString("return")
		if n.Value != nil {
			b.WriteByte(' ')
			printExpr(b, n.Value)
		}
		b.WriteString(";\n")
	default:
		fmt.Fprintf(b, "/* unknown stmt %T */\n", s)
	}
}

func printExpr(b *strings.Builder, e Expr) {
	switch n := e.(type) {
	case *IntLit:
		b.WriteString(strconv.FormatInt(n.Value, 10))
	case *FloatLit:
		text := strconv.FormatFloat(n.Value, 'f', -1, 64)
		if !strings.Contains(text, ".") {
			text += ".0"
		}
		b.WriteString(text)
	case *StringLit:
		b.WriteByte('"')
		b.WriteString(strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\t", `\t`).Replace(n.Value))
		b.WriteByte('"')
	case *BoolLit:
		if n.Value {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case *NullLit:
		b.WriteString("null")
	case *Ident:
		b.WriteString(n.Name)
	case *Unary:
		b.WriteString(n.Op)
		printExpr(b, n.Expr)
	case *Binary:
		printExpr(b, n.Left)
		b.WriteByte(' ')
		b.WriteString(n.Op)
		b.WriteByte(' ')
		printExpr(b, n.Right)
	case *Call:
		b.WriteString(n.Callee)
		b.WriteByte('(')
		printArgs(b, n.Args)
		b.WriteByte(')')
	case *Member:
		printExpr(b, n.Target)
		b.WriteByte('.')
		b.WriteString(n.Name)
		if n.HasArgs {
			b.WriteByte('(')
			printArgs(b, n.Args)
			b.WriteByte(')')
		}
	case *Ctor:
		b.WriteString(n.TypeName)
		b.WriteByte('(')
		printArgs(b, n.Args)
		b.WriteByte(')')
	case *ListLit:
		b.WriteByte('[')
		printArgs(b, n.Items)
		b.WriteByte(']')
	case *Paren:
		b.WriteByte('(')
		printExpr(b, n.Inner)
		b.WriteByte(')')
	default:
		fmt.Fprintf(b, "/* unknown expr %T */", e)
	}
}

func printArgs(b *strings.Builder, args []Expr) {
	for i, a := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		printExpr(b, a)
	}
}
