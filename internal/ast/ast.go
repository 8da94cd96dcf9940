// Package ast defines Aud's syntax tree: a Program made of top-level
// statements and function definitions, following the teacher's split of
// statement and expression node kinds into typed Go structs rather than a
// single tagged union.
package ast

import "aud/internal/source"

// TypeExpr is the syntax-level spelling of a type: a keyword name plus,
// for List, an element type. It is resolved to a types.Signature by the
// type checker.
type TypeExpr struct {
	Name string // "void","int","float","bool","string","Folder","File","Audio","List"
	Elem *TypeExpr
	Span source.Span
}

// Param is one function parameter.
type Param struct {
	Type TypeExpr
	Name string
	Span source.Span
}

// FuncDef is a top-level function definition.
type FuncDef struct {
	ReturnType TypeExpr
	Name       string
	Params     []Param
	Body       []Stmt
	Span       source.Span
}

// Program is the root node: a sequence of top-level statements and
// function definitions, evaluated/collected in source order.
type Program struct {
	Funcs []*FuncDef
	Stmts []Stmt
}

// Stmt is the common interface implemented by every statement node.
type Stmt interface {
	stmtNode()
	Pos() source.Span
}

// Expr is the common interface implemented by every expression node.
type Expr interface {
	exprNode()
	Pos() source.Span
}

// Base carries the source span common to every node. It is embedded (and
// exported) so other packages, namely the parser, can construct nodes
// directly with a literal.
type Base struct{ Span source.Span }

func (b Base) Pos() source.Span { return b.Span }

// --- Statements ---

// VarDecl is `Type name = expr;`.
type VarDecl struct {
	Base
	Type TypeExpr
	Name string
	Init Expr
}

// Assign is `name = expr;`.
type Assign struct {
	Base
	Name string
	Expr Expr
}

// If is `if (cond) { ... } [else { ... }]`.
type If struct {
	Base
	Cond Expr
	Then []Stmt
	Else []Stmt // nil if no else clause
}

// While is `while (cond) { ... }`.
type While struct {
	Base
	Cond Expr
	Body []Stmt
}

// ExprStmt is a bare expression used as a statement (a call, generally).
type ExprStmt struct {
	Base
	Expr Expr
}

// Return is `return [expr];`.
type Return struct {
	Base
	Value Expr // nil for a bare `return;`
}

func (*VarDecl) stmtNode()  {}
func (*Assign) stmtNode()   {}
func (*If) stmtNode()       {}
func (*While) stmtNode()    {}
func (*ExprStmt) stmtNode() {}
func (*Return) stmtNode()   {}

// --- Expressions ---

// IntLit is an integer literal.
type IntLit struct {
	Base
	Value int64
}

// FloatLit is a floating-point literal.
type FloatLit struct {
	Base
	Value float64
}

// StringLit is a string literal.
type StringLit struct {
	Base
	Value string
}

// BoolLit is `true` or `false`.
type BoolLit struct {
	Base
	Value bool
}

// NullLit is the `null` literal.
type NullLit struct{ Base }

// Ident is a variable or parameter reference.
type Ident struct {
	Base
	Name string
}

// Unary is `-expr`.
type Unary struct {
	Base
	Op   string
	Expr Expr
}

// Binary is a binary operator application.
type Binary struct {
	Base
	Op    string
	Left  Expr
	Right Expr
}

// Call is a call to a named function: `name(args...)`.
type Call struct {
	Base
	Callee string
	Args   []Expr
}

// Member is `target.name` (attribute read) or `target.name(args...)`
// (method call, when HasArgs is true).
type Member struct {
	Base
	Target  Expr
	Name    string
	HasArgs bool
	Args    []Expr
}

// Ctor is a domain-object constructor call: `Folder(...)`, `File(...)`,
// or `Audio(...)`.
type Ctor struct {
	Base
	TypeName string
	Args     []Expr
}

// ListLit is `[e1, e2, ...]`. It carries no element type of its own; the
// type checker infers the element type from the declared variable type
// or the first element, per spec.md §4.4.
type ListLit struct {
	Base
	Items []Expr
}

// Paren is a parenthesized expression, kept as its own node so
// pretty-printing round-trips exactly (§8's AST round-trip property).
type Paren struct {
	Base
	Inner Expr
}

func (*IntLit) exprNode()    {}
func (*FloatLit) exprNode()  {}
func (*StringLit) exprNode() {}
func (*BoolLit) exprNode()   {}
func (*NullLit) exprNode()   {}
func (*Ident) exprNode()     {}
func (*Unary) exprNode()     {}
func (*Binary) exprNode()    {}
func (*Call) exprNode()      {}
func (*Member) exprNode()    {}
func (*Ctor) exprNode()      {}
func (*ListLit) exprNode()   {}
func (*Paren) exprNode()     {}
