package sema

import (
	"aud/internal/ast"
	"aud/internal/diag"
	"aud/internal/source"
	"aud/internal/types"
)

// checkExpr type-checks e with no expected type in context.
func (c *checker) checkExpr(e ast.Expr) types.Signature {
	return c.checkExprExpected(e, nil)
}

// checkExprExpected type-checks e; want, when non-nil, is the type context
// the expression appears in (a declared variable type, a parameter type, a
// return type). Only list literals use it, to infer List<T> from context
// per spec's list-literal typing rule; every other expression's type is
// determined bottom-up regardless of want.
func (c *checker) checkExprExpected(e ast.Expr, want *types.Signature) types.Signature {
	switch n := e.(type) {
	case *ast.IntLit:
		return types.TInt
	case *ast.FloatLit:
		return types.TFloat
	case *ast.StringLit:
		return types.TString
	case *ast.BoolLit:
		return types.TBool
	case *ast.NullLit:
		return types.TNull
	case *ast.Ident:
		sig, ok := c.lookup(n.Name)
		if !ok {
			c.bag.Errorf(diag.UndeclaredVariableStatic, n.Span, "Undeclared variable")
			return types.TInvalid
		}
		return sig
	case *ast.Unary:
		return c.checkUnary(n)
	case *ast.Binary:
		return c.checkBinary(n)
	case *ast.Call:
		return c.checkCall(n)
	case *ast.Member:
		return c.checkMember(n)
	case *ast.Ctor:
		return c.checkCtor(n)
	case *ast.ListLit:
		return c.checkListLit(n, want)
	case *ast.Paren:
		return c.checkExprExpected(n.Inner, want)
	default:
		return types.TInvalid
	}
}

func (c *checker) checkUnary(n *ast.Unary) types.Signature {
	t := c.checkExpr(n.Expr)
	if n.Op != "-" {
		c.bag.Errorf(diag.InvalidType, n.Span, "Invalid type")
		return types.TInvalid
	}
	if t.Kind == types.Invalid {
		return types.TInvalid
	}
	if !t.Equal(types.TInt) {
		c.bag.Errorf(diag.InvalidType, n.Span, "Invalid type")
		return types.TInvalid
	}
	return types.TInt
}

func (c *checker) checkBinary(n *ast.Binary) types.Signature {
	lt := c.checkExpr(n.Left)
	rt := c.checkExpr(n.Right)
	switch n.Op {
	case "+":
		if lt.Equal(types.TInt) && rt.Equal(types.TInt) {
			return types.TInt
		}
		if lt.Equal(types.TString) && rt.Equal(types.TString) {
			return types.TString
		}
	case "-", "*", "/":
		if lt.Equal(types.TInt) && rt.Equal(types.TInt) {
			return types.TInt
		}
	case "<", "<=", ">", ">=":
		if lt.Equal(types.TInt) && rt.Equal(types.TInt) {
			return types.TBool
		}
	case "==", "!=":
		if c.equalityOK(lt, rt) {
			return types.TBool
		}
	case "&&", "||":
		if lt.Equal(types.TBool) && rt.Equal(types.TBool) {
			return types.TBool
		}
	}
	if lt.Kind != types.Invalid && rt.Kind != types.Invalid {
		c.bag.Errorf(diag.InvalidType, n.Span, "Invalid type")
	}
	return types.TInvalid
}

// equalityOK implements the spec's equality typing rule: matching types
// from {int, string, File, Folder}, or any composite handle against null.
func (c *checker) equalityOK(lt, rt types.Signature) bool {
	if lt.Kind == types.Invalid || rt.Kind == types.Invalid {
		return true
	}
	if lt.Kind == types.Null && rt.Kind == types.Null {
		return true
	}
	if lt.Kind == types.Null {
		return rt.IsComposite()
	}
	if rt.Kind == types.Null {
		return lt.IsComposite()
	}
	switch lt.Kind {
	case types.Int, types.String, types.FolderT, types.FileT:
		return lt.Equal(rt)
	default:
		return false
	}
}

func (c *checker) checkCall(n *ast.Call) types.Signature {
	if sig, ok := builtinSig(n.Callee); ok {
		return c.checkCallAgainst(sig, n.Args, n.Span)
	}
	sig, ok := c.funcSigs[n.Callee]
	if !ok {
		c.bag.Errorf(diag.UndeclaredVariableStatic, n.Span, "Undeclared variable")
		for _, a := range n.Args {
			c.checkExpr(a)
		}
		return types.TInvalid
	}
	return c.checkCallAgainst(sig, n.Args, n.Span)
}

// checkCallAgainst checks args against sig's parameter list, always
// visiting every argument expression (even on an arity mismatch) so
// errors nested inside arguments are still surfaced.
func (c *checker) checkCallAgainst(sig types.FuncSig, args []ast.Expr, span source.Span) types.Signature {
	if len(args) != len(sig.Params) {
		c.bag.Errorf(diag.InvalidArgumentType, span, "Invalid argument type")
		for _, a := range args {
			c.checkExpr(a)
		}
		return sig.Return
	}
	for i, a := range args {
		want := sig.Params[i]
		at := c.checkExprExpected(a, &want)
		if !c.assignableTo(want, at, a) {
			c.bag.Errorf(diag.InvalidArgumentType, a.Pos(), "Invalid argument type")
		}
	}
	return sig.Return
}

func (c *checker) checkCtor(n *ast.Ctor) types.Signature {
	wantStr := types.TString
	argOK := len(n.Args) == 1
	if len(n.Args) > 0 {
		at := c.checkExprExpected(n.Args[0], &wantStr)
		if argOK && !c.assignableTo(wantStr, at, n.Args[0]) {
			argOK = false
		}
		for _, extra := range n.Args[1:] {
			c.checkExpr(extra)
		}
	}
	if !argOK {
		c.bag.Errorf(diag.InvalidArgumentType, n.Span, "Invalid argument type")
	}
	switch n.TypeName {
	case "Folder":
		return types.TFolder
	case "Audio":
		return types.TAudio
	default:
		return types.TFile
	}
}

// checkListLit implements list-literal typing: infer List<T> from the
// declared context (want) when present, otherwise from the first element;
// an empty literal is only valid when want fixes the element type.
func (c *checker) checkListLit(n *ast.ListLit, want *types.Signature) types.Signature {
	var elemWant *types.Signature
	if want != nil && want.Kind == types.ListT {
		elemWant = want.Elem
	}
	if len(n.Items) == 0 {
		if elemWant == nil {
			c.bag.Errorf(diag.InvalidType, n.Span, "Invalid type")
			return types.TInvalid
		}
		return types.List(*elemWant)
	}
	elem := elemWant
	start := 0
	if elem == nil {
		t := c.checkExpr(n.Items[0])
		elem = &t
		start = 1
	}
	for i := start; i < len(n.Items); i++ {
		it := n.Items[i]
		t := c.checkExprExpected(it, elem)
		if !c.assignableTo(*elem, t, it) {
			c.bag.Errorf(diag.InvalidType, it.Pos(), "Invalid type")
		}
	}
	return types.List(*elem)
}
