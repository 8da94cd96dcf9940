package sema

import (
	"aud/internal/ast"
	"aud/internal/diag"
	"aud/internal/types"
)

func (c *checker) checkStmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.VarDecl:
		c.checkVarDecl(n)
	case *ast.Assign:
		c.checkAssign(n)
	case *ast.If:
		c.checkIf(n)
	case *ast.While:
		c.checkWhile(n)
	case *ast.ExprStmt:
		c.checkExpr(n.Expr)
	case *ast.Return:
		c.checkReturn(n)
	}
}

func (c *checker) checkVarDecl(n *ast.VarDecl) {
	declType, ok := c.resolveType(n.Type)
	if ok {
		initType := c.checkExprExpected(n.Init, &declType)
		if !c.assignableTo(declType, initType, n.Init) {
			c.bag.Errorf(diag.InvalidType, n.Init.Pos(), "Invalid type")
		}
	} else {
		c.checkExpr(n.Init)
	}
	c.declare(n.Name, declType, n.Span)
}

func (c *checker) checkAssign(n *ast.Assign) {
	varType, found := c.lookup(n.Name)
	if !found {
		c.bag.Errorf(diag.UndeclaredVariableStatic, n.Span, "Undeclared variable")
		c.checkExpr(n.Expr)
		return
	}
	rhsType := c.checkExprExpected(n.Expr, &varType)
	if !c.assignableTo(varType, rhsType, n.Expr) {
		c.bag.Errorf(diag.InvalidType, n.Expr.Pos(), "Invalid type")
	}
}

func (c *checker) checkIf(n *ast.If) {
	c.checkCondition(n.Cond)
	c.pushScope()
	for _, st := range n.Then {
		c.checkStmt(st)
	}
	c.popScope()
	if n.Else != nil {
		c.pushScope()
		for _, st := range n.Else {
			c.checkStmt(st)
		}
		c.popScope()
	}
}

func (c *checker) checkWhile(n *ast.While) {
	c.checkCondition(n.Cond)
	c.pushScope()
	for _, st := range n.Body {
		c.checkStmt(st)
	}
	c.popScope()
}

func (c *checker) checkCondition(cond ast.Expr) {
	condType := c.checkExpr(cond)
	if condType.Kind != types.Invalid && !condType.Equal(types.TBool) {
		c.bag.Errorf(diag.InvalidConditionStatic, cond.Pos(), "Invalid condition")
	}
}

func (c *checker) checkReturn(n *ast.Return) {
	if n.Value == nil {
		if c.curReturn.Kind != types.Void {
			c.bag.Errorf(diag.InvalidType, n.Span, "Invalid type")
		}
		return
	}
	want := c.curReturn
	vt := c.checkExprExpected(n.Value, &want)
	if !c.assignableTo(c.curReturn, vt, n.Value) {
		c.bag.Errorf(diag.InvalidType, n.Value.Pos(), "Invalid type")
	}
}

// assignableTo reports whether a value of type got may be stored where
// want is declared: exact type match, or any composite accepting `null`.
// void is never a value type.
func (c *checker) assignableTo(want, got types.Signature, expr ast.Expr) bool {
	if want.Kind == types.Invalid || got.Kind == types.Invalid {
		return true
	}
	if want.Kind == types.Void {
		return false
	}
	if isNullLit(expr) {
		return want.IsComposite()
	}
	return want.Equal(got)
}

func isNullLit(e ast.Expr) bool {
	_, ok := e.(*ast.NullLit)
	return ok
}
