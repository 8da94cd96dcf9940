package interp

import (
	"aud/internal/ast"
	"aud/internal/diag"
)

// execBlock executes stmts in their own scope, propagating a return
// Signal upward without executing statements after it.
func (in *interpreter) execBlock(stmts []ast.Stmt) (Signal, *Fault) {
	in.env.pushBlock()
	defer in.env.popBlock()
	for _, s := range stmts {
		sig, f := in.exec(s)
		if f != nil {
			return Signal{}, f
		}
		if sig.Kind == sigReturn {
			return sig, nil
		}
	}
	return Signal{}, nil
}

func (in *interpreter) exec(s ast.Stmt) (Signal, *Fault) {
	switch n := s.(type) {
	case *ast.VarDecl:
		return Signal{}, in.execVarDecl(n)
	case *ast.Assign:
		return Signal{}, in.execAssign(n)
	case *ast.If:
		return in.execIf(n)
	case *ast.While:
		return in.execWhile(n)
	case *ast.ExprStmt:
		_, f := in.eval(n.Expr)
		return Signal{}, f
	case *ast.Return:
		return in.execReturn(n)
	default:
		return Signal{}, nil
	}
}

func (in *interpreter) execVarDecl(n *ast.VarDecl) *Fault {
	v, f := in.eval(n.Init)
	if f != nil {
		return f
	}
	in.env.declare(n.Name, v)
	return nil
}

func (in *interpreter) execAssign(n *ast.Assign) *Fault {
	cell, ok := in.env.lookup(n.Name)
	if !ok {
		return newFault(diag.UndeclaredVariableRuntime, n.Span, "Undeclared variable")
	}
	v, f := in.eval(n.Expr)
	if f != nil {
		return f
	}
	cell.V = v
	return nil
}

func (in *interpreter) execIf(n *ast.If) (Signal, *Fault) {
	cond, f := in.eval(n.Cond)
	if f != nil {
		return Signal{}, f
	}
	if cond.Kind != KBool {
		return Signal{}, newFault(diag.InvalidConditionRuntime, n.Cond.Pos(), "Invalid condition")
	}
	if cond.B {
		return in.execBlock(n.Then)
	}
	if n.Else != nil {
		return in.execBlock(n.Else)
	}
	return Signal{}, nil
}

func (in *interpreter) execWhile(n *ast.While) (Signal, *Fault) {
	for {
		cond, f := in.eval(n.Cond)
		if f != nil {
			return Signal{}, f
		}
		if cond.Kind != KBool {
			return Signal{}, newFault(diag.InvalidConditionRuntime, n.Cond.Pos(), "Invalid condition")
		}
		if !cond.B {
			break
		}
		sig, f := in.execBlock(n.Body)
		if f != nil {
			return Signal{}, f
		}
		if sig.Kind == sigReturn {
			return sig, nil
		}
	}
	return Signal{}, nil
}

func (in *interpreter) execReturn(n *ast.Return) (Signal, *Fault) {
	if n.Value == nil {
		return Signal{Kind: sigReturn, Value: VVoid()}, nil
	}
	v, f := in.eval(n.Value)
	if f != nil {
		return Signal{}, f
	}
	return Signal{Kind: sigReturn, Value: v}, nil
}
