package interp

import (
	"aud/internal/ast"
	"aud/internal/diag"
)

func (in *interpreter) evalCall(n *ast.Call) (Value, *Fault) {
	if fn, ok := builtinTable[n.Callee]; ok {
		args, f := in.evalArgs(n.Args)
		if f != nil {
			return Value{}, f
		}
		return fn(in, n, args)
	}
	fn, ok := in.funcs[n.Callee]
	if !ok {
		return Value{}, newFault(diag.UndeclaredVariableRuntime, n.Span, "Undeclared variable")
	}
	return in.callUser(fn, n)
}

// callUser binds n's arguments to fn's parameters and executes its body
// in a fresh CallContext. Per spec's Design Notes, a parameter bound to
// an lvalue argument (a bare identifier the caller can see) aliases the
// caller's Cell directly, so assignment to the parameter inside fn is
// observed by the caller's variable after return; an rvalue argument
// gets a freshly owned Cell.
func (in *interpreter) callUser(fn *ast.FuncDef, call *ast.Call) (Value, *Fault) {
	// Depth() counts the global sentinel context, so it already equals
	// "function frames pushed so far" once offset by one; a call that
	// would push the (MaxFuncDepth+1)th function frame faults here,
	// matching the spec's "raises at depth MAX_FUNC_DEPTH + 1 exactly".
	if in.env.Depth() > in.cfg.MaxFuncDepth {
		return Value{}, newFault(diag.CallStackLimitExceeded, call.Span, "Call stack limit exceeded")
	}
	if in.env.ConsecutiveSameFunc(fn.Name)+1 > in.cfg.MaxRecDepth {
		return Value{}, newFault(diag.CallStackLimitExceeded, call.Span, "Call stack limit exceeded")
	}

	cells := make([]*Cell, len(fn.Params))
	for i := range fn.Params {
		argExpr := call.Args[i]
		if id, ok := argExpr.(*ast.Ident); ok {
			if cell, ok := in.env.lookup(id.Name); ok {
				cells[i] = cell
				continue
			}
		}
		v, f := in.eval(argExpr)
		if f != nil {
			return Value{}, f
		}
		cells[i] = NewCell(v)
	}

	in.env.pushCall(fn.Name)
	for i, p := range fn.Params {
		in.env.declareCell(p.Name, cells[i])
	}
	sig, f := in.execBlock(fn.Body)
	in.env.popCall()
	if f != nil {
		return Value{}, f
	}
	if sig.Kind == sigReturn {
		return sig.Value, nil
	}
	return VVoid(), nil
}
