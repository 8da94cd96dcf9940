package interp

import (
	"aud/internal/ast"
	"aud/internal/diag"
)

// eval evaluates an expression to a Value, or returns a Fault. The tree
// is already type-checked, so operator dispatch trusts the operand kinds
// it finds rather than re-validating them.
func (in *interpreter) eval(e ast.Expr) (Value, *Fault) {
	switch n := e.(type) {
	case *ast.IntLit:
		return VIntOf(n.Value), nil
	case *ast.FloatLit:
		return VFloatOf(n.Value), nil
	case *ast.StringLit:
		return VStringOf(n.Value), nil
	case *ast.BoolLit:
		return VBoolOf(n.Value), nil
	case *ast.NullLit:
		return VNull(), nil
	case *ast.Ident:
		cell, ok := in.env.lookup(n.Name)
		if !ok {
			return Value{}, newFault(diag.UndeclaredVariableRuntime, n.Span, "Undeclared variable")
		}
		return cell.V, nil
	case *ast.Unary:
		return in.evalUnary(n)
	case *ast.Binary:
		return in.evalBinary(n)
	case *ast.Call:
		return in.evalCall(n)
	case *ast.Member:
		return in.evalMember(n)
	case *ast.Ctor:
		return in.evalCtor(n)
	case *ast.ListLit:
		return in.evalListLit(n)
	case *ast.Paren:
		return in.eval(n.Inner)
	default:
		return Value{}, newFault(diag.InvalidValueRuntime, e.Pos(), "Invalid value")
	}
}

func (in *interpreter) evalUnary(n *ast.Unary) (Value, *Fault) {
	v, f := in.eval(n.Expr)
	if f != nil {
		return Value{}, f
	}
	return VIntOf(-v.I), nil
}

func (in *interpreter) evalBinary(n *ast.Binary) (Value, *Fault) {
	l, f := in.eval(n.Left)
	if f != nil {
		return Value{}, f
	}
	// Short-circuit: the RHS of && / || is not evaluated when the LHS
	// already determines the result (spec's ordering guarantee).
	if n.Op == "&&" && !l.B {
		return VBoolOf(false), nil
	}
	if n.Op == "||" && l.B {
		return VBoolOf(true), nil
	}
	r, f := in.eval(n.Right)
	if f != nil {
		return Value{}, f
	}
	switch n.Op {
	case "+":
		if l.Kind == KString {
			return VStringOf(l.S + r.S), nil
		}
		return VIntOf(l.I + r.I), nil
	case "-":
		return VIntOf(l.I - r.I), nil
	case "*":
		return VIntOf(l.I * r.I), nil
	case "/":
		if r.I == 0 {
			return Value{}, newFault(diag.DivisionByZero, n.Span, "Division by zero")
		}
		return VIntOf(l.I / r.I), nil
	case "<":
		return VBoolOf(l.I < r.I), nil
	case "<=":
		return VBoolOf(l.I <= r.I), nil
	case ">":
		return VBoolOf(l.I > r.I), nil
	case ">=":
		return VBoolOf(l.I >= r.I), nil
	case "==":
		return VBoolOf(in.valuesEqual(l, r)), nil
	case "!=":
		return VBoolOf(!in.valuesEqual(l, r)), nil
	case "&&":
		return VBoolOf(l.B && r.B), nil
	case "||":
		return VBoolOf(l.B || r.B), nil
	default:
		return Value{}, newFault(diag.InvalidValueRuntime, n.Span, "Invalid value")
	}
}

// valuesEqual implements ==/!= for the type-checker's eligible set: int,
// string by value; File/Folder by domain identity; null against any
// composite tests handle-absence (a composite Value the checker allowed
// null into is only ever an actual composite here, since a bare `null`
// literal evaluates to KNull).
func (in *interpreter) valuesEqual(l, r Value) bool {
	if l.Kind == KNull || r.Kind == KNull {
		return l.Kind == KNull && r.Kind == KNull
	}
	switch l.Kind {
	case KInt:
		return l.I == r.I
	case KString:
		return l.S == r.S
	case KFolder:
		return in.world.FolderEqual(l.Folder, r.Folder)
	case KFile, KAudio:
		return in.world.FileEqual(l.File, r.File)
	default:
		return false
	}
}

func (in *interpreter) evalListLit(n *ast.ListLit) (Value, *Fault) {
	items := make([]Value, 0, len(n.Items))
	for _, it := range n.Items {
		v, f := in.eval(it)
		if f != nil {
			return Value{}, f
		}
		items = append(items, v)
	}
	return VListOf(items), nil
}

func (in *interpreter) evalCtor(n *ast.Ctor) (Value, *Fault) {
	arg, f := in.eval(n.Args[0])
	if f != nil {
		return Value{}, f
	}
	switch n.TypeName {
	case "Folder":
		return VFolderOf(in.world.Folder(arg.S)), nil
	case "Audio":
		return VAudioOf(in.world.NewAudio(arg.S)), nil
	default:
		return VFileOf(in.world.NewFile(arg.S)), nil
	}
}
