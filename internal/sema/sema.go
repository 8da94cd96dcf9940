// Package sema implements Aud's type checker: a single-pass visitor over
// the parsed tree that resolves declared types, checks expression typing,
// and enforces scoping and function-table rules. It follows the teacher's
// sema.Check(builder, opts) → Result entry-point shape and its two-pass
// (function-table prescan, then bodies) structure, scaled down from a
// multi-file module graph to one program.
package sema

import (
	"aud/internal/ast"
	"aud/internal/diag"
	"aud/internal/source"
	"aud/internal/types"
)

// Options configures a checking pass.
type Options struct {
	Reporter *diag.Bag
}

// Result reports the outcome of a checking pass.
type Result struct {
	Valid bool
}

// Check type-checks prog, reporting every diagnostic it finds into
// opts.Reporter, and returns whether the program is well-typed.
func Check(prog *ast.Program, opts Options) Result {
	c := &checker{bag: opts.Reporter}
	c.prescanFuncs(prog)
	for _, fn := range prog.Funcs {
		c.checkFuncBody(fn)
	}
	c.pushScope()
	for _, s := range prog.Stmts {
		c.checkStmt(s)
	}
	c.popScope()
	return Result{Valid: opts.Reporter.Empty()}
}

type scope struct {
	vars map[string]types.Signature
}

func newScope() *scope { return &scope{vars: make(map[string]types.Signature)} }

// checker holds the mutable state of one checking pass: the function
// table built by the prescan, the active scope-frame stack, and the
// return type of whichever function body (or the top-level program) is
// currently being checked.
type checker struct {
	bag       *diag.Bag
	funcSigs  map[string]types.FuncSig
	scopes    []*scope
	curReturn types.Signature
}

func (c *checker) pushScope() { c.scopes = append(c.scopes, newScope()) }
func (c *checker) popScope()  { c.scopes = c.scopes[:len(c.scopes)-1] }

// declare inserts name into the innermost frame. Redeclaration in that
// same frame is reported as Undeclared variable, per spec's name-reuse
// policy (same-frame redeclaration forbidden, nested shadowing allowed).
func (c *checker) declare(name string, sig types.Signature, span source.Span) {
	top := c.scopes[len(c.scopes)-1]
	if _, exists := top.vars[name]; exists {
		c.bag.Errorf(diag.UndeclaredVariableStatic, span, "Undeclared variable")
		return
	}
	top.vars[name] = sig
}

func (c *checker) lookup(name string) (types.Signature, bool) {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if sig, ok := c.scopes[i].vars[name]; ok {
			return sig, true
		}
	}
	return types.Signature{}, false
}

// resolveType converts a syntactic TypeExpr to a types.Signature,
// reporting Invalid type on an unrecognized name.
func (c *checker) resolveType(t ast.TypeExpr) (types.Signature, bool) {
	if t.Name == "List" {
		if t.Elem == nil {
			c.bag.Errorf(diag.InvalidType, t.Span, "Invalid type")
			return types.Signature{}, false
		}
		elem, ok := c.resolveType(*t.Elem)
		return types.List(elem), ok
	}
	sig, ok := types.FromTypeName(t.Name)
	if !ok {
		c.bag.Errorf(diag.InvalidType, t.Span, "Invalid type")
		return types.Signature{}, false
	}
	return sig, true
}

// prescanFuncs collects every top-level FuncDef into the function table
// before any body is checked, so forward and mutually-recursive calls
// resolve. A name colliding with another function or a builtin is a
// Function/Method redeclaration.
func (c *checker) prescanFuncs(prog *ast.Program) {
	c.funcSigs = make(map[string]types.FuncSig)
	for _, fn := range prog.Funcs {
		if _, exists := c.funcSigs[fn.Name]; exists {
			c.bag.Errorf(diag.FunctionRedeclaration, fn.Span, "Function/Method redeclaration")
			continue
		}
		if _, isBuiltin := builtinSig(fn.Name); isBuiltin {
			c.bag.Errorf(diag.FunctionRedeclaration, fn.Span, "Function/Method redeclaration")
			continue
		}
		retSig, _ := c.resolveType(fn.ReturnType)
		params := make([]types.Signature, 0, len(fn.Params))
		seen := make(map[string]bool, len(fn.Params))
		for _, p := range fn.Params {
			if seen[p.Name] {
				c.bag.Errorf(diag.InvalidDeclaration, p.Span, "Invalid declaration")
			}
			seen[p.Name] = true
			pt, _ := c.resolveType(p.Type)
			params = append(params, pt)
		}
		c.funcSigs[fn.Name] = types.FuncSig{Params: params, Return: retSig}
	}
}

// checkFuncBody checks one function body in an isolated scope containing
// only its parameters: function bodies are closed, so no enclosing global
// frame is visible from inside them.
func (c *checker) checkFuncBody(fn *ast.FuncDef) {
	sig, ok := c.funcSigs[fn.Name]
	if !ok {
		return // redeclared or otherwise rejected during the prescan
	}
	c.pushScope()
	for i, p := range fn.Params {
		if i < len(sig.Params) {
			c.declare(p.Name, sig.Params[i], p.Span)
		}
	}
	prevReturn := c.curReturn
	c.curReturn = sig.Return
	for _, s := range fn.Body {
		c.checkStmt(s)
	}
	c.curReturn = prevReturn
	c.popScope()
}
