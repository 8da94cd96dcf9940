package interp

import (
	"fmt"

	"aud/internal/diag"
	"aud/internal/source"
)

// Fault is the single runtime error that unwinds the interpreter. Every
// eval/exec method returns at most one Fault; the first one raised wins
// and every caller propagates it immediately without inspecting it,
// matching the spec's fail-fast runtime fault model (exactly one
// diagnostic emitted per run).
type Fault struct {
	Code    diag.Code
	Span    source.Span
	Message string
}

func newFault(code diag.Code, span source.Span, format string, args ...any) *Fault {
	return &Fault{Code: code, Span: span, Message: fmt.Sprintf(format, args...)}
}

// Diagnostic renders the fault in the same shape as a compile-time
// diagnostic, for a single shared formatting path in diagfmt.
func (f *Fault) Diagnostic() diag.Diagnostic {
	return diag.Diagnostic{Severity: diag.SevError, Code: f.Code, Message: f.Message, Primary: f.Span}
}

// signalKind distinguishes normal fall-through completion of a statement
// list from an in-flight return propagating up through nested blocks.
// There is no break/continue in Aud's grammar, so return is the only
// non-local control transfer the evaluator needs.
type signalKind uint8

const (
	sigNone signalKind = iota
	sigReturn
)

// Signal carries a return value up through exec's block-statement loops
// until it reaches the call that pushed the enclosing CallContext.
type Signal struct {
	Kind  signalKind
	Value Value
}
