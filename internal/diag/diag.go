// Package diag implements the two-class diagnostic model of the language
// spec: compile-time diagnostics (accumulated) and runtime faults
// (fail-fast, exactly one emitted).
package diag

import (
	"fmt"

	"aud/internal/source"
)

// Code enumerates diagnostic kinds. Numbering follows the teacher's
// per-stage block convention: 1000s lexical, 2000s syntax, 3000s
// semantic/type-check, 4000s runtime.
type Code uint16

const (
	Unknown Code = 0

	// Lexical.
	InvalidSymbol             Code = 1001
	MissingCommentClose       Code = 1002
	MaxCommentLengthExceeded  Code = 1003
	MaxIdentifierLenExceeded  Code = 1004
	MaxStringLengthExceeded   Code = 1005
	InvalidValueLex           Code = 1006

	// Syntax.
	UnexpectedToken    Code = 2001
	MissingParentheses Code = 2002
	InvalidDeclaration Code = 2003

	// Semantic / type-check.
	UndeclaredVariableStatic  Code = 3001
	InvalidType               Code = 3002
	InvalidArgumentType       Code = 3003
	FunctionRedeclaration     Code = 3004
	InvalidConditionStatic    Code = 3005

	// Runtime.
	UndeclaredVariableRuntime Code = 4001
	TypeConversionException  Code = 4002
	FileNotFound             Code = 4003
	ListIndexOutOfBounds     Code = 4004
	DivisionByZero           Code = 4005
	CallStackLimitExceeded   Code = 4006
	InvalidConditionRuntime  Code = 4007
	InvalidValueRuntime      Code = 4008
)

// Severity classifies a Diagnostic for rendering purposes. The spec has no
// warning class of its own; every emitted diagnostic in this module is an
// error, but Severity is kept (rather than collapsed) so diagfmt's
// rendering path matches the teacher's, and so a future warning-class
// diagnostic (e.g. a lint) has somewhere to live without a format change.
type Severity uint8

const (
	SevError Severity = iota
	SevWarning
	SevInfo
)

func (s Severity) String() string {
	switch s {
	case SevError:
		return "error"
	case SevWarning:
		return "warning"
	case SevInfo:
		return "info"
	default:
		return "?"
	}
}

// Note attaches secondary context to a Diagnostic (e.g. "declared here").
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is a single (position, kind) record surfaced to the user.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

// Reporter is the minimal contract stages use to surface diagnostics,
// mirroring the teacher's diag.Reporter interface.
type Reporter interface {
	Report(d Diagnostic)
}

// Bag accumulates diagnostics in emission order.
type Bag struct {
	items []Diagnostic
}

// NewBag returns an empty Bag.
func NewBag() *Bag { return &Bag{} }

// Add appends a diagnostic.
func (b *Bag) Add(d Diagnostic) { b.items = append(b.items, d) }

// Report implements Reporter.
func (b *Bag) Report(d Diagnostic) { b.Add(d) }

// Errorf appends an error-severity diagnostic built from a formatted
// message, the common case for every stage in this pipeline.
func (b *Bag) Errorf(code Code, span source.Span, format string, args ...any) {
	b.Add(Diagnostic{Severity: SevError, Code: code, Message: fmt.Sprintf(format, args...), Primary: span})
}

// Items returns the accumulated diagnostics.
func (b *Bag) Items() []Diagnostic { return b.items }

// Empty reports whether no diagnostics have been recorded.
func (b *Bag) Empty() bool { return len(b.items) == 0 }

// Len returns the number of accumulated diagnostics.
func (b *Bag) Len() int { return len(b.items) }
