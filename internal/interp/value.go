// Package interp implements the tree-walking evaluator: Environment (a
// call-context stack of scopes) driving Value over a types.Signature,
// backed by a domain.World for Folder/File/Audio state. Composite values
// carry reference semantics through domain handles; every value, simple
// or composite, additionally lives in an aliasable Cell so parameter
// binding can implement the spec's lvalue-aliasing design (see
// callUser in call.go).
package interp

import (
	"fmt"

	"aud/internal/domain"
)

// Kind tags a runtime Value. It mirrors types.Kind but stays local to
// this package so the evaluator never imports the type checker.
type Kind uint8

const (
	KVoid Kind = iota
	KBool
	KInt
	KFloat
	KString
	KFolder
	KFile
	KAudio
	KList
	KNull
)

// Value is the tagged union every expression evaluates to. Simple
// payloads (B, I, F, S) are held directly; composites carry a domain
// handle or, for List, a pointer to a shared ListObject so aliasing an
// element mutation is visible to every holder of the same list value.
type Value struct {
	Kind Kind
	B    bool
	I    int64
	F    float64
	S    string
	Folder domain.FolderHandle
	File   domain.FileHandle
	List   *ListObject
}

// ListObject is the heap-allocated backing store for a List<T> value.
// Two Values with the same List pointer are the same list: an element
// replaced via set() through one is visible through the other.
type ListObject struct {
	Items []Value
}

func VVoid() Value             { return Value{Kind: KVoid} }
func VNull() Value             { return Value{Kind: KNull} }
func VBoolOf(b bool) Value     { return Value{Kind: KBool, B: b} }
func VIntOf(i int64) Value     { return Value{Kind: KInt, I: i} }
func VFloatOf(f float64) Value { return Value{Kind: KFloat, F: f} }
func VStringOf(s string) Value { return Value{Kind: KString, S: s} }
func VFolderOf(h domain.FolderHandle) Value { return Value{Kind: KFolder, Folder: h} }
func VFileOf(h domain.FileHandle) Value     { return Value{Kind: KFile, File: h} }
func VAudioOf(h domain.FileHandle) Value    { return Value{Kind: KAudio, File: h} }
func VListOf(items []Value) Value           { return Value{Kind: KList, List: &ListObject{Items: items}} }

// IsComposite reports whether v carries handle/pointer (reference)
// semantics rather than being copied by value.
func (v Value) IsComposite() bool {
	switch v.Kind {
	case KFolder, KFile, KAudio, KList:
		return true
	default:
		return false
	}
}

// String renders v for debugging. The print/itos/ftos/btos built-ins in
// builtins.go do their own formatting and do not call it; floats here use
// %g, so a whole float renders without a fractional digit.
func (v Value) String() string {
	switch v.Kind {
	case KVoid:
		return "void"
	case KNull:
		return "null"
	case KBool:
		if v.B {
			return "true"
		}
		return "false"
	case KInt:
		return fmt.Sprintf("%d", v.I)
	case KFloat:
		return fmt.Sprintf("%g", v.F)
	case KString:
		return v.S
	case KFolder:
		return fmt.Sprintf("Folder#%d", v.Folder)
	case KFile:
		return fmt.Sprintf("File#%d", v.File)
	case KAudio:
		return fmt.Sprintf("Audio#%d", v.File)
	case KList:
		return "List"
	default:
		return "?"
	}
}

// Cell is a single aliasable storage slot. Every declared variable and
// every function parameter lives in one; two names sharing a Cell (per
// the spec's lvalue-argument aliasing rule, see call.go) observe each
// other's assignments.
type Cell struct {
	V Value
}

func NewCell(v Value) *Cell { return &Cell{V: v} }
