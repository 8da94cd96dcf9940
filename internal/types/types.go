// Package types defines Aud's small closed set of static types.
package types

import "fmt"

// Kind enumerates the base type constructors.
type Kind uint8

const (
	Void Kind = iota
	Bool
	Int
	Float
	String
	FolderT
	FileT
	AudioT
	ListT
	// Null is the type of the `null` literal: assignable to any composite
	// type but not itself a declarable type.
	Null
	// Invalid is a poison type returned after a type error has already
	// been reported, so a single mistake doesn't cascade into further
	// diagnostics at every use site of the offending expression.
	Invalid
)

// Signature is a TypeSignature: one of void|bool|int|float|string|Folder|
// File|Audio|List<T>. List carries its element Signature in Elem.
type Signature struct {
	Kind Kind
	Elem *Signature // non-nil iff Kind == ListT
}

var (
	TVoid   = Signature{Kind: Void}
	TBool   = Signature{Kind: Bool}
	TInt    = Signature{Kind: Int}
	TFloat  = Signature{Kind: Float}
	TString = Signature{Kind: String}
	TFolder  = Signature{Kind: FolderT}
	TFile    = Signature{Kind: FileT}
	TAudio   = Signature{Kind: AudioT}
	TNull    = Signature{Kind: Null}
	TInvalid = Signature{Kind: Invalid}
)

// List builds a List<elem> signature.
func List(elem Signature) Signature {
	e := elem
	return Signature{Kind: ListT, Elem: &e}
}

// IsComposite reports whether values of this type carry reference
// semantics (Folder, File, Audio, List<T>), per spec.md §3.
func (s Signature) IsComposite() bool {
	switch s.Kind {
	case FolderT, FileT, AudioT, ListT:
		return true
	default:
		return false
	}
}

// Equal reports structural equality, recursing into List element types.
// Invalid is a poison type and compares equal to anything, so a single
// already-reported type error does not cascade into further diagnostics.
func (s Signature) Equal(o Signature) bool {
	if s.Kind == Invalid || o.Kind == Invalid {
		return true
	}
	if s.Kind != o.Kind {
		return false
	}
	if s.Kind == ListT {
		if s.Elem == nil || o.Elem == nil {
			return s.Elem == o.Elem
		}
		return s.Elem.Equal(*o.Elem)
	}
	return true
}

// String renders the type the way it appears in Aud source.
func (s Signature) String() string {
	switch s.Kind {
	case Void:
		return "void"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	case FolderT:
		return "Folder"
	case FileT:
		return "File"
	case AudioT:
		return "Audio"
	case ListT:
		if s.Elem == nil {
			return "List<?>"
		}
		return fmt.Sprintf("List<%s>", s.Elem.String())
	case Null:
		return "null"
	default:
		return "?"
	}
}

// FuncSig is a FunctionTypeSignature: ordered parameter types and a
// return type.
type FuncSig struct {
	Params []Signature
	Return Signature
}

// FromTypeName resolves a bare (non-List) type keyword to a Signature.
func FromTypeName(name string) (Signature, bool) {
	switch name {
	case "void":
		return TVoid, true
	case "bool":
		return TBool, true
	case "int":
		return TInt, true
	case "float":
		return TFloat, true
	case "string":
		return TString, true
	case "Folder":
		return TFolder, true
	case "File":
		return TFile, true
	case "Audio":
		return TAudio, true
	default:
		return Signature{}, false
	}
}
