package sema

import (
	"aud/internal/ast"
	"aud/internal/diag"
	"aud/internal/types"
)

// builtinSig resolves the fixed table of built-in free functions.
func builtinSig(name string) (types.FuncSig, bool) {
	switch name {
	case "print":
		return types.FuncSig{Params: []types.Signature{types.TString}, Return: types.TVoid}, true
	case "input":
		return types.FuncSig{Return: types.TString}, true
	case "btos":
		return types.FuncSig{Params: []types.Signature{types.TBool}, Return: types.TString}, true
	case "stoi":
		return types.FuncSig{Params: []types.Signature{types.TString}, Return: types.TInt}, true
	case "itos":
		return types.FuncSig{Params: []types.Signature{types.TInt}, Return: types.TString}, true
	case "stof":
		return types.FuncSig{Params: []types.Signature{types.TString}, Return: types.TFloat}, true
	case "ftos":
		return types.FuncSig{Params: []types.Signature{types.TFloat}, Return: types.TString}, true
	case "itof":
		return types.FuncSig{Params: []types.Signature{types.TInt}, Return: types.TFloat}, true
	case "ftoi":
		return types.FuncSig{Params: []types.Signature{types.TFloat}, Return: types.TInt}, true
	case "atof":
		return types.FuncSig{Params: []types.Signature{types.TAudio}, Return: types.TFile}, true
	case "ftoa":
		return types.FuncSig{Params: []types.Signature{types.TFile}, Return: types.TAudio}, true
	default:
		return types.FuncSig{}, false
	}
}

// attrTable holds the read-only attributes exposed per domain type.
var attrTable = map[string]map[string]types.Signature{
	"Folder": {
		"parent":     types.TFolder,
		"files":      types.List(types.TFile),
		"subfolders": types.List(types.TFolder),
		"is_root":    types.TBool,
	},
	"File": {
		"filename": types.TString,
		"parent":   types.TFolder,
	},
	"Audio": {
		"filename": types.TString,
		"parent":   types.TFolder,
		"title":    types.TString,
		"length":   types.TInt,
		"bitrate":  types.TInt,
	},
}

// methodTable holds the mutating/query methods exposed per domain type.
// Folder's entries are the supplement grounded on original_source's
// Folder builtin-method table (get_file, get_subfolder, add_file,
// remove_file, list_audio, get_name).
var methodTable = map[string]map[string]types.FuncSig{
	"File": {
		"move":            {Params: []types.Signature{types.TFolder}, Return: types.TVoid},
		"delete":          {Return: types.TVoid},
		"change_filename": {Params: []types.Signature{types.TString}, Return: types.TVoid},
	},
	"Audio": {
		"cut":           {Params: []types.Signature{types.TInt, types.TInt}, Return: types.TVoid},
		"concat":        {Params: []types.Signature{types.TAudio}, Return: types.TVoid},
		"change_title":  {Params: []types.Signature{types.TString}, Return: types.TVoid},
		"change_format": {Params: []types.Signature{types.TString}, Return: types.TVoid},
		"change_volume": {Params: []types.Signature{types.TFloat}, Return: types.TVoid},
	},
	"Folder": {
		"get_file":     {Params: []types.Signature{types.TString}, Return: types.TFile},
		"get_subfolder": {Params: []types.Signature{types.TString}, Return: types.TFolder},
		"add_file":     {Params: []types.Signature{types.TFile}, Return: types.TVoid},
		"remove_file":  {Params: []types.Signature{types.TString}, Return: types.TVoid},
		"list_audio":   {Return: types.List(types.TAudio)},
		"get_name":     {Return: types.TString},
	},
}

// lookupMethod resolves name against typeName's own method table, falling
// back to File's table for an Audio receiver: Audio inherits from File
// (spec §9), grounded on the original's type_checker.py falling back to
// builtin_methods["File"] when the receiver is an AudioTypeSignature.
func lookupMethod(typeName, name string) (types.FuncSig, bool) {
	if methods, ok := methodTable[typeName]; ok {
		if sig, ok := methods[name]; ok {
			return sig, true
		}
	}
	if typeName == "Audio" {
		if sig, ok := methodTable["File"][name]; ok {
			return sig, true
		}
	}
	return types.FuncSig{}, false
}

// checkMember resolves target.name (attribute read) or target.name(args)
// (method call) against the static tables above, or against List<T>'s
// built-in len/get/set when the target is a list.
func (c *checker) checkMember(n *ast.Member) types.Signature {
	targetType := c.checkExpr(n.Target)
	if targetType.Kind == types.Invalid {
		for _, a := range n.Args {
			c.checkExpr(a)
		}
		return types.TInvalid
	}
	if targetType.Kind == types.ListT {
		return c.checkListMethod(n, targetType)
	}
	typeName := targetType.String()
	if !n.HasArgs {
		attrs, ok := attrTable[typeName]
		if !ok {
			c.bag.Errorf(diag.InvalidType, n.Span, "Invalid type")
			return types.TInvalid
		}
		at, ok := attrs[n.Name]
		if !ok {
			c.bag.Errorf(diag.InvalidType, n.Span, "Invalid type")
			return types.TInvalid
		}
		return at
	}
	sig, ok := lookupMethod(typeName, n.Name)
	if !ok {
		c.bag.Errorf(diag.InvalidType, n.Span, "Invalid type")
		for _, a := range n.Args {
			c.checkExpr(a)
		}
		return types.TInvalid
	}
	return c.checkCallAgainst(sig, n.Args, n.Span)
}

func (c *checker) checkListMethod(n *ast.Member, listType types.Signature) types.Signature {
	if !n.HasArgs {
		c.bag.Errorf(diag.InvalidType, n.Span, "Invalid type")
		return types.TInvalid
	}
	elem := types.TVoid
	if listType.Elem != nil {
		elem = *listType.Elem
	}
	switch n.Name {
	case "len":
		return c.checkCallAgainst(types.FuncSig{Return: types.TInt}, n.Args, n.Span)
	case "get":
		return c.checkCallAgainst(types.FuncSig{Params: []types.Signature{types.TInt}, Return: elem}, n.Args, n.Span)
	case "set":
		return c.checkCallAgainst(types.FuncSig{Params: []types.Signature{types.TInt, elem}, Return: types.TVoid}, n.Args, n.Span)
	default:
		c.bag.Errorf(diag.InvalidType, n.Span, "Invalid type")
		for _, a := range n.Args {
			c.checkExpr(a)
		}
		return types.TInvalid
	}
}
