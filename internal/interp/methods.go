package interp

import (
	"aud/internal/ast"
	"aud/internal/diag"
	"aud/internal/domain"
	"aud/internal/source"
)

// evalMember resolves target.name (attribute read) or target.name(args)
// (method call) at runtime, mirroring internal/sema/methods.go's static
// table but against live domain.World state.
func (in *interpreter) evalMember(n *ast.Member) (Value, *Fault) {
	target, f := in.eval(n.Target)
	if f != nil {
		return Value{}, f
	}
	if target.Kind == KNull {
		// The static type checker only knows target is some composite
		// type; it cannot see that this particular value is currently
		// null. There is no dedicated "null dereference" fault kind in
		// the spec, so this is treated as the closest named fault: the
		// referenced entity does not exist.
		return Value{}, newFault(diag.FileNotFound, n.Span, "File not found")
	}
	if target.Kind == KList {
		return in.evalListMethod(n, target)
	}
	if !n.HasArgs {
		return in.evalAttr(n, target)
	}
	return in.evalMethodCall(n, target)
}

func (in *interpreter) evalAttr(n *ast.Member, target Value) (Value, *Fault) {
	switch target.Kind {
	case KFolder:
		fo, ok := in.world.FolderInfo(target.Folder)
		if !ok {
			return Value{}, newFault(diag.FileNotFound, n.Span, "File not found")
		}
		switch n.Name {
		case "parent":
			if !fo.HasParent {
				return VNull(), nil
			}
			return VFolderOf(fo.Parent), nil
		case "files":
			items := make([]Value, 0, len(fo.Files))
			for _, h := range fo.Files {
				items = append(items, VFileOf(h))
			}
			return VListOf(items), nil
		case "subfolders":
			items := make([]Value, 0, len(fo.Subfolders))
			for _, h := range fo.Subfolders {
				items = append(items, VFolderOf(h))
			}
			return VListOf(items), nil
		case "is_root":
			return VBoolOf(fo.IsRoot()), nil
		}
	case KFile, KAudio:
		fo, ok := in.world.FileInfo(target.File)
		if !ok || !fo.Live {
			return Value{}, newFault(diag.FileNotFound, n.Span, "File not found")
		}
		switch n.Name {
		case "filename":
			return VStringOf(fo.Filename), nil
		case "parent":
			if !fo.HasParent {
				return VNull(), nil
			}
			return VFolderOf(fo.Parent), nil
		case "title":
			return VStringOf(fo.Title), nil
		case "length":
			return VIntOf(fo.Length), nil
		case "bitrate":
			return VIntOf(fo.Bitrate), nil
		}
	}
	return Value{}, newFault(diag.InvalidValueRuntime, n.Span, "Invalid value")
}

func (in *interpreter) evalMethodCall(n *ast.Member, target Value) (Value, *Fault) {
	args, f := in.evalArgs(n.Args)
	if f != nil {
		return Value{}, f
	}
	switch target.Kind {
	case KFile:
		return in.evalFileMethod(n, target.File, args)
	case KAudio:
		return in.evalAudioMethod(n, target.File, args)
	case KFolder:
		return in.evalFolderMethod(n, target.Folder, args)
	default:
		return Value{}, newFault(diag.InvalidValueRuntime, n.Span, "Invalid value")
	}
}

func (in *interpreter) evalArgs(exprs []ast.Expr) ([]Value, *Fault) {
	out := make([]Value, 0, len(exprs))
	for _, e := range exprs {
		v, f := in.eval(e)
		if f != nil {
			return nil, f
		}
		out = append(out, v)
	}
	return out, nil
}

func (in *interpreter) evalFileMethod(n *ast.Member, h domain.FileHandle, args []Value) (Value, *Fault) {
	switch n.Name {
	case "move":
		if err := in.world.Move(h, args[0].Folder); err != nil {
			return Value{}, domainFault(err, n.Span)
		}
		return VVoid(), nil
	case "delete":
		if err := in.world.Delete(h); err != nil {
			return Value{}, domainFault(err, n.Span)
		}
		return VVoid(), nil
	case "change_filename":
		if err := in.world.ChangeFilename(h, args[0].S); err != nil {
			return Value{}, domainFault(err, n.Span)
		}
		return VVoid(), nil
	default:
		return Value{}, newFault(diag.InvalidValueRuntime, n.Span, "Invalid value")
	}
}

// evalAudioMethod dispatches Audio's own methods, falling back to
// evalFileMethod for File's methods (move/delete/change_filename):
// Audio inherits from File (spec §9), mirrored on the original's
// AudioValue.call_method delegating to FileValue.call_method via super()
// when it doesn't recognize the method name itself.
func (in *interpreter) evalAudioMethod(n *ast.Member, h domain.FileHandle, args []Value) (Value, *Fault) {
	switch n.Name {
	case "move", "delete", "change_filename":
		return in.evalFileMethod(n, h, args)
	case "cut":
		if err := in.world.Cut(h, args[0].I, args[1].I); err != nil {
			return Value{}, domainFault(err, n.Span)
		}
		return VVoid(), nil
	case "concat":
		if err := in.world.Concat(h, args[0].File); err != nil {
			return Value{}, domainFault(err, n.Span)
		}
		return VVoid(), nil
	case "change_title":
		if err := in.world.ChangeTitle(h, args[0].S); err != nil {
			return Value{}, domainFault(err, n.Span)
		}
		return VVoid(), nil
	case "change_format":
		if err := in.world.ChangeFormat(h, args[0].S); err != nil {
			return Value{}, domainFault(err, n.Span)
		}
		return VVoid(), nil
	case "change_volume":
		if err := in.world.ChangeVolume(h, args[0].F); err != nil {
			return Value{}, domainFault(err, n.Span)
		}
		return VVoid(), nil
	default:
		return Value{}, newFault(diag.InvalidValueRuntime, n.Span, "Invalid value")
	}
}

func (in *interpreter) evalFolderMethod(n *ast.Member, h domain.FolderHandle, args []Value) (Value, *Fault) {
	switch n.Name {
	case "get_file":
		fh, ok := in.world.GetFile(h, args[0].S)
		if !ok {
			return VNull(), nil
		}
		return VFileOf(fh), nil
	case "get_subfolder":
		sh, ok := in.world.GetSubfolder(h, args[0].S)
		if !ok {
			return VNull(), nil
		}
		return VFolderOf(sh), nil
	case "add_file":
		if err := in.world.AddFile(h, args[0].File); err != nil {
			return Value{}, domainFault(err, n.Span)
		}
		return VVoid(), nil
	case "remove_file":
		in.world.RemoveFile(h, args[0].S)
		return VVoid(), nil
	case "list_audio":
		handles := in.world.ListAudio(h)
		items := make([]Value, 0, len(handles))
		for _, fh := range handles {
			items = append(items, VAudioOf(fh))
		}
		return VListOf(items), nil
	case "get_name":
		return VStringOf(in.world.GetName(h)), nil
	default:
		return Value{}, newFault(diag.InvalidValueRuntime, n.Span, "Invalid value")
	}
}

func (in *interpreter) evalListMethod(n *ast.Member, target Value) (Value, *Fault) {
	args, f := in.evalArgs(n.Args)
	if f != nil {
		return Value{}, f
	}
	switch n.Name {
	case "len":
		return VIntOf(int64(len(target.List.Items))), nil
	case "get":
		idx := args[0].I
		if idx < 0 || idx >= int64(len(target.List.Items)) {
			return Value{}, newFault(diag.ListIndexOutOfBounds, n.Span, "List index out of bounds")
		}
		return target.List.Items[idx], nil
	case "set":
		idx := args[0].I
		if idx < 0 || idx >= int64(len(target.List.Items)) {
			return Value{}, newFault(diag.ListIndexOutOfBounds, n.Span, "List index out of bounds")
		}
		target.List.Items[idx] = args[1]
		return VVoid(), nil
	default:
		return Value{}, newFault(diag.InvalidValueRuntime, n.Span, "Invalid value")
	}
}

// domainFault maps a domain package sentinel error onto its runtime fault
// code, the same error-code-from-error idiom the teacher's FS intrinsics
// use (see DESIGN.md).
func domainFault(err error, span source.Span) *Fault {
	switch err {
	case domain.ErrInvalidValue:
		return newFault(diag.InvalidValueRuntime, span, "Invalid value")
	default:
		return newFault(diag.FileNotFound, span, "File not found")
	}
}
