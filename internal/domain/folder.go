package domain

import (
	"os"
	"path/filepath"
)

// Folder implements the Folder(path) constructor: adopt-or-create.
// A normalized path already known to the world returns its existing
// handle. Otherwise a new folder is registered and, if the path names a
// real directory, its tree is adopted from the backing filesystem up to
// maxFolderDepth; a path with no backing directory yields an empty
// folder rather than an error, matching the constructor's total nature.
func (w *World) Folder(path string) FolderHandle {
	norm := normalizePath(path)
	if h, ok := w.pathIndex[norm]; ok {
		return h
	}
	h := w.newFolder(norm, 0, false)
	w.adopt(h, norm, 1)
	return h
}

func normalizePath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return filepath.Clean(p)
	}
	return abs
}

// adopt populates fo's Files/Subfolders by reading the real directory at
// path, recursing into subdirectories up to the world's depth limit.
// Grounded on intrinsic_fs_file_ops.go's raw os.* usage; the recursive
// tree walk itself has no teacher equivalent (the teacher's FS intrinsics
// address individual file descriptors, never a directory tree).
func (w *World) adopt(h FolderHandle, path string, depth int) {
	if depth > w.maxFolderDepth {
		return
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return
	}
	fo := w.folders[h]
	for _, ent := range entries {
		childPath := filepath.Join(path, ent.Name())
		if ent.IsDir() {
			ch := w.newFolder(childPath, h, true)
			fo.Subfolders = append(fo.Subfolders, ch)
			w.adopt(ch, childPath, depth+1)
		} else {
			kind := Plain
			if isAudioExt(ent.Name()) {
				kind = AudioKind
			}
			fh := w.newFile(ent.Name(), h, true, kind)
			if kind == AudioKind {
				w.files[fh].Title = filenameStem(ent.Name())
			}
			fo.Files = append(fo.Files, fh)
		}
	}
}

func filenameStem(name string) string {
	return name[:len(name)-len(filepath.Ext(name))]
}

// GetFile finds a live, direct child file by filename.
func (w *World) GetFile(folder FolderHandle, name string) (FileHandle, bool) {
	fo, ok := w.folders[folder]
	if !ok {
		return 0, false
	}
	for _, h := range fo.Files {
		if f, ok := w.files[h]; ok && f.Live && f.Filename == name {
			return h, true
		}
	}
	return 0, false
}

// GetSubfolder finds a direct child subfolder by basename.
func (w *World) GetSubfolder(folder FolderHandle, name string) (FolderHandle, bool) {
	fo, ok := w.folders[folder]
	if !ok {
		return 0, false
	}
	for _, h := range fo.Subfolders {
		if sf, ok := w.folders[h]; ok && sf.Name() == name {
			return h, true
		}
	}
	return 0, false
}

// AddFile reparents file into folder, detaching it from any prior parent.
func (w *World) AddFile(folder FolderHandle, file FileHandle) error {
	fo, ok := w.folders[folder]
	if !ok {
		return ErrFileNotFound
	}
	fi, ok := w.files[file]
	if !ok || !fi.Live {
		return ErrFileNotFound
	}
	if fi.HasParent {
		w.detachFromParent(file, fi.Parent)
	}
	fo.Files = append(fo.Files, file)
	fi.Parent = folder
	fi.HasParent = true
	return nil
}

// RemoveFile detaches and marks non-live the named direct child file, the
// folder-side equivalent of that file's own delete(). A missing name is a
// no-op.
func (w *World) RemoveFile(folder FolderHandle, name string) {
	h, ok := w.GetFile(folder, name)
	if !ok {
		return
	}
	w.detachFromParent(h, folder)
	if fo, ok := w.files[h]; ok {
		fo.HasParent = false
		fo.Live = false
	}
}

// ListAudio returns the direct child files currently viewed as Audio.
func (w *World) ListAudio(folder FolderHandle) []FileHandle {
	fo, ok := w.folders[folder]
	if !ok {
		return nil
	}
	var out []FileHandle
	for _, h := range fo.Files {
		if f, ok := w.files[h]; ok && f.Live && f.Kind == AudioKind {
			out = append(out, h)
		}
	}
	return out
}

// GetName returns the folder's basename.
func (w *World) GetName(folder FolderHandle) string {
	fo, ok := w.folders[folder]
	if !ok {
		return ""
	}
	return fo.Name()
}

// FolderEqual implements Folder equality: same normalized path and same
// parent identity.
func (w *World) FolderEqual(a, b FolderHandle) bool {
	if a == b {
		return true
	}
	fa, oka := w.folders[a]
	fb, okb := w.folders[b]
	if !oka || !okb {
		return false
	}
	return fa.Path == fb.Path && fa.HasParent == fb.HasParent && fa.Parent == fb.Parent
}
