package domain

// NewFile constructs a detached File (no parent) as spec's File(name)
// constructor: File and Audio values are always created without a parent
// until placed into a folder via move or add_file.
func (w *World) NewFile(name string) FileHandle {
	return w.newFile(name, 0, false, Plain)
}

// NewAudio constructs a detached Audio, spec's Audio(name) constructor.
func (w *World) NewAudio(name string) FileHandle {
	h := w.newFile(name, 0, false, AudioKind)
	w.files[h].Title = filenameStem(name)
	return h
}

// Move reparents a live file, detaching it from its current parent first.
// The new parent must itself be a live folder.
func (w *World) Move(f FileHandle, newParent FolderHandle) error {
	fo, ok := w.files[f]
	if !ok || !fo.Live {
		return ErrFileNotFound
	}
	np, ok := w.folders[newParent]
	if !ok {
		return ErrFileNotFound
	}
	if fo.HasParent {
		w.detachFromParent(f, fo.Parent)
	}
	np.Files = append(np.Files, f)
	fo.Parent = newParent
	fo.HasParent = true
	return nil
}

// ChangeFilename renames a live file or audio in place, leaving its
// parent and extension-derived Kind untouched.
func (w *World) ChangeFilename(f FileHandle, name string) error {
	fo, ok := w.files[f]
	if !ok || !fo.Live {
		return ErrFileNotFound
	}
	fo.Filename = name
	return nil
}

// Delete detaches and marks a file no longer live. Every subsequent
// operation against the handle reports File not found.
func (w *World) Delete(f FileHandle) error {
	fo, ok := w.files[f]
	if !ok || !fo.Live {
		return ErrFileNotFound
	}
	if fo.HasParent {
		w.detachFromParent(f, fo.Parent)
	}
	fo.Live = false
	fo.HasParent = false
	return nil
}

// Ftoa probes whether f can be viewed as Audio, per spec's "attempts to
// interpret file as audio; success returns a handle to the same entity"
// wording: File and Audio share one FileObject, so the "new handle" is
// the same handle re-tagged, not a fresh allocation. Probing succeeds for
// a live file whose extension names a recognized audio format.
func (w *World) Ftoa(f FileHandle) (FileHandle, bool) {
	fo, ok := w.files[f]
	if !ok || !fo.Live {
		return 0, false
	}
	if fo.Kind == AudioKind {
		return f, true
	}
	if !isAudioExt(fo.Filename) {
		return 0, false
	}
	fo.Kind = AudioKind
	fo.Title = filenameStem(fo.Filename)
	fo.Length = 0
	fo.Bitrate = 0
	return f, true
}

// Atof strips the Audio-only attributes off a, returning a File view of
// the same entity. Always succeeds; File(a) is total.
func (w *World) Atof(a FileHandle) FileHandle {
	if fo, ok := w.files[a]; ok {
		fo.Kind = Plain
		fo.Length = 0
		fo.Bitrate = 0
		fo.Title = ""
		fo.Volume = 0
	}
	return a
}

// FileEqual implements File/Audio equality: same reconstructed path and
// same parent identity.
func (w *World) FileEqual(a, b FileHandle) bool {
	if a == b {
		return true
	}
	fa, oka := w.files[a]
	fb, okb := w.files[b]
	if !oka || !okb {
		return false
	}
	return w.filePath(fa) == w.filePath(fb) && fa.HasParent == fb.HasParent && fa.Parent == fb.Parent
}
