package domain

// requireAudio fetches a live Audio-tagged file, or ErrFileNotFound.
func (w *World) requireAudio(a FileHandle) (*FileObject, error) {
	fo, ok := w.files[a]
	if !ok || !fo.Live || fo.Kind != AudioKind {
		return nil, ErrFileNotFound
	}
	return fo, nil
}

// Cut trims a to the [start, end) range, in milliseconds. Requires
// 0 <= start <= end <= length; anything else is an Invalid value fault.
func (w *World) Cut(a FileHandle, start, end int64) error {
	fo, err := w.requireAudio(a)
	if err != nil {
		return err
	}
	if start < 0 || start > end || end > fo.Length {
		return ErrInvalidValue
	}
	fo.Length = end - start
	return nil
}

// Concat appends other's duration onto a. Both must be live Audio.
func (w *World) Concat(a, other FileHandle) error {
	fo, err := w.requireAudio(a)
	if err != nil {
		return err
	}
	oo, err := w.requireAudio(other)
	if err != nil {
		return err
	}
	fo.Length += oo.Length
	return nil
}

// ChangeTitle sets a's title metadata.
func (w *World) ChangeTitle(a FileHandle, title string) error {
	fo, err := w.requireAudio(a)
	if err != nil {
		return err
	}
	fo.Title = title
	return nil
}

// ChangeFormat renames a's extension, leaving the stem untouched.
func (w *World) ChangeFormat(a FileHandle, format string) error {
	fo, err := w.requireAudio(a)
	if err != nil {
		return err
	}
	stem := filenameStem(fo.Filename)
	fo.Filename = stem + "." + format
	return nil
}

// ChangeVolume mutates a's opaque backing content; volume itself is not
// independently observable through any attribute, matching the spec's
// "opaque content" description of an Audio's backing bytes.
func (w *World) ChangeVolume(a FileHandle, delta float64) error {
	fo, err := w.requireAudio(a)
	if err != nil {
		return err
	}
	fo.Volume += delta
	return nil
}
