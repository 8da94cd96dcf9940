// Package diagfmt renders diag.Diagnostic values into the wire format
// spec.md §6 requires: "[line, column] <Message>" per diagnostic, one per
// line, in source order. It is adapted from the teacher's internal/diagfmt
// package, scaled from a multi-file FileSet-aware pretty-printer down to
// Aud's single-Reader source model.
package diagfmt

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"aud/internal/diag"
	"aud/internal/source"
)

var (
	errorColor = color.New(color.FgRed, color.Bold)
	warnColor  = color.New(color.FgYellow, color.Bold)
	infoColor  = color.New(color.FgCyan, color.Bold)
)

// Format renders one diagnostic as "[line, column] <Message>". When
// useColor is true the "[line, column]" part is colored by severity; the
// message text is left uncolored and unchanged.
func Format(d diag.Diagnostic, r *source.Reader, useColor bool) string {
	pos := r.PositionAt(d.Primary.Start)
	line := fmt.Sprintf("%s %s", pos.String(), d.Message)
	if !useColor {
		return line
	}
	return severityColor(d.Severity).Sprint(pos.String()) + " " + d.Message
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevWarning:
		return warnColor
	case diag.SevInfo:
		return infoColor
	default:
		return errorColor
	}
}

// FormatAll renders every diagnostic in bag in emission order (which is
// source order, since every stage reports diagnostics as it encounters
// them), one per line, with a trailing newline after the last.
func FormatAll(bag *diag.Bag, r *source.Reader, useColor bool) string {
	var b strings.Builder
	for _, d := range bag.Items() {
		b.WriteString(Format(d, r, useColor))
		b.WriteByte('\n')
	}
	return b.String()
}

// Caret renders a "^~~~" marker under the source line containing span,
// with the caret column-aligned by display width (accounting for wide or
// zero-width runes) using go-runewidth, the same measurement the teacher
// uses to align its own terminal output.
//
// Span offsets are rune indices into the normalized source (matching
// source.Reader's own indexing), so this works entirely in rune space
// rather than byte space to stay correct for non-ASCII source text.
func Caret(r *source.Reader, span source.Span) string {
	runes := []rune(r.Normalized())
	lineText, lineStart := lineAt(runes, r.PositionAt(span.Start).Line)

	rel := int(span.Start) - int(lineStart)
	if rel < 0 {
		rel = 0
	}
	if rel > len(lineText) {
		rel = len(lineText)
	}
	pad := runewidth.StringWidth(string(lineText[:rel]))

	width := int(span.Len())
	if width < 1 {
		width = 1
	}
	return string(lineText) + "\n" + strings.Repeat(" ", pad) + "^" + strings.Repeat("~", width-1)
}

// lineAt returns the given 1-indexed line's runes plus its starting rune
// offset within the full normalized source.
func lineAt(runes []rune, line uint32) (text []rune, start uint32) {
	lineNo := uint32(1)
	lineStart := 0
	for i, ch := range runes {
		if ch == '\n' {
			if lineNo == line {
				return runes[lineStart:i], uint32(lineStart)
			}
			lineNo++
			lineStart = i + 1
		}
	}
	if lineNo == line {
		return runes[lineStart:], uint32(lineStart)
	}
	return nil, 0
}
