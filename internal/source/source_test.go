package source

import "testing"

func TestNormalizeLineEndings(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"crlf", "a\r\nb", "a\nb"},
		{"lone cr", "a\rb", "a\nb"},
		{"lone lf", "a\nb", "a\nb"},
		{"mixed", "a\r\nb\rc\n", "a\nb\nc\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := New(tc.in)
			if got := r.Normalized(); got != tc.want {
				t.Fatalf("Normalized() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestReaderPositionTracking(t *testing.T) {
	r := New("ab\ncd")
	var got []Position
	for !r.EOF() {
		got = append(got, r.Position())
		r.Advance()
	}
	want := []Position{{1, 1}, {1, 2}, {1, 3}, {2, 1}, {2, 2}}
	if len(got) != len(want) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestReaderPeekDoesNotConsume(t *testing.T) {
	r := New("xy")
	if got := r.Peek(0); got != 'x' {
		t.Fatalf("Peek(0) = %q, want 'x'", got)
	}
	if got := r.Peek(1); got != 'y' {
		t.Fatalf("Peek(1) = %q, want 'y'", got)
	}
	if got := r.Peek(2); got != eof {
		t.Fatalf("Peek(2) = %q, want eof", got)
	}
	if got := r.Advance(); got != 'x' {
		t.Fatalf("Advance() = %q, want 'x'", got)
	}
}

func TestPositionAtMatchesIncrementalTracking(t *testing.T) {
	src := "line one\nline two\nline three"
	r := New(src)
	for off := uint32(0); off <= uint32(len([]rune(src))); off++ {
		want := r.PositionAt(off)
		// Cross-check via a fresh incremental walk.
		walker := New(src)
		for i := uint32(0); i < off; i++ {
			walker.Advance()
		}
		got := walker.Position()
		if got != want {
			t.Fatalf("offset %d: PositionAt = %+v, incremental = %+v", off, want, got)
		}
	}
}
