// Package lexcache serializes a token stream to disk so `aud lex --cache`
// and `aud fmt-diag --cache` can round-trip it without re-lexing source.
// Grounded on the teacher's internal/driver/dcache.go, which caches module
// compilation results the same way; scaled down from a module-hash-keyed
// disk cache to a single flat token payload since Aud has no module graph.
package lexcache

import (
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"aud/internal/source"
	"aud/internal/token"
)

// schemaVersion is bumped whenever Payload's shape changes, so a stale
// cache file is detected and ignored rather than misdecoded.
const schemaVersion uint16 = 1

// TokenRecord is a msgpack-friendly projection of token.Token: the same
// fields, but flattened so the format doesn't depend on token.Kind's Go
// representation staying stable across versions.
type TokenRecord struct {
	Kind      uint8
	SpanStart uint32
	SpanEnd   uint32
	Text      string
	LitInt    int64
	LitFloat  float64
	LitString string
	LitBool   bool
}

// Payload is the on-disk cache format: the full token stream for one
// source file plus enough of the source to resolve diagnostic positions
// without re-lexing.
type Payload struct {
	Schema uint16
	Source string
	Tokens []TokenRecord
}

// FromTokens converts a lexed token stream into a Payload over src.
func FromTokens(src string, toks []token.Token) *Payload {
	recs := make([]TokenRecord, len(toks))
	for i, t := range toks {
		recs[i] = TokenRecord{
			Kind:      uint8(t.Kind),
			SpanStart: t.Span.Start,
			SpanEnd:   t.Span.End,
			Text:      t.Text,
			LitInt:    t.Literal.Int,
			LitFloat:  t.Literal.Float,
			LitString: t.Literal.String,
			LitBool:   t.Literal.Bool,
		}
	}
	return &Payload{Schema: schemaVersion, Source: src, Tokens: recs}
}

// ToTokens reconstructs the token.Token stream from the payload.
func (p *Payload) ToTokens() []token.Token {
	out := make([]token.Token, len(p.Tokens))
	for i, r := range p.Tokens {
		out[i] = token.Token{
			Kind: token.Kind(r.Kind),
			Span: source.Span{Start: r.SpanStart, End: r.SpanEnd},
			Text: r.Text,
			Literal: token.Literal{
				Int:    r.LitInt,
				Float:  r.LitFloat,
				String: r.LitString,
				Bool:   r.LitBool,
			},
		}
	}
	return out
}

// Save writes p to path in msgpack form, atomically via a temp file plus
// rename, mirroring the teacher's DiskCache.Put.
func Save(path string, p *Payload) error {
	f, err := os.CreateTemp("", "audlex-*.mp")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer os.Remove(tmp)

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(p); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Load reads and decodes a Payload from path. A schema mismatch is
// reported as an error rather than silently misdecoded.
func Load(path string) (*Payload, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var p Payload
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(&p); err != nil {
		return nil, err
	}
	if p.Schema != schemaVersion {
		return nil, errSchemaMismatch{got: p.Schema, want: schemaVersion}
	}
	return &p, nil
}

type errSchemaMismatch struct{ got, want uint16 }

func (e errSchemaMismatch) Error() string {
	return "lexcache: schema version mismatch"
}
