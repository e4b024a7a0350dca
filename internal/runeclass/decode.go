package runeclass

import (
	"errors"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DecodeStrict validates b as UTF-8 and returns the decoded string, or an
// error if b contains a malformed byte sequence. It is the strict decoding
// path for an input adapter (spec.md §6), which must distinguish a clean read
// from a transport that fed it invalid bytes, as opposed to the lexer's
// permissive decoding.
//
// golang.org/x/text/encoding/unicode's UTF8 decoder replaces malformed
// sequences with U+FFFD instead of failing, so the bytes are checked with
// utf8.Valid first; the decode itself stays on the same transform.Transformer
// machinery the teacher's encoding.go (internal/interp/encoding.go) uses for
// its own text-encoding conversions.
func DecodeStrict(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", errors.New("invalid UTF-8 byte sequence")
	}
	decoder := unicode.UTF8.NewDecoder()
	out, _, err := transform.Bytes(decoder, b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
