// Package runeclass implements C1: UTF-8 transcoding and code-point
// classification for the parser's lexical layer and the string prototype.
//
// Bare code-point predicates (is_whitespace, is_control, ...) stay on the
// standard library's unicode package, matching the teacher's own lexer
// (internal/lexer/lexer.go used unicode+utf8 directly); golang.org/x/text
// does not package rune-level predicates, only higher-level transforms,
// so there is nothing from the domain stack to reach for here.
package runeclass

import (
	"unicode"
	"unicode/utf8"
)

// structural lists the ten operator runes the parser reserves; none of them
// may appear inside a bare symbol (spec.md §4.1).
const structural = "()[]{}:;,\""

// IsStructural reports whether r is one of the ten parser-reserved operators.
func IsStructural(r rune) bool {
	for _, s := range structural {
		if r == s {
			return true
		}
	}
	return false
}

// IsWhitespace reports whether r is inter-token whitespace.
func IsWhitespace(r rune) bool {
	return unicode.IsSpace(r)
}

// IsControl reports whether r is a control code point.
func IsControl(r rune) bool {
	return unicode.IsControl(r)
}

// IsGraphic reports whether r has a visible glyph.
func IsGraphic(r rune) bool {
	return unicode.IsGraphic(r)
}

// IsUpper reports whether r is an upper-case letter.
func IsUpper(r rune) bool {
	return unicode.IsUpper(r)
}

// IsLower reports whether r is a lower-case letter.
func IsLower(r rune) bool {
	return unicode.IsLower(r)
}

// ToUpper returns the upper-case mapping of r.
func ToUpper(r rune) rune {
	return unicode.ToUpper(r)
}

// ToLower returns the lower-case mapping of r.
func ToLower(r rune) rune {
	return unicode.ToLower(r)
}

// IsDigit reports whether r is an ASCII decimal digit, the alphabet the
// bare numeric literal grammar is restricted to (spec.md §4.8 step 4).
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsWordCharacter reports whether r may appear inside a bare symbol: any
// non-whitespace, non-control rune that is not one of the ten structural
// operators (spec.md §4.1).
func IsWordCharacter(r rune) bool {
	if r == utf8.RuneError {
		return false
	}
	if IsWhitespace(r) || IsControl(r) {
		return false
	}
	return !IsStructural(r)
}

// DecodeRune decodes the first rune in s permissively: malformed sequences
// decode as utf8.RuneError with a width of 1, the same "lossy" behavior as
// strings/range over a string. Used by the lexer, which reports malformed
// bytes as syntax errors itself rather than failing the whole decode.
func DecodeRune(s string) (r rune, size int) {
	return utf8.DecodeRuneInString(s)
}

// EncodeRune appends the UTF-8 encoding of r to dst and returns the result.
func EncodeRune(dst []byte, r rune) []byte {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	return append(dst, buf[:n]...)
}

// ValidString reports whether s is entirely well-formed UTF-8.
func ValidString(s string) bool {
	return utf8.ValidString(s)
}
