// Package dictionary implements C8: an identifier-to-word mapping used for
// both a context's local dictionary and the runtime's global dictionary
// (spec.md §3 "Dictionary (C8)", §4.8 "Word definition and lookup").
//
// Unlike the teacher's ident.Map (case-insensitive, matching Pascal
// identifier semantics), lookups here are case-sensitive: this language's
// word-character symbols (internal/runeclass.IsWordCharacter) are
// case-sensitive tokens, so "Dup" and "dup" name different words.
package dictionary

import "github.com/plorthlang/plorth/internal/value"

// Dictionary maps identifiers to word values (spec.md KindWord).
type Dictionary struct {
	entries map[string]*value.Value
}

// New returns an empty dictionary.
func New() *Dictionary {
	return &Dictionary{entries: make(map[string]*value.Value)}
}

// Define installs word under its own symbol's identifier, retaining it and
// releasing whatever word previously occupied that name.
func (d *Dictionary) Define(word *value.Value) {
	name := word.WordSymbol().Identifier()
	word.Retain()
	if old, ok := d.entries[name]; ok {
		old.Release()
	}
	d.entries[name] = word
}

// Lookup returns the word bound to name, if any.
func (d *Dictionary) Lookup(name string) (*value.Value, bool) {
	w, ok := d.entries[name]
	return w, ok
}

// Has reports whether name is bound.
func (d *Dictionary) Has(name string) bool {
	_, ok := d.entries[name]
	return ok
}

// Delete removes and releases the word bound to name, if any.
func (d *Dictionary) Delete(name string) {
	if old, ok := d.entries[name]; ok {
		old.Release()
		delete(d.entries, name)
	}
}

// Len returns the number of bound words.
func (d *Dictionary) Len() int { return len(d.entries) }

// Words returns an object value (spec.md KindObject) mapping every bound
// identifier to its word, for the "locals"/"globals" introspection words
// (SPEC_FULL.md §12).
func (d *Dictionary) Words() *value.Value {
	obj := value.NewObject()
	for name, w := range d.entries {
		obj.Set(name, w)
	}
	return obj
}

// Range calls f for every bound (name, word) pair. Range stops early if f
// returns false.
func (d *Dictionary) Range(f func(name string, word *value.Value) bool) {
	for name, w := range d.entries {
		if !f(name, w) {
			return
		}
	}
}
