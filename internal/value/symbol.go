package value

import "github.com/plorthlang/plorth/internal/token"

type symbolData struct {
	identifier string
	pos        token.Position
	interned   bool
}

// NewSymbol constructs a symbol value carrying identifier and the position
// of its occurrence. When the runtime's symbol interning is enabled, two
// symbols with the same identifier compare equal by reference and their
// Position() word returns null (spec.md §3, §9 "Symbol interning").
func NewSymbol(identifier string, pos token.Position) *Value {
	v := newValue(KindSymbol)
	v.sym = &symbolData{identifier: identifier, pos: pos}
	return v
}

// NewInternedSymbol is like NewSymbol but flags the symbol as interned,
// discarding its per-occurrence position per spec.md §9.
func NewInternedSymbol(identifier string) *Value {
	v := newValue(KindSymbol)
	v.sym = &symbolData{identifier: identifier, interned: true}
	return v
}

// Identifier returns the symbol's identifier text.
func (v *Value) Identifier() string { return v.sym.identifier }

// SymbolPosition returns the symbol's occurrence position, or the zero
// Position if the symbol is interned.
func (v *Value) SymbolPosition() token.Position { return v.sym.pos }

// Interned reports whether v is an interned symbol.
func (v *Value) Interned() bool { return v.sym.interned }
