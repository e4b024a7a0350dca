// Package ast holds the immutable token tree produced by the parser
// (spec.md §3, "Token tree (C4 output)"). It is distinct from runtime
// values: a Node describes source syntax, while a value.Value (internal/value)
// is what the compiler lowers a Node into.
package ast

import "github.com/plorthlang/plorth/internal/token"

// Node is the sum type over every token tree variant. Implementations are
// Array, Object, Quote, String, Symbol, and Word.
type Node interface {
	Pos() token.Position
	node()
}

// Array is a literal array token: '[' value (',' value)* ','? ']'.
type Array struct {
	Position token.Position
	Elements []Node
}

func (a *Array) Pos() token.Position { return a.Position }
func (*Array) node()                 {}

// Property is one key/value pair of an Object token, in source order.
type Property struct {
	Key   string
	Value Node
}

// Object is a literal object token: '{' pair (',' pair)* ','? '}'.
// Properties preserve insertion order; a duplicate key during parsing
// overwrites the earlier entry in place (last-writer-wins, spec.md §3).
type Object struct {
	Position   token.Position
	Properties []Property
}

func (o *Object) Pos() token.Position { return o.Position }
func (*Object) node()                 {}

// Quote is a first-class executable sequence: '(' value* ')'.
type Quote struct {
	Position token.Position
	Children []Node
}

func (q *Quote) Pos() token.Position { return q.Position }
func (*Quote) node()                 {}

// String is a quoted, already-unescaped string literal.
type String struct {
	Position token.Position
	Value    string
}

func (s *String) Pos() token.Position { return s.Position }
func (*String) node()                 {}

// Symbol is a bare word-character run: an identifier token.
type Symbol struct {
	Position   token.Position
	Identifier string
}

func (s *Symbol) Pos() token.Position { return s.Position }
func (*Symbol) node()                 {}

// Word is a word definition: ':' symbol value* ';'. It is only meaningful
// inside a quote body (including the implicit top-level quote, spec.md §4.4).
type Word struct {
	Position token.Position
	Symbol   *Symbol
	Quote    *Quote
}

func (w *Word) Pos() token.Position { return w.Position }
func (*Word) node()                 {}
