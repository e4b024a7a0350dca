package lexer

import "github.com/plorthlang/plorth/internal/token"

// Kind identifies the lexical class of a Token.
type Kind int

const (
	EOF Kind = iota
	Illegal
	LParen    // (
	RParen    // )
	LBracket  // [
	RBracket  // ]
	LBrace    // {
	RBrace    // }
	Colon     // :
	Semicolon // ;
	Comma     // ,
	StringLit // "..."
	SymbolLit // bare word-character run
)

// Token is a single lexical unit: a structural operator, a decoded string
// literal, or a symbol run, each with its starting Position.
type Token struct {
	Kind     Kind
	Position token.Position
	// Literal is the raw source text for SymbolLit, the offending character
	// for Illegal, or the already-unescaped string value for StringLit.
	// Unused otherwise.
	Literal string
}
