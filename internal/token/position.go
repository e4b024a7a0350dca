// Package token defines the source-position type shared by the lexer,
// parser, value model, and diagnostics.
package token

import "fmt"

// Position identifies a single point in a named source text.
// Line and Column are both 1-indexed.
type Position struct {
	File   string
	Line   int
	Column int
}

// IsZero reports whether the position carries no information.
func (p Position) IsZero() bool {
	return p == Position{}
}

// String renders the position as "file:line:column", or "line:column" when
// File is empty.
func (p Position) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}
