// Package parser implements the grammar layer of C4: recursive-descent
// parsing of a Lexer's token stream into the immutable internal/ast token
// tree (spec.md §4.4).
package parser

import (
	"fmt"

	"github.com/plorthlang/plorth/internal/ast"
	"github.com/plorthlang/plorth/internal/lexer"
	"github.com/plorthlang/plorth/internal/token"
)

// Error is a single parse failure: the parser stops at the offending
// position (spec.md §4.4 "Error policy").
type Error struct {
	Position token.Position
	Message  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Position)
}

// Parser consumes a Lexer's token stream one token of lookahead at a time;
// the grammar (spec.md §4.4) is LL(1).
type Parser struct {
	l   *lexer.Lexer
	cur lexer.Token
}

// New creates a Parser over l, primed with its first token.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.advance()
	return p
}

// Parse parses filename/src as a complete script and returns it as the
// implicit top-level Quote (spec.md §4.5 "The top-level script is compiled
// as a compiled quote"). On failure it returns the parser's own error if the
// grammar failed (the parser stops at its first error); otherwise it returns
// the first error the lexer recorded.
func Parse(filename, src string) (*ast.Quote, error) {
	l := lexer.New(filename, src)
	p := New(l)
	q, err := p.parseScript()
	if err != nil {
		return nil, err
	}
	if lexErrs := l.Errors(); len(lexErrs) > 0 {
		e := lexErrs[0]
		return nil, &Error{Position: e.Position, Message: e.Message}
	}
	return q, nil
}

func (p *Parser) advance() {
	p.cur = p.l.NextToken()
}

func (p *Parser) errorf(pos token.Position, format string, args ...any) error {
	return &Error{Position: pos, Message: fmt.Sprintf(format, args...)}
}

// parseScript parses value* up to EOF and wraps it in a Quote positioned at
// the start of the input.
func (p *Parser) parseScript() (*ast.Quote, error) {
	start := p.cur.Position
	var children []ast.Node
	for p.cur.Kind != lexer.EOF {
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		children = append(children, v)
	}
	return &ast.Quote{Position: start, Children: children}, nil
}

// parseValue parses one `value` production: array | object | quote |
// string | word-def | symbol.
func (p *Parser) parseValue() (ast.Node, error) {
	switch p.cur.Kind {
	case lexer.LBracket:
		return p.parseArray()
	case lexer.LBrace:
		return p.parseObject()
	case lexer.LParen:
		return p.parseQuote()
	case lexer.StringLit:
		n := &ast.String{Position: p.cur.Position, Value: p.cur.Literal}
		p.advance()
		return n, nil
	case lexer.Colon:
		return p.parseWordDef()
	case lexer.SymbolLit:
		n := &ast.Symbol{Position: p.cur.Position, Identifier: p.cur.Literal}
		p.advance()
		return n, nil
	case lexer.EOF:
		return nil, p.errorf(p.cur.Position, "unexpected end of file, expected a value")
	default:
		return nil, p.errorf(p.cur.Position, "unexpected token, expected a value")
	}
}

// parseArray parses '[' (value (',' value)* ','?)? ']'. The comma is
// optional but tolerated between elements, and a trailing comma is allowed
// (spec.md §4.4).
func (p *Parser) parseArray() (*ast.Array, error) {
	start := p.cur.Position
	p.advance() // consume '['

	var elems []ast.Node
	for p.cur.Kind != lexer.RBracket {
		if p.cur.Kind == lexer.EOF {
			return nil, p.errorf(start, "unterminated array literal, expected ']'")
		}
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
		if p.cur.Kind == lexer.Comma {
			p.advance()
		}
	}
	p.advance() // consume ']'
	return &ast.Array{Position: start, Elements: elems}, nil
}

// parseObject parses '{' (pair (',' pair)* ','?)? '}' where
// pair := string ':' value. Duplicate keys are resolved last-writer-wins,
// in place, preserving the first occurrence's position in the ordering
// (spec.md §3).
func (p *Parser) parseObject() (*ast.Object, error) {
	start := p.cur.Position
	p.advance() // consume '{'

	var props []ast.Property
	index := map[string]int{}
	for p.cur.Kind != lexer.RBrace {
		if p.cur.Kind == lexer.EOF {
			return nil, p.errorf(start, "unterminated object literal, expected '}'")
		}
		if p.cur.Kind != lexer.StringLit {
			return nil, p.errorf(p.cur.Position, "expected a string key in object literal")
		}
		key := p.cur.Literal
		p.advance()
		if p.cur.Kind == lexer.EOF {
			return nil, p.errorf(start, "unterminated object literal, expected '}'")
		}
		if p.cur.Kind != lexer.Colon {
			return nil, p.errorf(p.cur.Position, "expected ':' after object key")
		}
		p.advance()
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		if i, exists := index[key]; exists {
			props[i].Value = v
		} else {
			index[key] = len(props)
			props = append(props, ast.Property{Key: key, Value: v})
		}
		if p.cur.Kind == lexer.Comma {
			p.advance()
		}
	}
	p.advance() // consume '}'
	return &ast.Object{Position: start, Properties: props}, nil
}

// parseQuote parses '(' value* ')'.
func (p *Parser) parseQuote() (*ast.Quote, error) {
	start := p.cur.Position
	p.advance() // consume '('

	var children []ast.Node
	for p.cur.Kind != lexer.RParen {
		if p.cur.Kind == lexer.EOF {
			return nil, p.errorf(start, "unterminated quote literal, expected ')'")
		}
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		children = append(children, v)
	}
	p.advance() // consume ')'
	return &ast.Quote{Position: start, Children: children}, nil
}

// parseWordDef parses ':' symbol value* ';'. An empty body (`: foo ;`) is
// syntactically legal: the grammar's `value*` already permits zero
// repetitions, so no special case is needed (spec.md §9 records this as the
// chosen resolution of the "empty word bodies" open question).
func (p *Parser) parseWordDef() (*ast.Word, error) {
	start := p.cur.Position
	p.advance() // consume ':'

	if p.cur.Kind == lexer.EOF {
		return nil, p.errorf(start, "unterminated word definition, expected ';'")
	}
	if p.cur.Kind != lexer.SymbolLit {
		return nil, p.errorf(p.cur.Position, "expected a symbol naming the word being defined")
	}
	sym := &ast.Symbol{Position: p.cur.Position, Identifier: p.cur.Literal}
	p.advance()

	bodyStart := p.cur.Position
	var body []ast.Node
	for p.cur.Kind != lexer.Semicolon {
		if p.cur.Kind == lexer.EOF {
			return nil, p.errorf(start, "unterminated word definition, expected ';'")
		}
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		body = append(body, v)
	}
	p.advance() // consume ';'

	return &ast.Word{
		Position: start,
		Symbol:   sym,
		Quote:    &ast.Quote{Position: bodyStart, Children: body},
	}, nil
}
