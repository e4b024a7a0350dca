package parser

import (
	"testing"

	"github.com/plorthlang/plorth/internal/ast"
)

func TestParseSimpleScript(t *testing.T) {
	q, err := Parse("<test>", `1 2 +`)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(q.Children) != 3 {
		t.Fatalf("len(Children) = %d, want 3", len(q.Children))
	}
	for i, want := range []string{"1", "2", "+"} {
		sym, ok := q.Children[i].(*ast.Symbol)
		if !ok {
			t.Fatalf("children[%d] is %T, want *ast.Symbol", i, q.Children[i])
		}
		if sym.Identifier != want {
			t.Fatalf("children[%d].Identifier = %q, want %q", i, sym.Identifier, want)
		}
	}
}

func TestParseArrayWithTrailingComma(t *testing.T) {
	q, err := Parse("<test>", `[ "a", "b", ]`)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	arr, ok := q.Children[0].(*ast.Array)
	if !ok {
		t.Fatalf("children[0] is %T, want *ast.Array", q.Children[0])
	}
	if len(arr.Elements) != 2 {
		t.Fatalf("len(Elements) = %d, want 2", len(arr.Elements))
	}
}

func TestParseObjectDuplicateKeyLastWriterWins(t *testing.T) {
	q, err := Parse("<test>", `{ "a": 1, "b": 2, "a": 3 }`)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	obj, ok := q.Children[0].(*ast.Object)
	if !ok {
		t.Fatalf("children[0] is %T, want *ast.Object", q.Children[0])
	}
	if len(obj.Properties) != 2 {
		t.Fatalf("len(Properties) = %d, want 2 (duplicate key overwrites in place)", len(obj.Properties))
	}
	val, ok := obj.Properties[0].Value.(*ast.Symbol)
	if !ok || val.Identifier != "3" {
		t.Fatalf("Properties[0].Value = %v, want the last-written value 3", obj.Properties[0].Value)
	}
}

func TestParseQuoteNested(t *testing.T) {
	q, err := Parse("<test>", `( 1 ( 2 ) )`)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	outer, ok := q.Children[0].(*ast.Quote)
	if !ok || len(outer.Children) != 2 {
		t.Fatalf("outer quote = %v", q.Children[0])
	}
	if _, ok := outer.Children[1].(*ast.Quote); !ok {
		t.Fatalf("outer.Children[1] = %T, want *ast.Quote", outer.Children[1])
	}
}

func TestParseWordDefEmptyBody(t *testing.T) {
	q, err := Parse("<test>", `: noop ;`)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	w, ok := q.Children[0].(*ast.Word)
	if !ok {
		t.Fatalf("children[0] is %T, want *ast.Word", q.Children[0])
	}
	if w.Symbol.Identifier != "noop" {
		t.Fatalf("Symbol.Identifier = %q, want noop", w.Symbol.Identifier)
	}
	if len(w.Quote.Children) != 0 {
		t.Fatalf("len(Quote.Children) = %d, want 0 (empty word bodies are legal)", len(w.Quote.Children))
	}
}

func TestParseWordDefWithBody(t *testing.T) {
	q, err := Parse("<test>", `: square dup * ;`)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	w := q.Children[0].(*ast.Word)
	if len(w.Quote.Children) != 2 {
		t.Fatalf("len(Quote.Children) = %d, want 2", len(w.Quote.Children))
	}
}

func TestParseUnterminatedConstructsStopAtFirstError(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"array", `[ 1, 2`},
		{"object", `{ "a": 1`},
		{"quote", `( 1 2`},
		{"word", `: foo 1 2`},
		{"string", `"unterminated`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("<test>", tt.src)
			if err == nil {
				t.Fatalf("Parse(%q) returned no error, want an unterminated-construct error", tt.src)
			}
		})
	}
}

func TestParseEmptyScript(t *testing.T) {
	q, err := Parse("<test>", ``)
	if err != nil {
		t.Fatalf("Parse(\"\") returned error: %v", err)
	}
	if len(q.Children) != 0 {
		t.Fatalf("len(Children) = %d, want 0", len(q.Children))
	}
}

func TestParseStopsAtFirstError(t *testing.T) {
	_, err := Parse("<test>", `1 ] 2`)
	if err == nil {
		t.Fatalf("Parse(\"1 ] 2\") returned no error")
	}
	perr, ok := err.(*Error)
	if !ok {
		t.Fatalf("error is %T, want *Error", err)
	}
	if perr.Position.Column != 3 {
		t.Fatalf("error column = %d, want 3 (the stray ']')", perr.Position.Column)
	}
}
