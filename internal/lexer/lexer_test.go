package lexer

import "testing"

func TestNextTokenStructural(t *testing.T) {
	input := `( [ { : ; , } ] )`

	tests := []struct {
		expectedKind Kind
	}{
		{LParen},
		{LBracket},
		{LBrace},
		{Colon},
		{Semicolon},
		{Comma},
		{RBrace},
		{RBracket},
		{RParen},
		{EOF},
	}

	l := New("<test>", input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Kind != tt.expectedKind {
			t.Fatalf("tests[%d] - kind wrong. expected=%v, got=%v", i, tt.expectedKind, tok.Kind)
		}
	}
}

func TestNextTokenSymbolsAndStrings(t *testing.T) {
	input := `dup "hello world" swap+drop`

	tests := []struct {
		expectedKind    Kind
		expectedLiteral string
	}{
		{SymbolLit, "dup"},
		{StringLit, "hello world"},
		{SymbolLit, "swap+drop"},
		{EOF, ""},
	}

	l := New("<test>", input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Kind != tt.expectedKind {
			t.Fatalf("tests[%d] - kind wrong. expected=%v, got=%v (literal=%q)", i, tt.expectedKind, tok.Kind, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestNextTokenStringEscapes(t *testing.T) {
	input := `"a\tb\ncA\""`
	l := New("<test>", input)
	tok := l.NextToken()
	if tok.Kind != StringLit {
		t.Fatalf("kind = %v, want StringLit", tok.Kind)
	}
	want := "a\tb\ncA\""
	if tok.Literal != want {
		t.Fatalf("literal = %q, want %q", tok.Literal, want)
	}
}

func TestNextTokenUnterminatedStringRecordsError(t *testing.T) {
	l := New("<test>", `"unterminated`)
	l.NextToken()
	errs := l.Errors()
	if len(errs) != 1 {
		t.Fatalf("len(Errors()) = %d, want 1", len(errs))
	}
	if errs[0].Message != "unterminated string literal" {
		t.Fatalf("error message = %q", errs[0].Message)
	}
}

func TestCommentFormsBothAccepted(t *testing.T) {
	input := "1 # a hash comment\n2 // a slash comment\n3"
	l := New("<test>", input)

	var got []string
	for {
		tok := l.NextToken()
		if tok.Kind == EOF {
			break
		}
		got = append(got, tok.Literal)
	}
	want := []string{"1", "2", "3"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestShebangLineStripped(t *testing.T) {
	input := "#!/usr/bin/env plorth\n1 2 +"
	l := New("<test>", input)
	tok := l.NextToken()
	if tok.Kind != SymbolLit || tok.Literal != "1" {
		t.Fatalf("first token = %+v, want SymbolLit \"1\" (shebang line should be stripped, not lexed as a comment)", tok)
	}
}

func TestBOMStripped(t *testing.T) {
	input := "\xEF\xBB\xBF" + "dup"
	l := New("<test>", input)
	tok := l.NextToken()
	if tok.Kind != SymbolLit || tok.Literal != "dup" {
		t.Fatalf("token = %+v, want SymbolLit \"dup\"", tok)
	}
}

func TestColumnTracksRunesNotBytes(t *testing.T) {
	// "café" has a multi-byte 'é'; the symbol after it should start at
	// column 6 (rune count), not the byte offset.
	l := New("<test>", "café x")
	first := l.NextToken()
	second := l.NextToken()
	if first.Literal != "café" {
		t.Fatalf("first literal = %q", first.Literal)
	}
	if second.Position.Column != 6 {
		t.Fatalf("second token column = %d, want 6", second.Position.Column)
	}
}

func TestIllegalCharacterRecordsError(t *testing.T) {
	l := New("<test>", "\x01")
	tok := l.NextToken()
	if tok.Kind != Illegal {
		t.Fatalf("kind = %v, want Illegal", tok.Kind)
	}
	if len(l.Errors()) != 1 {
		t.Fatalf("len(Errors()) = %d, want 1", len(l.Errors()))
	}
}
