// File: lexer_test.go
// Title: Calc Tokenizer Unit Tests
// Description: Tests for token classification, rule order, the EOF sentinel,
//              tokenize errors and the token cursor.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial tokenizer test suite

package parser

import (
	"errors"
	"reflect"
	"testing"
)

type tokWant struct {
	kind TokenKind
	text string
	val  int64
}

func checkTokens(t *testing.T, src string, tokens []Token, want []tokWant) {
	t.Helper()
	if len(tokens) != len(want) {
		t.Fatalf("Expected %d tokens, got %d: %v", len(want), len(tokens), tokens)
	}
	for i, w := range want {
		got := tokens[i]
		if got.Kind != w.kind {
			t.Errorf("token %d: Expected kind %s, got %s", i, w.kind, got.Kind)
		}
		if text := got.Text(src); text != w.text {
			t.Errorf("token %d: Expected text %q, got %q", i, w.text, text)
		}
		if w.kind == TokenNum && got.Val != w.val {
			t.Errorf("token %d: Expected value %d, got %d", i, w.val, got.Val)
		}
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []tokWant
	}{
		{
			name:  "arithmetic",
			input: "1+2*3;",
			want: []tokWant{
				{TokenNum, "1", 1},
				{TokenReserved, "+", 0},
				{TokenNum, "2", 2},
				{TokenReserved, "*", 0},
				{TokenNum, "3", 3},
				{TokenReserved, ";", 0},
				{TokenEOF, "", 0},
			},
		},
		{
			name:  "whitespace skipped",
			input: " \t12 \n/ 4 ",
			want: []tokWant{
				{TokenNum, "12", 12},
				{TokenReserved, "/", 0},
				{TokenNum, "4", 4},
				{TokenEOF, "", 0},
			},
		},
		{
			name:  "two char operators win",
			input: "a<=b>=c==d!=e<f>g",
			want: []tokWant{
				{TokenIdent, "a", 0}, {TokenReserved, "<=", 0},
				{TokenIdent, "b", 0}, {TokenReserved, ">=", 0},
				{TokenIdent, "c", 0}, {TokenReserved, "==", 0},
				{TokenIdent, "d", 0}, {TokenReserved, "!=", 0},
				{TokenIdent, "e", 0}, {TokenReserved, "<", 0},
				{TokenIdent, "f", 0}, {TokenReserved, ">", 0},
				{TokenIdent, "g", 0},
				{TokenEOF, "", 0},
			},
		},
		{
			name:  "return keyword",
			input: "return x;",
			want: []tokWant{
				{TokenReturn, "return", 0},
				{TokenIdent, "x", 0},
				{TokenReserved, ";", 0},
				{TokenEOF, "", 0},
			},
		},
		{
			name:  "return followed by operator",
			input: "return(1);",
			want: []tokWant{
				{TokenReturn, "return", 0},
				{TokenReserved, "(", 0},
				{TokenNum, "1", 1},
				{TokenReserved, ")", 0},
				{TokenReserved, ";", 0},
				{TokenEOF, "", 0},
			},
		},
		{
			name:  "return prefix is identifiers",
			input: "returnx",
			want: []tokWant{
				{TokenIdent, "r", 0}, {TokenIdent, "e", 0}, {TokenIdent, "t", 0},
				{TokenIdent, "u", 0}, {TokenIdent, "r", 0}, {TokenIdent, "n", 0},
				{TokenIdent, "x", 0},
				{TokenEOF, "", 0},
			},
		},
		{
			name:  "assignment",
			input: "a=10;",
			want: []tokWant{
				{TokenIdent, "a", 0},
				{TokenReserved, "=", 0},
				{TokenNum, "10", 10},
				{TokenReserved, ";", 0},
				{TokenEOF, "", 0},
			},
		},
		{
			name:  "max int64",
			input: "9223372036854775807",
			want: []tokWant{
				{TokenNum, "9223372036854775807", 9223372036854775807},
				{TokenEOF, "", 0},
			},
		},
		{
			name:  "empty input",
			input: "",
			want:  []tokWant{{TokenEOF, "", 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			if err != nil {
				t.Fatalf("Tokenize(%q) error = %v", tt.input, err)
			}
			checkTokens(t, tt.input, tokens, tt.want)

			eof := tokens[len(tokens)-1]
			if eof.Offset != len(tt.input) || eof.Len != 0 {
				t.Errorf("Expected EOF at %d with length 0, got %d/%d", len(tt.input), eof.Offset, eof.Len)
			}
		})
	}
}

func TestTokenize_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		offset int
		line   int
		column int
	}{
		{"uppercase letter", "1+A;", 2, 1, 3},
		{"unknown symbol", "a % b;", 2, 1, 3},
		{"bang alone", "!a;", 0, 1, 1},
		{"non ascii", "1+ä;", 2, 1, 3},
		{"second line", "1;\n  2 # 3;", 7, 2, 5},
		{"overflow", "1+9223372036854775808;", 2, 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			if err == nil {
				t.Fatalf("Expected error, got tokens %v", tokens)
			}
			if tokens != nil {
				t.Errorf("Expected no partial tokens, got %v", tokens)
			}

			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("Expected *SyntaxError, got %T", err)
			}
			if se.Kind != ErrTokenize {
				t.Errorf("Expected kind %s, got %s", ErrTokenize, se.Kind)
			}
			if se.Message != "invalid token" {
				t.Errorf("Expected message 'invalid token', got %q", se.Message)
			}
			if se.Offset != tt.offset || se.Line != tt.line || se.Column != tt.column {
				t.Errorf("Expected %d (%d:%d), got %d (%d:%d)",
					tt.offset, tt.line, tt.column, se.Offset, se.Line, se.Column)
			}
		})
	}
}

func TestTokenize_Deterministic(t *testing.T) {
	inputs := []string{"1+2*3;", "a=1; return a>=2;", "(((-4)));", ""}

	for _, input := range inputs {
		first, err1 := Tokenize(input)
		second, err2 := Tokenize(input)
		if err1 != nil || err2 != nil {
			t.Fatalf("Tokenize(%q) errors: %v, %v", input, err1, err2)
		}
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Tokenize(%q) is not deterministic", input)
		}
	}
}

func TestRules_Order(t *testing.T) {
	want := []string{"whitespace", "return", "ident", "op2", "op1", "number"}
	if got := Rules(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected rules %v, got %v", want, got)
	}
}

func TestTokenKind_String(t *testing.T) {
	tests := map[TokenKind]string{
		TokenReserved: "RESERVED",
		TokenIdent:    "IDENT",
		TokenNum:      "NUM",
		TokenReturn:   "RETURN",
		TokenEOF:      "EOF",
		TokenKind(9):  "UNKNOWN",
	}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Errorf("Expected %s, got %s", want, got)
		}
	}
}

func TestToken_Describe(t *testing.T) {
	src := "x=42;"
	tokens, err := Tokenize(src)
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}

	want := []string{"IDENT x", "RESERVED =", "NUM 42 [42]", "RESERVED ;", "EOF"}
	for i, tok := range tokens {
		if got := tok.Describe(src); got != want[i] {
			t.Errorf("token %d: Expected %q, got %q", i, want[i], got)
		}
	}
}

func TestCursor(t *testing.T) {
	tokens, err := Tokenize("1+2*3;")
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}

	c := NewCursor(tokens)
	last := c.Pos()
	steps := 0
	for !c.AtEOF() {
		c.Advance()
		steps++
		if c.Pos() <= last {
			t.Fatalf("cursor moved from %d to %d", last, c.Pos())
		}
		last = c.Pos()
	}

	if steps != len(tokens)-1 {
		t.Errorf("Expected %d steps, got %d", len(tokens)-1, steps)
	}

	c.Advance()
	c.Advance()
	if c.Pos() != last || c.Peek().Kind != TokenEOF {
		t.Errorf("Advance at EOF must be a no-op, position %d -> %d", last, c.Pos())
	}
}

func TestNewCursor_AppendsEOF(t *testing.T) {
	c := NewCursor([]Token{{Kind: TokenNum, Offset: 0, Len: 2, Val: 12}})
	c.Advance()
	if !c.AtEOF() {
		t.Fatal("Expected EOF after the only token")
	}
	if c.Peek().Offset != 2 {
		t.Errorf("Expected EOF offset 2, got %d", c.Peek().Offset)
	}

	empty := NewCursor(nil)
	if !empty.AtEOF() {
		t.Error("Expected empty cursor to be at EOF")
	}
}
