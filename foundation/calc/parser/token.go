// File: token.go
// Title: Calc Tokens and Token Cursor
// Description: Defines the token type produced by the tokenizer and the
//              forward-only cursor the parser reads tokens through.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package parser

import "fmt"

// TokenKind represents the type of a token
type TokenKind int

const (
	TokenReserved TokenKind = iota // operators and punctuators
	TokenIdent                     // single lowercase letter
	TokenNum                       // decimal integer literal
	TokenReturn                    // the return keyword
	TokenEOF                       // end of input sentinel
)

// String returns the string representation of the token kind
func (k TokenKind) String() string {
	switch k {
	case TokenReserved:
		return "RESERVED"
	case TokenIdent:
		return "IDENT"
	case TokenNum:
		return "NUM"
	case TokenReturn:
		return "RETURN"
	case TokenEOF:
		return "EOF"
	default:
		return "UNKNOWN"
	}
}

// Token is a classified span of the source. Tokens are values and are
// never changed after tokenizing.
type Token struct {
	Kind   TokenKind
	Offset int   // byte offset into the source
	Len    int   // byte length of the span
	Val    int64 // value of TokenNum
}

// Text returns the source text covered by the token
func (t Token) Text(src string) string {
	return src[t.Offset : t.Offset+t.Len]
}

// Describe renders the token for listings, e.g. "NUM 42 [42]"
func (t Token) Describe(src string) string {
	switch t.Kind {
	case TokenEOF:
		return t.Kind.String()
	case TokenNum:
		return fmt.Sprintf("%s %s [%d]", t.Kind, t.Text(src), t.Val)
	default:
		return fmt.Sprintf("%s %s", t.Kind, t.Text(src))
	}
}

// Cursor walks a token sequence front to back. The position never moves
// backwards and never passes the EOF sentinel.
type Cursor struct {
	tokens []Token
	pos    int
}

// NewCursor creates a cursor positioned on the first token. A sequence
// without a trailing EOF gets one appended.
func NewCursor(tokens []Token) *Cursor {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != TokenEOF {
		end := 0
		if len(tokens) > 0 {
			last := tokens[len(tokens)-1]
			end = last.Offset + last.Len
		}
		tokens = append(tokens[:len(tokens):len(tokens)], Token{Kind: TokenEOF, Offset: end})
	}
	return &Cursor{tokens: tokens}
}

// Peek returns the current token
func (c *Cursor) Peek() Token {
	return c.tokens[c.pos]
}

// Advance moves to the next token. At EOF it does nothing.
func (c *Cursor) Advance() {
	if c.tokens[c.pos].Kind != TokenEOF {
		c.pos++
	}
}

// AtEOF reports whether the current token is the EOF sentinel
func (c *Cursor) AtEOF() bool {
	return c.tokens[c.pos].Kind == TokenEOF
}

// Pos returns the index of the current token
func (c *Cursor) Pos() int {
	return c.pos
}
