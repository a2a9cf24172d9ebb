// File: lexer.go
// Title: Calc Tokenizer
// Description: Converts source text into a token sequence in a single forward
//              scan driven by an ordered rule table.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial rule-table tokenizer

package parser

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// rule matches a token class at a source offset. match returns the number of
// bytes consumed, 0 means no match.
type rule struct {
	name  string
	kind  TokenKind
	skip  bool
	match func(src string, i int) int
}

var twoCharOps = []string{"==", "!=", "<=", ">="}

const oneCharOps = "+-*/()<>;="

// rules is evaluated in order, the first match wins
var rules = []rule{
	{name: "whitespace", skip: true, match: matchSpace},
	{name: "return", kind: TokenReturn, match: matchReturn},
	{name: "ident", kind: TokenIdent, match: matchIdent},
	{name: "op2", kind: TokenReserved, match: matchOp2},
	{name: "op1", kind: TokenReserved, match: matchOp1},
	{name: "number", kind: TokenNum, match: matchDigits},
}

// Rules returns the names of the tokenizer rules in evaluation order
func Rules() []string {
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.name
	}
	return names
}

func matchSpace(src string, i int) int {
	b := src[i]
	if b < utf8.RuneSelf && unicode.IsSpace(rune(b)) {
		return 1
	}
	return 0
}

func isAlnum(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') || ('0' <= b && b <= '9') || b == '_'
}

func matchReturn(src string, i int) int {
	const kw = "return"
	if !strings.HasPrefix(src[i:], kw) {
		return 0
	}
	if end := i + len(kw); end < len(src) && isAlnum(src[end]) {
		return 0
	}
	return len(kw)
}

func matchIdent(src string, i int) int {
	if b := src[i]; 'a' <= b && b <= 'z' {
		return 1
	}
	return 0
}

func matchOp2(src string, i int) int {
	for _, op := range twoCharOps {
		if strings.HasPrefix(src[i:], op) {
			return 2
		}
	}
	return 0
}

func matchOp1(src string, i int) int {
	if strings.IndexByte(oneCharOps, src[i]) >= 0 {
		return 1
	}
	return 0
}

func matchDigits(src string, i int) int {
	n := 0
	for i+n < len(src) && '0' <= src[i+n] && src[i+n] <= '9' {
		n++
	}
	return n
}

// Tokenize converts src into tokens terminated by one EOF token. On failure
// it returns a *SyntaxError of kind ErrTokenize and no tokens.
func Tokenize(src string) ([]Token, error) {
	tokens := make([]Token, 0, len(src)/2+1)

	for i := 0; i < len(src); {
		matched := false

		for _, r := range rules {
			n := r.match(src, i)
			if n == 0 {
				continue
			}
			matched = true

			if !r.skip {
				tok := Token{Kind: r.kind, Offset: i, Len: n}
				if r.kind == TokenNum {
					val, err := strconv.ParseInt(src[i:i+n], 10, 64)
					if err != nil {
						return nil, newSyntaxError(ErrTokenize, src, i, "invalid token")
					}
					tok.Val = val
				}
				tokens = append(tokens, tok)
			}
			i += n
			break
		}

		if !matched {
			return nil, newSyntaxError(ErrTokenize, src, i, "invalid token")
		}
	}

	return append(tokens, Token{Kind: TokenEOF, Offset: len(src)}), nil
}
