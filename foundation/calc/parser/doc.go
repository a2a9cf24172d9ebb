// File: doc.go
// Title: Calc Parser Package Documentation
// Description: Package parser tokenizes and parses calc programs into ASTs.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial parser package

/*
Package parser turns calc source text into an AST.

Tokenize scans the source once and classifies every lexeme as a reserved
symbol, a single-letter identifier, an integer, or the return keyword. The
sequence always ends with an EOF token.

The parser reads the tokens through a forward-only Cursor and builds one tree
per statement:

	program    = stmt*
	stmt       = "return" expr ";" | expr ";"
	expr       = assign
	assign     = equality ("=" assign)?
	equality   = relational ("==" relational | "!=" relational)*
	relational = add ("<" add | "<=" add | ">" add | ">=" add)*
	add        = mul ("+" mul | "-" mul)*
	mul        = unary ("*" unary | "/" unary)*
	unary      = ("+" | "-")? primary
	primary    = "(" expr ")" | ident | num

Identifiers are declared in the program's Locals on first use.

The first error stops parsing. Errors are *SyntaxError values carrying the
offending offset, line and column; Diagnostic renders them as

	1+;
	  ^ expected a number
*/
package parser
