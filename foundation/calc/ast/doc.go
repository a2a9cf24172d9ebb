// File: doc.go
// Title: Calc AST Package Documentation
// Description: Package ast defines the abstract syntax tree of the calc
//              language: nodes, programs, local variables and serialization.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial AST package

/*
Package ast defines the abstract syntax tree produced by the calc parser.

A Program holds the statement roots in source order and the Locals table.
Every Node has a kind and, depending on the kind, a left and right operand,
an integer value or a local variable reference:

	a = 1 + 2 * 3;   =>   (= a (+ 1 (* 2 3)))
	return a > 2;    =>   (return (< 2 a))

Comparisons with > and >= are stored as < and <= with swapped operands,
unary minus is stored as subtraction from zero.

Locals are append-only. The n-th declared variable gets the slot offset
n*SlotSize; the *Local pointer is shared by all references to one name.
*/
package ast
