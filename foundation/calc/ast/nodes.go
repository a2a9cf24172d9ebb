// File: nodes.go
// Title: Calc AST Node Definitions
// Description: Defines the AST node, its kinds and the program container
//              produced by the parser. Provides S-expression rendering and
//              structural validation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial AST node definitions

package ast

import (
	rwerror "github.com/msto63/rechenwerk/foundation/core/error"
)

// NodeKind classifies an AST node
type NodeKind int

const (
	NodeAdd    NodeKind = iota // lhs + rhs
	NodeSub                    // lhs - rhs
	NodeMul                    // lhs * rhs
	NodeDiv                    // lhs / rhs
	NodeEq                     // lhs == rhs
	NodeNe                     // lhs != rhs
	NodeLt                     // lhs < rhs
	NodeLe                     // lhs <= rhs
	NodeAssign                 // lhs = rhs
	NodeReturn                 // return lhs
	NodeNum                    // integer literal
	NodeVar                    // local variable reference
)

var nodeKindNames = [...]string{
	NodeAdd:    "ADD",
	NodeSub:    "SUB",
	NodeMul:    "MUL",
	NodeDiv:    "DIV",
	NodeEq:     "EQ",
	NodeNe:     "NE",
	NodeLt:     "LT",
	NodeLe:     "LE",
	NodeAssign: "ASSIGN",
	NodeReturn: "RETURN",
	NodeNum:    "NUM",
	NodeVar:    "VAR",
}

// String returns the upper-case name of the kind
func (k NodeKind) String() string {
	if k < 0 || int(k) >= len(nodeKindNames) {
		return "UNKNOWN"
	}
	return nodeKindNames[k]
}

// Symbol returns the operator spelling used in S-expressions
func (k NodeKind) Symbol() string {
	switch k {
	case NodeAdd:
		return "+"
	case NodeSub:
		return "-"
	case NodeMul:
		return "*"
	case NodeDiv:
		return "/"
	case NodeEq:
		return "=="
	case NodeNe:
		return "!="
	case NodeLt:
		return "<"
	case NodeLe:
		return "<="
	case NodeAssign:
		return "="
	case NodeReturn:
		return "return"
	default:
		return ""
	}
}

// IsBinary reports whether nodes of this kind own both LHS and RHS
func (k NodeKind) IsBinary() bool {
	return k <= NodeAssign
}

// IsLeaf reports whether nodes of this kind own no children
func (k NodeKind) IsLeaf() bool {
	return k == NodeNum || k == NodeVar
}

// Position represents a position in the source code
type Position struct {
	Offset int // Byte offset (0-based)
	Line   int // Line number (1-based)
	Column int // Column number (1-based)
}

// Node is a single AST node. Binary kinds own LHS and RHS, NodeReturn owns
// LHS only, NodeNum and NodeVar own nothing.
type Node struct {
	Kind NodeKind
	LHS  *Node
	RHS  *Node
	Val  int64  // NodeNum only
	Var  *Local // NodeVar only
	Pos  Position
}

// NewBinary creates a binary node
func NewBinary(kind NodeKind, lhs, rhs *Node, pos Position) *Node {
	return &Node{Kind: kind, LHS: lhs, RHS: rhs, Pos: pos}
}

// NewReturn creates a return node
func NewReturn(expr *Node, pos Position) *Node {
	return &Node{Kind: NodeReturn, LHS: expr, Pos: pos}
}

// NewNum creates an integer literal node
func NewNum(val int64, pos Position) *Node {
	return &Node{Kind: NodeNum, Val: val, Pos: pos}
}

// NewVar creates a variable reference node
func NewVar(local *Local, pos Position) *Node {
	return &Node{Kind: NodeVar, Var: local, Pos: pos}
}

// Accept implements the visitor pattern
func (n *Node) Accept(visitor Visitor) interface{} {
	switch n.Kind {
	case NodeNum:
		return visitor.VisitNum(n)
	case NodeVar:
		return visitor.VisitVar(n)
	case NodeReturn:
		return visitor.VisitReturn(n)
	case NodeAssign:
		return visitor.VisitAssign(n)
	default:
		return visitor.VisitBinary(n)
	}
}

// String renders the subtree as an S-expression, e.g. (+ 1 (* 2 3))
func (n *Node) String() string {
	sv := NewStringVisitor()
	n.Accept(sv)
	return sv.String()
}

// Validate checks the child arity of the whole subtree
func (n *Node) Validate() error {
	switch {
	case n.Kind.IsBinary():
		if n.LHS == nil || n.RHS == nil {
			return invalidNode(n, "binary node requires both operands")
		}
	case n.Kind == NodeReturn:
		if n.LHS == nil || n.RHS != nil {
			return invalidNode(n, "return node requires exactly one operand")
		}
	case n.Kind == NodeNum:
		if n.LHS != nil || n.RHS != nil {
			return invalidNode(n, "number node cannot have children")
		}
	case n.Kind == NodeVar:
		if n.LHS != nil || n.RHS != nil {
			return invalidNode(n, "variable node cannot have children")
		}
		if n.Var == nil {
			return invalidNode(n, "variable node requires a local")
		}
	default:
		return invalidNode(n, "unknown node kind")
	}

	if n.LHS != nil {
		if err := n.LHS.Validate(); err != nil {
			return err
		}
	}
	if n.RHS != nil {
		return n.RHS.Validate()
	}
	return nil
}

func invalidNode(n *Node, msg string) error {
	return rwerror.New(msg).
		WithCode(rwerror.CodeInternal).
		WithOperation("ast.Validate").
		WithDetail("kind", n.Kind.String()).
		WithDetail("offset", n.Pos.Offset)
}

// Program is the parser output: statement roots in source order plus the
// locals referenced by them
type Program struct {
	Stmts  []*Node
	Locals *Locals
}

// NewProgram creates an empty program with an empty local table
func NewProgram() *Program {
	return &Program{Locals: NewLocals()}
}

// Validate validates every statement
func (p *Program) Validate() error {
	for _, stmt := range p.Stmts {
		if err := stmt.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// String renders one S-expression per statement, separated by newlines
func (p *Program) String() string {
	sv := NewStringVisitor()
	for i, stmt := range p.Stmts {
		if i > 0 {
			sv.buffer.WriteByte('\n')
		}
		stmt.Accept(sv)
	}
	return sv.String()
}
