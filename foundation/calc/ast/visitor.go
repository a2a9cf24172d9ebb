// File: visitor.go
// Title: Calc AST Visitor Pattern Implementation
// Description: Implements the visitor pattern for traversing AST nodes.
//              Provides a base visitor, the S-expression printer and a
//              node counter.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial visitor pattern implementation

package ast

import (
	"strconv"
	"strings"
)

// Visitor interface for traversing AST nodes using the visitor pattern
type Visitor interface {
	VisitBinary(n *Node) interface{}
	VisitAssign(n *Node) interface{}
	VisitReturn(n *Node) interface{}
	VisitNum(n *Node) interface{}
	VisitVar(n *Node) interface{}
}

// BaseVisitor walks every child and does nothing else.
// Embed it and set Self so that overridden methods are reached on recursion.
type BaseVisitor struct {
	Self Visitor
}

func (bv *BaseVisitor) self() Visitor {
	if bv.Self != nil {
		return bv.Self
	}
	return bv
}

func (bv *BaseVisitor) VisitBinary(n *Node) interface{} {
	n.LHS.Accept(bv.self())
	n.RHS.Accept(bv.self())
	return nil
}

func (bv *BaseVisitor) VisitAssign(n *Node) interface{} {
	return bv.VisitBinary(n)
}

func (bv *BaseVisitor) VisitReturn(n *Node) interface{} {
	return n.LHS.Accept(bv.self())
}

func (bv *BaseVisitor) VisitNum(n *Node) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitVar(n *Node) interface{} {
	return nil // Terminal node
}

// StringVisitor renders nodes as S-expressions
type StringVisitor struct {
	buffer strings.Builder
}

// NewStringVisitor creates a new string visitor
func NewStringVisitor() *StringVisitor {
	return &StringVisitor{}
}

// String returns the built representation
func (sv *StringVisitor) String() string {
	return sv.buffer.String()
}

// Reset clears the internal buffer
func (sv *StringVisitor) Reset() {
	sv.buffer.Reset()
}

func (sv *StringVisitor) VisitBinary(n *Node) interface{} {
	sv.buffer.WriteString("(")
	sv.buffer.WriteString(n.Kind.Symbol())
	sv.buffer.WriteString(" ")
	n.LHS.Accept(sv)
	sv.buffer.WriteString(" ")
	n.RHS.Accept(sv)
	sv.buffer.WriteString(")")
	return nil
}

func (sv *StringVisitor) VisitAssign(n *Node) interface{} {
	return sv.VisitBinary(n)
}

func (sv *StringVisitor) VisitReturn(n *Node) interface{} {
	sv.buffer.WriteString("(return ")
	n.LHS.Accept(sv)
	sv.buffer.WriteString(")")
	return nil
}

func (sv *StringVisitor) VisitNum(n *Node) interface{} {
	sv.buffer.WriteString(strconv.FormatInt(n.Val, 10))
	return nil
}

func (sv *StringVisitor) VisitVar(n *Node) interface{} {
	sv.buffer.WriteString(n.Var.Name)
	return nil
}

// CountVisitor counts nodes per kind
type CountVisitor struct {
	BaseVisitor
	Counts map[NodeKind]int
	Total  int
}

// NewCountVisitor creates a new counting visitor
func NewCountVisitor() *CountVisitor {
	cv := &CountVisitor{Counts: make(map[NodeKind]int)}
	cv.Self = cv
	return cv
}

func (cv *CountVisitor) add(n *Node) {
	cv.Counts[n.Kind]++
	cv.Total++
}

func (cv *CountVisitor) VisitBinary(n *Node) interface{} {
	cv.add(n)
	return cv.BaseVisitor.VisitBinary(n)
}

func (cv *CountVisitor) VisitAssign(n *Node) interface{} {
	cv.add(n)
	return cv.BaseVisitor.VisitBinary(n)
}

func (cv *CountVisitor) VisitReturn(n *Node) interface{} {
	cv.add(n)
	return cv.BaseVisitor.VisitReturn(n)
}

func (cv *CountVisitor) VisitNum(n *Node) interface{} {
	cv.add(n)
	return nil
}

func (cv *CountVisitor) VisitVar(n *Node) interface{} {
	cv.add(n)
	return nil
}

// CountNodes returns the number of nodes in all statements of p
func CountNodes(p *Program) int {
	cv := NewCountVisitor()
	for _, stmt := range p.Stmts {
		stmt.Accept(cv)
	}
	return cv.Total
}
