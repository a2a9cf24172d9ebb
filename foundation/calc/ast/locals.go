// File: locals.go
// Title: Local Variable Table
// Description: Append-only table of local variables. Each variable keeps a
//              stable slot offset that a later evaluation stage uses as its
//              identity.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package ast

// SlotSize is the distance between the offsets of consecutive locals
const SlotSize = 8

// Local is a named variable slot
type Local struct {
	Name   string
	Len    int
	Offset int
}

// Locals is the append-only variable list of one program
type Locals struct {
	vars []*Local
}

// NewLocals creates an empty table
func NewLocals() *Locals {
	return &Locals{}
}

// Find looks up a variable by name. A missing name is reported as false.
func (l *Locals) Find(name string) (*Local, bool) {
	for _, v := range l.vars {
		if v.Len == len(name) && v.Name == name {
			return v, true
		}
	}
	return nil, false
}

// Declare appends a new variable. The n-th variable gets offset n*SlotSize.
func (l *Locals) Declare(name string) *Local {
	v := &Local{
		Name:   name,
		Len:    len(name),
		Offset: (len(l.vars) + 1) * SlotSize,
	}
	l.vars = append(l.vars, v)
	return v
}

// Resolve returns the existing variable or declares it
func (l *Locals) Resolve(name string) *Local {
	if v, ok := l.Find(name); ok {
		return v
	}
	return l.Declare(name)
}

// All returns the variables in declaration order
func (l *Locals) All() []*Local {
	out := make([]*Local, len(l.vars))
	copy(out, l.vars)
	return out
}

// Len returns the number of declared variables
func (l *Locals) Len() int {
	return len(l.vars)
}
