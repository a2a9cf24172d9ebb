// File: errors.go
// Title: Calc Syntax Errors and Diagnostics
// Description: Defines the positioned syntax error returned by the tokenizer
//              and parser, and renders it as a caret diagnostic.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package parser

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	rwerror "github.com/msto63/rechenwerk/foundation/core/error"
)

// ErrorKind classifies syntax errors
type ErrorKind int

const (
	ErrTokenize           ErrorKind = iota // unrecognized input
	ErrExpectedSymbol                      // a required operator is missing
	ErrExpectedNumber                      // no operand where one is required
	ErrExpectedTerminator                  // statement not closed with ';'
)

// String returns the string representation of the kind
func (k ErrorKind) String() string {
	switch k {
	case ErrTokenize:
		return "tokenize"
	case ErrExpectedSymbol:
		return "expected symbol"
	case ErrExpectedNumber:
		return "expected number"
	case ErrExpectedTerminator:
		return "expected terminator"
	default:
		return "unknown"
	}
}

// Code maps the kind to its structured error code
func (k ErrorKind) Code() rwerror.Code {
	switch k {
	case ErrTokenize:
		return rwerror.CodeSyntaxTokenize
	case ErrExpectedSymbol:
		return rwerror.CodeSyntaxExpectedSymbol
	case ErrExpectedNumber:
		return rwerror.CodeSyntaxExpectedNumber
	case ErrExpectedTerminator:
		return rwerror.CodeSyntaxExpectedTerminator
	default:
		return rwerror.CodeUnknown
	}
}

// SyntaxError is a fatal error at a source position
type SyntaxError struct {
	Kind    ErrorKind
	Offset  int // byte offset (0-based)
	Line    int // 1-based
	Column  int // 1-based, in bytes
	Message string
	Source  string
}

func newSyntaxError(kind ErrorKind, src string, offset int, msg string) *SyntaxError {
	line, col := newLineIndex(src).position(offset)
	return &SyntaxError{
		Kind:    kind,
		Offset:  offset,
		Line:    line,
		Column:  col,
		Message: msg,
		Source:  src,
	}
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

// SourceLine returns the source line containing the error offset
func (e *SyntaxError) SourceLine() string {
	start := strings.LastIndexByte(e.Source[:e.Offset], '\n') + 1
	end := strings.IndexByte(e.Source[e.Offset:], '\n')
	if end < 0 {
		return e.Source[start:]
	}
	return e.Source[start : e.Offset+end]
}

func (e *SyntaxError) caret() string {
	return strings.Repeat(" ", e.Column-1) + "^ " + e.Message
}

// Diagnostic returns the offending source line and a caret line under the
// error column followed by the message
func (e *SyntaxError) Diagnostic() string {
	return e.SourceLine() + "\n" + e.caret()
}

var caretStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)

// Render writes the diagnostic to w. With color the caret line is styled.
func (e *SyntaxError) Render(w io.Writer, color bool) error {
	caret := e.caret()
	if color {
		caret = caretStyle.Render(caret)
	}
	_, err := fmt.Fprintf(w, "%s\n%s\n", e.SourceLine(), caret)
	return err
}

// lineIndex holds the offsets at which lines start
type lineIndex []int

func newLineIndex(src string) lineIndex {
	idx := lineIndex{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			idx = append(idx, i+1)
		}
	}
	return idx
}

// position converts a byte offset into 1-based line and column
func (li lineIndex) position(offset int) (line, col int) {
	n := sort.Search(len(li), func(i int) bool { return li[i] > offset })
	return n, offset - li[n-1] + 1
}
