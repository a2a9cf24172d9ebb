// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across rechenwerk. Syntax codes
//              mirror the four fatal parser error classes, the remaining codes
//              cover input limits, configuration and internal failures.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial code set for the calc front-end

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Syntax codes, one per fatal parser error class
	CodeSyntaxTokenize           Code = "SYNTAX_TOKENIZE"
	CodeSyntaxExpectedSymbol     Code = "SYNTAX_EXPECTED_SYMBOL"
	CodeSyntaxExpectedNumber     Code = "SYNTAX_EXPECTED_NUMBER"
	CodeSyntaxExpectedTerminator Code = "SYNTAX_EXPECTED_TERMINATOR"

	// Input limits
	CodeInputTooLarge Code = "INPUT_TOO_LARGE"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsSyntax reports whether the code belongs to a parser syntax error
func (c Code) IsSyntax() bool {
	switch c {
	case CodeSyntaxTokenize, CodeSyntaxExpectedSymbol,
		CodeSyntaxExpectedNumber, CodeSyntaxExpectedTerminator:
		return true
	default:
		return false
	}
}
