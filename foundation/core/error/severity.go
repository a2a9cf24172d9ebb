// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger maps them onto
//              log levels when an error is reported through LogError.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error, e.g. a missing optional config file
	SeverityLow Severity = iota

	// SeverityMedium indicates an error the caller can usually work around
	SeverityMedium

	// SeverityHigh indicates a failed operation, e.g. unreadable configuration
	SeverityHigh

	// SeverityCritical indicates an error that aborts the whole run.
	// Every syntax error is critical: the parser has no recovery mode.
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// IsFatal returns true if the error should terminate the current run
func (s Severity) IsFatal() bool {
	return s == SeverityCritical
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeSyntaxTokenize, CodeSyntaxExpectedSymbol,
		CodeSyntaxExpectedNumber, CodeSyntaxExpectedTerminator:
		return SeverityCritical

	case CodeInternal, CodeConfigError, CodeInvalidConfig, CodeInputTooLarge:
		return SeverityHigh

	case CodeInvalidInput, CodeNotFound:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
