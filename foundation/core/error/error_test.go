// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity mapping
//              and JSON output.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial test coverage

package error

import (
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}

	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}

	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		wantNil bool
		wantMsg string
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "context",
			wantNil: true,
		},
		{
			name:    "wrap standard error",
			err:     io.ErrUnexpectedEOF,
			message: "read source",
			wantMsg: "read source: unexpected EOF",
		},
		{
			name:    "wrap structured error",
			err:     New("inner").WithCode(CodeNotFound),
			message: "outer",
			wantMsg: "outer: inner",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Wrap() = %v, want nil", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
			if !errors.Is(got, tt.err) {
				t.Error("errors.Is should find the wrapped cause")
			}
		})
	}
}

func TestWrap_InheritsCodeAndDetails(t *testing.T) {
	inner := New("missing ';'").
		WithCode(CodeSyntaxExpectedTerminator).
		WithDetail("offset", 1)

	outer := Wrap(inner, "parse failed")

	if outer.Code() != CodeSyntaxExpectedTerminator {
		t.Errorf("Expected inherited code, got %s", outer.Code())
	}
	if outer.Severity() != SeverityCritical {
		t.Errorf("Expected critical severity, got %s", outer.Severity())
	}
	if outer.Details()["offset"] != 1 {
		t.Errorf("Expected inherited offset detail, got %v", outer.Details()["offset"])
	}
	if outer.RootCause() != error(inner) {
		t.Errorf("Expected root cause to be the inner error")
	}
}

func TestWithCode_Severity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeSyntaxTokenize, SeverityCritical},
		{CodeSyntaxExpectedSymbol, SeverityCritical},
		{CodeSyntaxExpectedNumber, SeverityCritical},
		{CodeSyntaxExpectedTerminator, SeverityCritical},
		{CodeInputTooLarge, SeverityHigh},
		{CodeConfigError, SeverityHigh},
		{CodeNotFound, SeverityLow},
		{CodeUnknown, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}

	explicit := New("x").WithSeverity(SeverityLow).WithCode(CodeInternal)
	if explicit.Severity() != SeverityLow {
		t.Errorf("explicit severity should be kept, got %v", explicit.Severity())
	}
}

func TestCode_IsSyntax(t *testing.T) {
	if !CodeSyntaxExpectedNumber.IsSyntax() {
		t.Error("Expected SYNTAX_EXPECTED_NUMBER to be a syntax code")
	}
	if CodeConfigError.IsSyntax() {
		t.Error("Expected CONFIG_ERROR not to be a syntax code")
	}
}

func TestHasCode(t *testing.T) {
	err := Wrap(New("bad").WithCode(CodeInvalidConfig), "load")
	plain := errors.New("plain")

	if !HasCode(err, CodeInvalidConfig) {
		t.Error("HasCode should find INVALID_CONFIG")
	}
	if HasCode(plain, CodeInvalidConfig) {
		t.Error("HasCode should be false for a plain error")
	}
	if GetCode(plain) != CodeUnknown {
		t.Errorf("GetCode(plain) = %v, want UNKNOWN", GetCode(plain))
	}
	if GetSeverity(plain) != SeverityMedium {
		t.Errorf("GetSeverity(plain) = %v, want medium", GetSeverity(plain))
	}
}

func TestMarshalJSON(t *testing.T) {
	err := New("expected ';'").
		WithCode(CodeSyntaxExpectedTerminator).
		WithOperation("calc.Parse").
		WithDetail("line", 1)

	data, marshalErr := json.Marshal(err)
	if marshalErr != nil {
		t.Fatalf("Marshal failed: %v", marshalErr)
	}

	var got map[string]interface{}
	if jsonErr := json.Unmarshal(data, &got); jsonErr != nil {
		t.Fatalf("Unmarshal failed: %v", jsonErr)
	}

	if got["code"] != "SYNTAX_EXPECTED_TERMINATOR" {
		t.Errorf("code = %v", got["code"])
	}
	if got["severity"] != "critical" {
		t.Errorf("severity = %v", got["severity"])
	}
	if got["operation"] != "calc.Parse" {
		t.Errorf("operation = %v", got["operation"])
	}
}

func TestString(t *testing.T) {
	err := Wrap(errors.New("boom"), "load config").
		WithCode(CodeConfigError).
		WithOperation("config.Load").
		WithDetail("path", "a.toml").
		WithDetail("format", "toml")

	s := err.String()
	for _, want := range []string{
		"Error: load config",
		"Code: CONFIG_ERROR",
		"Operation: config.Load",
		"Details: {format=toml, path=a.toml}",
		"Cause: boom",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}
}
