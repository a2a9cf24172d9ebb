// File: logger_test.go
// Title: Logger Tests
// Description: Tests for logger configuration, context fields, level
//              filtering, error logging and timers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial logger tests

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	rwerror "github.com/msto63/rechenwerk/foundation/core/error"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewWithConfig(Config{Level: level, Format: format, Output: &buf}), &buf
}

func TestNew(t *testing.T) {
	logger := New()

	if logger == nil {
		t.Fatal("New() should not return nil")
	}
	if logger.GetLevel() != DefaultLevel() {
		t.Errorf("New() level = %v, want %v", logger.GetLevel(), DefaultLevel())
	}
	if logger.contextFields == nil {
		t.Error("New() should initialize context fields")
	}
}

func TestLoggerWithLevel(t *testing.T) {
	logger := New()
	newLogger := logger.WithLevel(LevelDebug)

	if newLogger == logger {
		t.Error("WithLevel() should return a new logger instance")
	}
	if newLogger.GetLevel() != LevelDebug {
		t.Errorf("WithLevel() level = %v, want %v", newLogger.GetLevel(), LevelDebug)
	}
	if logger.GetLevel() != DefaultLevel() {
		t.Error("WithLevel() should not modify original logger")
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatText)

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Expected debug/info to be filtered, got %q", out)
	}
	if !strings.Contains(out, "[WRN]") || !strings.Contains(out, "visible") {
		t.Errorf("Expected warn line, got %q", out)
	}
}

func TestLoggerWithFields(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)
	child := logger.WithField("component", "calc-parser").
		WithCorrelationID("session-1").
		WithName("calc")

	child.Debug("statement parsed", Fields{"index": 2})

	var got map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}

	if got["component"] != "calc-parser" {
		t.Errorf("Expected component field, got %v", got["component"])
	}
	if got["correlation_id"] != "session-1" {
		t.Errorf("Expected correlation_id, got %v", got["correlation_id"])
	}
	if got["logger"] != "calc" {
		t.Errorf("Expected logger name, got %v", got["logger"])
	}
	if got["index"] != float64(2) {
		t.Errorf("Expected index 2, got %v", got["index"])
	}
	if got["level"] != "debug" {
		t.Errorf("Expected level debug, got %v", got["level"])
	}

	if len(logger.contextFields) != 0 {
		t.Error("WithField() should not modify the parent logger")
	}
}

func TestLoggerLogError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
	}{
		{
			name:      "critical syntax error",
			err:       rwerror.New("expected ';'").WithCode(rwerror.CodeSyntaxExpectedTerminator),
			wantLevel: "error",
		},
		{
			name:      "low severity",
			err:       rwerror.New("no config").WithCode(rwerror.CodeNotFound),
			wantLevel: "info",
		},
		{
			name:      "plain error",
			err:       errors.New("boom"),
			wantLevel: "warn",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(LevelTrace, FormatJSON)
			logger.LogError(tt.err)

			var got map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
				t.Fatalf("invalid JSON %q: %v", buf.String(), err)
			}
			if got["level"] != tt.wantLevel {
				t.Errorf("Expected level %s, got %v", tt.wantLevel, got["level"])
			}
		})
	}

	logger, buf := newBufferLogger(LevelTrace, FormatJSON)
	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Errorf("LogError(nil) should not write, got %q", buf.String())
	}
}

func TestTimer(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatLogfmt)

	timer := logger.StartTimer("parse").WithField("statements", 3)
	if elapsed := timer.Stop(); elapsed <= 0 {
		t.Errorf("Expected positive elapsed time, got %v", elapsed)
	}
	if again := timer.Stop(); again != 0 {
		t.Errorf("Second Stop() should return 0, got %v", again)
	}

	out := buf.String()
	if strings.Count(out, "\n") != 1 {
		t.Errorf("Expected exactly one line, got %q", out)
	}
	for _, want := range []string{`message="parse completed"`, "statements=3", "success=true", `operation="parse"`} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in %q", want, out)
		}
	}
}

func TestTimerStopWithError(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatText)

	logger.StartTimer("parse").StopWithError(errors.New("expected ';'"))

	out := buf.String()
	if !strings.Contains(out, "parse failed") || !strings.Contains(out, "success=false") {
		t.Errorf("Expected failure record, got %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{" WARN ", LevelWarn, false},
		{"err", LevelError, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
