// File: timer.go
// Title: Performance Timer
// Description: Measures operation duration and logs it on completion. The
//              calc engine wraps every parse session in a timer.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation with performance timing

package log

import (
	"time"
)

// Timer represents a performance timer for measuring operation duration
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	level     Level
	stopped   bool
}

// NewTimer creates a new timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
	}
}

// WithLevel sets the log level for the timer completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to be logged when the timer completes
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the elapsed time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop stops the timer and logs the elapsed time.
// A second call returns 0 and logs nothing.
func (t *Timer) Stop() time.Duration {
	if t.stopped {
		return 0
	}

	elapsed := t.Elapsed()
	t.stopped = true

	if t.logger != nil {
		t.logger.log(t.level, t.operation+" completed", nil, t.timingFields(elapsed, true))
	}

	return elapsed
}

// StopWithError stops the timer and logs the error with the elapsed time
func (t *Timer) StopWithError(err error) time.Duration {
	if t.stopped {
		return 0
	}

	elapsed := t.Elapsed()
	t.stopped = true

	if t.logger != nil {
		level := t.level
		if level < LevelWarn {
			level = LevelWarn
		}
		t.logger.log(level, t.operation+" failed", err, t.timingFields(elapsed, false))
	}

	return elapsed
}

func (t *Timer) timingFields(elapsed time.Duration, success bool) Fields {
	fields := Merge(t.fields)
	fields["operation"] = t.operation
	fields["duration_ms"] = float64(elapsed.Nanoseconds()) / 1e6
	fields["success"] = success
	return fields
}
