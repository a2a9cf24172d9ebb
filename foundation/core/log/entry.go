// File: entry.go
// Title: Log Entry Structure
// Description: Defines the log entry and the Fields map used for structured
//              key-value logging.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package log

import (
	"sort"
	"time"
)

// Entry represents a single log entry with all its metadata
type Entry struct {
	Timestamp time.Time
	Level     Level
	Message   string
	Logger    string

	// CorrelationID ties all records of one parse session together
	CorrelationID string

	Fields Fields
	Error  error

	Duration time.Duration
}

// Fields represents custom key-value pairs for structured logging
type Fields map[string]interface{}

// NewEntry creates a new entry stamped with the current time
func NewEntry(level Level, message string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    make(Fields),
	}
}

// Field creates a single field for logging
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Err creates an error field for logging
func Err(err error) Fields {
	return Fields{"error": err}
}

// Merge combines multiple Fields into one, later keys win
func Merge(fields ...Fields) Fields {
	out := make(Fields)
	for _, f := range fields {
		for k, v := range f {
			out[k] = v
		}
	}
	return out
}

// sortedKeys returns the field keys in stable order for text output
func (f Fields) sortedKeys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
