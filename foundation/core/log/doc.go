// Package log provides structured logging for rechenwerk.
//
// A Logger writes Entries through a Formatter (text, console, JSON or
// logfmt). Loggers are immutable: WithField, WithLevel and friends return
// copies, so a component can derive its own logger without affecting others.
//
//	logger := rwlog.NewWithConfig(rwlog.Config{Level: rwlog.LevelDebug, Format: rwlog.FormatJSON})
//	plog := logger.WithField("component", "calc-parser").WithCorrelationID(sessionID)
//	plog.Debug("parse started", rwlog.Fields{"length": len(src)})
//
// The default logger writes text to stderr at warn level.
package log
