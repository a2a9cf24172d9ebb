// File: calc.go
// Title: Calc Engine
// Description: High-level entry point of the calc front-end. Runs tokenizer
//              and parser per call as an isolated session with its own id,
//              logging and timing, and converts syntax errors into structured
//              errors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial engine implementation

package calc

import (
	"errors"
	"os"
	"time"

	"github.com/google/uuid"

	rwast "github.com/msto63/rechenwerk/foundation/calc/ast"
	rwparser "github.com/msto63/rechenwerk/foundation/calc/parser"
	rwerror "github.com/msto63/rechenwerk/foundation/core/error"
	rwlog "github.com/msto63/rechenwerk/foundation/core/log"
)

// Options configures the engine
type Options struct {
	Logger         *rwlog.Logger
	MaxInputLength int // 0 selects the parser default
}

// Engine parses calc sources. It holds no per-source state and is safe for
// concurrent use; every call is its own session.
type Engine struct {
	logger  *rwlog.Logger
	options Options
}

// Result is the outcome of one successful parse session
type Result struct {
	Program   *rwast.Program
	Tokens    []rwparser.Token
	SessionID string
	Duration  time.Duration
	Source    string
	Path      string // empty unless parsed through ParseFile
}

// New creates a new engine
func New(opts Options) (*Engine, error) {
	if opts.Logger == nil {
		opts.Logger = rwlog.GetDefault()
	}
	if opts.MaxInputLength < 0 {
		return nil, rwerror.New("max input length cannot be negative").
			WithCode(rwerror.CodeInvalidConfig).
			WithOperation("calc.New").
			WithDetail("maxInputLength", opts.MaxInputLength)
	}

	return &Engine{
		logger:  opts.Logger.WithField("component", "calc-engine"),
		options: opts,
	}, nil
}

// Parse tokenizes and parses source
func (e *Engine) Parse(source string) (*Result, error) {
	return e.parse(source, "")
}

// ParseFile reads path and parses its content as one source buffer
func (e *Engine) ParseFile(path string) (*Result, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		code := rwerror.CodeInvalidInput
		if errors.Is(err, os.ErrNotExist) {
			code = rwerror.CodeNotFound
		}
		return nil, rwerror.Wrap(err, "failed to read source file").
			WithCode(code).
			WithOperation("calc.ParseFile").
			WithDetail("path", path)
	}
	return e.parse(string(content), path)
}

// Tokenize returns the token sequence of source
func (e *Engine) Tokenize(source string) ([]rwparser.Token, error) {
	sessionID := uuid.NewString()
	logger := e.logger.WithCorrelationID(sessionID)

	p, err := rwparser.New(source, e.parserOptions(logger))
	if err != nil {
		wrapped := wrapError(err, "calc.Tokenize", sessionID)
		logger.Debug("Tokenizing failed", rwlog.Fields{"error": wrapped.Error()})
		return nil, wrapped
	}

	logger.Debug("Tokenized source", rwlog.Fields{
		"length": len(source),
		"tokens": len(p.Tokens()),
	})
	return p.Tokens(), nil
}

func (e *Engine) parse(source, path string) (*Result, error) {
	sessionID := uuid.NewString()
	logger := e.logger.WithCorrelationID(sessionID)
	if path != "" {
		logger = logger.WithField("path", path)
	}

	timer := logger.StartTimer("calc.parse").WithField("length", len(source))

	p, err := rwparser.New(source, e.parserOptions(logger))
	if err == nil {
		var prog *rwast.Program
		if prog, err = p.ParseProgram(); err == nil {
			duration := timer.
				WithField("statements", len(prog.Stmts)).
				WithField("nodes", rwast.CountNodes(prog)).
				Stop()

			return &Result{
				Program:   prog,
				Tokens:    p.Tokens(),
				SessionID: sessionID,
				Duration:  duration,
				Source:    source,
				Path:      path,
			}, nil
		}
	}

	wrapped := wrapError(err, "calc.Parse", sessionID)
	if path != "" {
		wrapped.WithDetail("path", path)
	}

	// rejected input is a normal outcome for a front-end
	if wrapped.Code().IsSyntax() {
		logger.Debug("Source rejected", rwlog.Fields{
			"error":       wrapped.Error(),
			"duration_ms": float64(timer.Elapsed().Nanoseconds()) / 1e6,
		})
	} else {
		timer.StopWithError(wrapped)
	}
	return nil, wrapped
}

func (e *Engine) parserOptions(logger *rwlog.Logger) rwparser.Options {
	return rwparser.Options{
		Logger:         logger,
		MaxInputLength: e.options.MaxInputLength,
	}
}

// wrapError converts parser errors into *rwerror.Error. A *SyntaxError stays
// reachable through errors.As.
func wrapError(err error, operation, sessionID string) *rwerror.Error {
	var se *rwparser.SyntaxError
	if errors.As(err, &se) {
		return rwerror.Wrap(err, "syntax error").
			WithCode(se.Kind.Code()).
			WithOperation(operation).
			WithDetails(map[string]interface{}{
				"offset":  se.Offset,
				"line":    se.Line,
				"column":  se.Column,
				"session": sessionID,
			})
	}
	return rwerror.Wrap(err, "parse failed").
		WithOperation(operation).
		WithDetail("session", sessionID)
}

// AsSyntaxError returns the *SyntaxError inside err, if any
func AsSyntaxError(err error) (*rwparser.SyntaxError, bool) {
	var se *rwparser.SyntaxError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
