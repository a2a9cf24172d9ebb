// Package integration provides integration tests for the rechenwerk foundation.
//
// Package: integration
// Title: rechenwerk Foundation Integration Tests
// Description: Verifies the interaction between config, log, error and the
//              calc front-end across package boundaries.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Integration suite for the calc pipeline
//
// Test Categories:
//
// Pipeline Tests (pipeline_test.go):
// - configuration values flowing into the engine limits
// - log records of one parse sharing a correlation id
// - error codes and severities of every syntax error class
// - diagnostics staying reachable through the error chain
//
// Performance Tests (performance_test.go):
// - tokenizer and parser throughput on growing programs
// - concurrent parses on one shared engine
//
// Running Integration Tests:
//
//	go test -v ./foundation/test/integration/
//	go test -v ./foundation/test/integration/ -bench=.
package integration
