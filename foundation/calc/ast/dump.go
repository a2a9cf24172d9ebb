// File: dump.go
// Title: AST Serialization
// Description: Writes programs as S-expressions, JSON or YAML for the CLI
//              and for external tooling.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package ast

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	rwerror "github.com/msto63/rechenwerk/foundation/core/error"
)

// DumpFormat selects the output encoding of Dump
type DumpFormat int

const (
	DumpSExpr DumpFormat = iota
	DumpJSON
	DumpYAML
)

// String returns the string representation of the format
func (f DumpFormat) String() string {
	switch f {
	case DumpSExpr:
		return "sexpr"
	case DumpJSON:
		return "json"
	case DumpYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ParseDumpFormat parses sexpr, json or yaml
func ParseDumpFormat(s string) (DumpFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sexpr":
		return DumpSExpr, nil
	case "json":
		return DumpJSON, nil
	case "yaml", "yml":
		return DumpYAML, nil
	default:
		return DumpSExpr, rwerror.New(fmt.Sprintf("unknown output format: %s", s)).
			WithCode(rwerror.CodeInvalidInput).
			WithOperation("ast.ParseDumpFormat").
			WithDetail("format", s)
	}
}

type nodeDoc struct {
	Kind   string   `json:"kind" yaml:"kind"`
	Op     string   `json:"op,omitempty" yaml:"op,omitempty"`
	Val    *int64   `json:"val,omitempty" yaml:"val,omitempty"`
	Var    string   `json:"var,omitempty" yaml:"var,omitempty"`
	Offset int      `json:"offset" yaml:"offset"`
	LHS    *nodeDoc `json:"lhs,omitempty" yaml:"lhs,omitempty"`
	RHS    *nodeDoc `json:"rhs,omitempty" yaml:"rhs,omitempty"`
}

type localDoc struct {
	Name   string `json:"name" yaml:"name"`
	Offset int    `json:"offset" yaml:"offset"`
}

type programDoc struct {
	Stmts  []*nodeDoc `json:"stmts" yaml:"stmts"`
	Locals []localDoc `json:"locals" yaml:"locals"`
}

func toNodeDoc(n *Node) *nodeDoc {
	if n == nil {
		return nil
	}
	doc := &nodeDoc{
		Kind:   n.Kind.String(),
		Op:     n.Kind.Symbol(),
		Offset: n.Pos.Offset,
		LHS:    toNodeDoc(n.LHS),
		RHS:    toNodeDoc(n.RHS),
	}
	switch n.Kind {
	case NodeNum:
		val := n.Val
		doc.Val = &val
	case NodeVar:
		doc.Var = n.Var.Name
	}
	return doc
}

func toProgramDoc(p *Program) programDoc {
	doc := programDoc{
		Stmts:  make([]*nodeDoc, 0, len(p.Stmts)),
		Locals: make([]localDoc, 0, p.Locals.Len()),
	}
	for _, stmt := range p.Stmts {
		doc.Stmts = append(doc.Stmts, toNodeDoc(stmt))
	}
	for _, v := range p.Locals.All() {
		doc.Locals = append(doc.Locals, localDoc{Name: v.Name, Offset: v.Offset})
	}
	return doc
}

// Dump writes p to w in the given format
func Dump(w io.Writer, p *Program, format DumpFormat) error {
	var err error

	switch format {
	case DumpSExpr:
		if len(p.Stmts) == 0 {
			return nil
		}
		_, err = fmt.Fprintln(w, p.String())
	case DumpJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(toProgramDoc(p))
	case DumpYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(toProgramDoc(p)); err == nil {
			err = enc.Close()
		}
	default:
		return rwerror.New(fmt.Sprintf("unsupported dump format: %d", format)).
			WithCode(rwerror.CodeInvalidInput).
			WithOperation("ast.Dump")
	}

	if err != nil {
		return rwerror.Wrap(err, "failed to write program").
			WithCode(rwerror.CodeInternal).
			WithOperation("ast.Dump").
			WithDetail("format", format.String())
	}
	return nil
}
