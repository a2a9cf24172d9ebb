// File: parser.go
// Title: Calc Recursive Descent Parser
// Description: Implements the parsing phase of calc programs. Converts the
//              token sequence into statement trees using precedence climbing
//              with one method per grammar level. The first syntax error
//              aborts the parse.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial parser implementation

package parser

import (
	"fmt"

	rwast "github.com/msto63/rechenwerk/foundation/calc/ast"
	rwerror "github.com/msto63/rechenwerk/foundation/core/error"
	rwlog "github.com/msto63/rechenwerk/foundation/core/log"
)

// DefaultMaxInputLength is used when Options.MaxInputLength is not positive
const DefaultMaxInputLength = 1 << 20

// Options configures parser behavior
type Options struct {
	Logger         *rwlog.Logger
	MaxInputLength int
}

// Parser implements recursive descent parsing for one source buffer
type Parser struct {
	src     string
	tokens  []Token
	cur     *Cursor
	lines   lineIndex
	prog    *rwast.Program
	err     error
	logger  *rwlog.Logger
	options Options
}

// New tokenizes src and returns a parser positioned on the first token
func New(src string, opts Options) (*Parser, error) {
	if opts.Logger == nil {
		opts.Logger = rwlog.GetDefault()
	}
	if opts.MaxInputLength <= 0 {
		opts.MaxInputLength = DefaultMaxInputLength
	}

	if len(src) > opts.MaxInputLength {
		return nil, rwerror.New(fmt.Sprintf("input exceeds maximum length: %d > %d",
			len(src), opts.MaxInputLength)).
			WithCode(rwerror.CodeInputTooLarge).
			WithOperation("parser.New").
			WithDetail("length", len(src)).
			WithDetail("max", opts.MaxInputLength)
	}

	tokens, err := Tokenize(src)
	if err != nil {
		return nil, err
	}

	return &Parser{
		src:     src,
		tokens:  tokens,
		cur:     NewCursor(tokens),
		lines:   newLineIndex(src),
		prog:    rwast.NewProgram(),
		logger:  opts.Logger.WithField("component", "calc-parser"),
		options: opts,
	}, nil
}

// Parse is a one-shot helper parsing src with default options
func Parse(src string) (*rwast.Program, error) {
	p, err := New(src, Options{})
	if err != nil {
		return nil, err
	}
	return p.ParseProgram()
}

// Tokens returns the token sequence the parser reads
func (p *Parser) Tokens() []Token {
	return p.tokens
}

// Cursor returns the parser's token cursor
func (p *Parser) Cursor() *Cursor {
	return p.cur
}

// ParseProgram parses statements until EOF. Repeated calls return the
// result of the first call.
func (p *Parser) ParseProgram() (*rwast.Program, error) {
	if p.err != nil {
		return nil, p.err
	}

	p.logger.Debug("Starting calc parsing", rwlog.Fields{
		"length": len(p.src),
		"tokens": len(p.tokens),
	})

	for !p.cur.AtEOF() {
		node, err := p.stmt()
		if err != nil {
			p.err = err
			p.logger.Debug("Calc parsing failed", rwlog.Fields{
				"error":     err.Error(),
				"statement": len(p.prog.Stmts),
			})
			return nil, err
		}
		p.prog.Stmts = append(p.prog.Stmts, node)

		p.logger.Debug("Parsed statement", rwlog.Fields{
			"index": len(p.prog.Stmts) - 1,
			"kind":  node.Kind.String(),
		})
	}

	p.logger.Debug("Calc parsing completed successfully", rwlog.Fields{
		"statements": len(p.prog.Stmts),
		"locals":     p.prog.Locals.Len(),
	})

	return p.prog, nil
}

// stmt = "return" expr ";" | expr ";"
func (p *Parser) stmt() (*rwast.Node, error) {
	if tok, ok := p.consumeKind(TokenReturn); ok {
		expr, err := p.expr()
		if err != nil {
			return nil, err
		}
		if err := p.expectTerminator(); err != nil {
			return nil, err
		}
		return rwast.NewReturn(expr, p.position(tok.Offset)), nil
	}

	expr, err := p.expr()
	if err != nil {
		return nil, err
	}
	if err := p.expectTerminator(); err != nil {
		return nil, err
	}
	return expr, nil
}

// expr = assign
func (p *Parser) expr() (*rwast.Node, error) {
	return p.assign()
}

// assign = equality ("=" assign)?
func (p *Parser) assign() (*rwast.Node, error) {
	node, err := p.equality()
	if err != nil {
		return nil, err
	}

	tok := p.cur.Peek()
	if p.consume("=") {
		rhs, err := p.assign()
		if err != nil {
			return nil, err
		}
		node = rwast.NewBinary(rwast.NodeAssign, node, rhs, p.position(tok.Offset))
	}
	return node, nil
}

// equality = relational ("==" relational | "!=" relational)*
func (p *Parser) equality() (*rwast.Node, error) {
	node, err := p.relational()
	if err != nil {
		return nil, err
	}

	for {
		tok := p.cur.Peek()
		var kind rwast.NodeKind
		switch {
		case p.consume("=="):
			kind = rwast.NodeEq
		case p.consume("!="):
			kind = rwast.NodeNe
		default:
			return node, nil
		}

		rhs, err := p.relational()
		if err != nil {
			return nil, err
		}
		node = rwast.NewBinary(kind, node, rhs, p.position(tok.Offset))
	}
}

// relational = add ("<" add | "<=" add | ">" add | ">=" add)*
// a > b is stored as b < a, a >= b as b <= a.
func (p *Parser) relational() (*rwast.Node, error) {
	node, err := p.add()
	if err != nil {
		return nil, err
	}

	for {
		tok := p.cur.Peek()
		var (
			kind    rwast.NodeKind
			swapped bool
		)
		switch {
		case p.consume("<"):
			kind = rwast.NodeLt
		case p.consume("<="):
			kind = rwast.NodeLe
		case p.consume(">"):
			kind, swapped = rwast.NodeLt, true
		case p.consume(">="):
			kind, swapped = rwast.NodeLe, true
		default:
			return node, nil
		}

		rhs, err := p.add()
		if err != nil {
			return nil, err
		}
		if swapped {
			node = rwast.NewBinary(kind, rhs, node, p.position(tok.Offset))
		} else {
			node = rwast.NewBinary(kind, node, rhs, p.position(tok.Offset))
		}
	}
}

// add = mul ("+" mul | "-" mul)*
func (p *Parser) add() (*rwast.Node, error) {
	node, err := p.mul()
	if err != nil {
		return nil, err
	}

	for {
		tok := p.cur.Peek()
		var kind rwast.NodeKind
		switch {
		case p.consume("+"):
			kind = rwast.NodeAdd
		case p.consume("-"):
			kind = rwast.NodeSub
		default:
			return node, nil
		}

		rhs, err := p.mul()
		if err != nil {
			return nil, err
		}
		node = rwast.NewBinary(kind, node, rhs, p.position(tok.Offset))
	}
}

// mul = unary ("*" unary | "/" unary)*
func (p *Parser) mul() (*rwast.Node, error) {
	node, err := p.unary()
	if err != nil {
		return nil, err
	}

	for {
		tok := p.cur.Peek()
		var kind rwast.NodeKind
		switch {
		case p.consume("*"):
			kind = rwast.NodeMul
		case p.consume("/"):
			kind = rwast.NodeDiv
		default:
			return node, nil
		}

		rhs, err := p.unary()
		if err != nil {
			return nil, err
		}
		node = rwast.NewBinary(kind, node, rhs, p.position(tok.Offset))
	}
}

// unary = ("+" | "-")? primary
// -x is stored as 0 - x.
func (p *Parser) unary() (*rwast.Node, error) {
	tok := p.cur.Peek()
	if p.consume("+") {
		return p.primary()
	}
	if p.consume("-") {
		operand, err := p.primary()
		if err != nil {
			return nil, err
		}
		pos := p.position(tok.Offset)
		return rwast.NewBinary(rwast.NodeSub, rwast.NewNum(0, pos), operand, pos), nil
	}
	return p.primary()
}

// primary = "(" expr ")" | num | ident
func (p *Parser) primary() (*rwast.Node, error) {
	if p.consume("(") {
		node, err := p.expr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(")"); err != nil {
			return nil, err
		}
		return node, nil
	}

	if tok, ok := p.consumeKind(TokenIdent); ok {
		local := p.prog.Locals.Resolve(tok.Text(p.src))
		return rwast.NewVar(local, p.position(tok.Offset)), nil
	}

	tok, err := p.expectNumber()
	if err != nil {
		return nil, err
	}
	return rwast.NewNum(tok.Val, p.position(tok.Offset)), nil
}

// Utility methods

// consume advances past the current token if it is the reserved symbol op
func (p *Parser) consume(op string) bool {
	tok := p.cur.Peek()
	if tok.Kind != TokenReserved || tok.Text(p.src) != op {
		return false
	}
	p.cur.Advance()
	return true
}

// consumeKind advances past the current token if it has the given kind
func (p *Parser) consumeKind(kind TokenKind) (Token, bool) {
	tok := p.cur.Peek()
	if tok.Kind != kind {
		return Token{}, false
	}
	p.cur.Advance()
	return tok, true
}

// expect consumes the reserved symbol op or fails at the current token
func (p *Parser) expect(op string) error {
	if !p.consume(op) {
		return p.syntaxError(ErrExpectedSymbol, fmt.Sprintf("expected '%s'", op))
	}
	return nil
}

// expectTerminator consumes the ';' closing a statement
func (p *Parser) expectTerminator() error {
	if !p.consume(";") {
		return p.syntaxError(ErrExpectedTerminator, "expected ';'")
	}
	return nil
}

// expectNumber consumes a number token or fails at the current token
func (p *Parser) expectNumber() (Token, error) {
	tok, ok := p.consumeKind(TokenNum)
	if !ok {
		return Token{}, p.syntaxError(ErrExpectedNumber, "expected a number")
	}
	return tok, nil
}

// position returns the AST position of a byte offset
func (p *Parser) position(offset int) rwast.Position {
	line, col := p.lines.position(offset)
	return rwast.Position{Offset: offset, Line: line, Column: col}
}

// syntaxError creates a syntax error at the current token
func (p *Parser) syntaxError(kind ErrorKind, msg string) *SyntaxError {
	offset := p.cur.Peek().Offset
	line, col := p.lines.position(offset)
	return &SyntaxError{
		Kind:    kind,
		Offset:  offset,
		Line:    line,
		Column:  col,
		Message: msg,
		Source:  p.src,
	}
}
