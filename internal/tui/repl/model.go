// ============================================================================
// rechenwerk - calc language front-end
// ============================================================================
//
// Package:     repl
// Description: Bubbletea model of the interactive parse REPL. Every entered
//              line is parsed as its own program and shown as S-expressions
//              or as a caret diagnostic.
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package repl

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/msto63/rechenwerk/foundation/calc"
	rwparser "github.com/msto63/rechenwerk/foundation/calc/parser"
)

// Parser is the part of the calc engine the REPL needs
type Parser interface {
	Parse(source string) (*calc.Result, error)
	Tokenize(source string) ([]rwparser.Token, error)
}

// entry is one input line with its rendered outcome
type entry struct {
	input  string
	output string
	failed bool
	info   bool
}

// parsedMsg carries the outcome of a parse or tokenize command
type parsedMsg struct {
	input  string
	output string
	failed bool
}

// Model is the Bubbletea model of the REPL
type Model struct {
	width  int
	height int
	ready  bool

	input    textinput.Model
	viewport viewport.Model

	parser  Parser
	entries []entry

	history      []string
	historyIndex int // -1 while not navigating
	draft        string
}

// New creates a REPL model backed by parser
func New(parser Parser) Model {
	ti := textinput.New()
	ti.Placeholder = "a = 1 + 2; return a * 3;"
	ti.Prompt = PromptStyle.Render("calc> ")
	ti.CharLimit = 4096
	ti.Focus()

	return Model{
		input:        ti,
		parser:       parser,
		historyIndex: -1,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 2
		footerHeight := 3
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		m.input.Width = msg.Width - 8
		m.updateViewportContent()

	case parsedMsg:
		m.entries = append(m.entries, entry{
			input:  msg.input,
			output: msg.output,
			failed: msg.failed,
		})
		m.updateViewportContent()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyEnter:
		line := strings.TrimSpace(m.input.Value())
		if line == "" {
			return m, nil
		}
		m.input.Reset()
		m.history = append(m.history, line)
		m.historyIndex = -1
		m.draft = ""

		switch {
		case line == ":q" || line == "exit":
			return m, tea.Quit
		case line == ":clear":
			m.entries = nil
			m.updateViewportContent()
			return m, nil
		case line == ":help":
			m.entries = append(m.entries, entry{input: line, output: helpText, info: true})
			m.updateViewportContent()
			return m, nil
		case strings.HasPrefix(line, ":tokens "):
			return m, m.tokenize(strings.TrimPrefix(line, ":tokens "))
		default:
			return m, m.parse(line)
		}

	case tea.KeyUp:
		if len(m.history) == 0 {
			return m, nil
		}
		if m.historyIndex == -1 {
			m.draft = m.input.Value()
			m.historyIndex = len(m.history) - 1
		} else if m.historyIndex > 0 {
			m.historyIndex--
		}
		m.input.SetValue(m.history[m.historyIndex])
		m.input.CursorEnd()
		return m, nil

	case tea.KeyDown:
		if m.historyIndex == -1 {
			return m, nil
		}
		if m.historyIndex < len(m.history)-1 {
			m.historyIndex++
			m.input.SetValue(m.history[m.historyIndex])
		} else {
			m.historyIndex = -1
			m.input.SetValue(m.draft)
		}
		m.input.CursorEnd()
		return m, nil

	case tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

const helpText = `enter a program, e.g. a = 2; return a * 3;
:tokens <src>  show the token sequence
:clear         clear the history
:q             quit`

// parse runs the engine on src
func (m Model) parse(src string) tea.Cmd {
	return func() tea.Msg {
		result, err := m.parser.Parse(src)
		if err != nil {
			return parsedMsg{input: src, output: describeError(err), failed: true}
		}

		var b strings.Builder
		if len(result.Program.Stmts) == 0 {
			b.WriteString("(empty program)")
		} else {
			b.WriteString(result.Program.String())
		}
		if locals := result.Program.Locals.All(); len(locals) > 0 {
			names := make([]string, 0, len(locals))
			for _, v := range locals {
				names = append(names, fmt.Sprintf("%s@%d", v.Name, v.Offset))
			}
			b.WriteString("\nlocals: " + strings.Join(names, " "))
		}
		b.WriteString(fmt.Sprintf("\n%d statement(s) in %s", len(result.Program.Stmts),
			result.Duration.Round(time.Microsecond)))

		return parsedMsg{input: src, output: b.String()}
	}
}

// tokenize lists the tokens of src
func (m Model) tokenize(src string) tea.Cmd {
	return func() tea.Msg {
		tokens, err := m.parser.Tokenize(src)
		if err != nil {
			return parsedMsg{input: ":tokens " + src, output: describeError(err), failed: true}
		}

		lines := make([]string, 0, len(tokens))
		for _, tok := range tokens {
			lines = append(lines, tok.Describe(src))
		}
		return parsedMsg{input: ":tokens " + src, output: strings.Join(lines, "\n")}
	}
}

func describeError(err error) string {
	if se, ok := calc.AsSyntaxError(err); ok {
		return se.Diagnostic()
	}
	return err.Error()
}

func (m *Model) updateViewportContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderEntries())
	m.viewport.GotoBottom()
}

func (m Model) renderEntries() string {
	if len(m.entries) == 0 {
		return InfoStyle.Render("type :help for commands")
	}

	var b strings.Builder
	for i, e := range m.entries {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(PromptStyle.Render("> ") + InputEchoStyle.Render(e.input) + "\n")
		switch {
		case e.failed:
			b.WriteString(ErrorStyle.Render(e.output))
		case e.info:
			b.WriteString(InfoStyle.Render(e.output))
		default:
			b.WriteString(ResultStyle.Render(e.output))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// View renders the model
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(LogoStyle.Render(Logo) + " " + HelpStyle.Render("interactive parser"))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("enter: parse • ↑/↓: history • :tokens <src> • esc: quit"))
	return b.String()
}
