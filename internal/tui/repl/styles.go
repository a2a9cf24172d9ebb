// ============================================================================
// rechenwerk - calc language front-end
// ============================================================================
//
// Package:     repl
// Description: Styles for the interactive parse REPL
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package repl

import (
	"github.com/charmbracelet/lipgloss"
)

// Color Palette
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
)

var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	PromptStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	InputEchoStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	ResultStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			PaddingLeft(2)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			PaddingLeft(2)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true).
			PaddingLeft(2)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Logo is shown in the header
const Logo = "rechenwerk"
