// Package style centralizes terminal styling for tt's human-facing
// commands (list, status). Output degrades to plain text when not
// attached to a capable terminal.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette
var (
	HeadingColor = lipgloss.Color("12") // bright blue
	TextColor    = lipgloss.Color("7")  // default foreground
	MutedColor   = lipgloss.Color("8")  // gray
	SuccessColor = lipgloss.Color("10") // green
	ErrorColor   = lipgloss.Color("9")  // red
	WarningColor = lipgloss.Color("11") // yellow
	PathColor    = lipgloss.Color("14") // cyan
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(PathColor).
			Italic(true)

	ListItemStyle = lipgloss.NewStyle().
			PaddingLeft(2)
)
