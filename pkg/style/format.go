package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format represents the output format type
type Format int

const (
	// FormatTerminal renders styled terminal output
	FormatTerminal Format = iota
	// FormatText renders plain text without any styling
	FormatText
)

// DetectFormat determines the output format from the environment and
// the terminal's capabilities.
func DetectFormat(output *os.File) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return FormatText
	}

	if termenv.ColorProfile() == termenv.Ascii {
		return FormatText
	}

	return FormatTerminal
}

// Render applies s to text, or returns text unchanged for plain output
func (f Format) Render(s lipgloss.Style, text string) string {
	if f == FormatText {
		return text
	}
	return s.Render(text)
}
