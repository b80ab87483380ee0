package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorAccent = lipgloss.Color("#F59E0B")
	colorError  = lipgloss.Color("#EF4444")
	colorMuted  = lipgloss.Color("#6B7280")
)

// Styles
var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	MatchStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Underline(true)

	LineNumberStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// styles renders text with a lipgloss style when color is enabled.
type styles struct {
	color bool
}

func newStyles(color bool) styles {
	return styles{color: color}
}

func (s styles) render(style lipgloss.Style, text string) string {
	if !s.color {
		return text
	}
	return style.Render(text)
}
