package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Error lipgloss.Style
	Hint  lipgloss.Style
}

// NewTheme binds styles to w, so color is only used when w is a terminal.
func NewTheme(w io.Writer) Theme {
	r := lipgloss.NewRenderer(w)
	return Theme{
		Error: r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		Hint:  r.NewStyle().Faint(true),
	}
}
