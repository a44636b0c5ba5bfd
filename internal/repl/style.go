package repl

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// styles renders the transcript labels. The renderer is bound to the session
// output, so labels are plain text when that output is not a terminal.
type styles struct {
	user lipgloss.Style
	bot  lipgloss.Style
	err  lipgloss.Style
}

func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		user: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#22c55e")),
		bot:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#f97316")),
		err:  r.NewStyle().Foreground(lipgloss.Color("#ef4444")),
	}
}
