package cmds

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles are the terminal styles used by command output. Colors are dropped
// when the writer is not a terminal.
type Styles struct {
	Command lipgloss.Style
	Running lipgloss.Style
	Stopped lipgloss.Style
	Error   lipgloss.Style
}

// NewStyles builds styles bound to w.
func NewStyles(w io.Writer) Styles {
	return newStyles(lipgloss.NewRenderer(w))
}

func newStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Command: r.NewStyle().Foreground(lipgloss.Color("14")),
		Running: r.NewStyle().Foreground(lipgloss.Color("10")),
		Stopped: r.NewStyle().Foreground(lipgloss.Color("11")),
		Error:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}
}
