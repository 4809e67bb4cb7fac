package main

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/wippyai/vk-validation/errors"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	passStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#90EE90"))

	failStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))

	opStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	severityStyles = map[errors.Severity]lipgloss.Style{
		errors.SeverityError:       lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		errors.SeverityWarning:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")),
		errors.SeverityPerformance: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")),
		errors.SeverityInfo:        lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB")),
		errors.SeverityDebug:       lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")),
	}
)

// isTerminal reports whether w is a terminal, so plain output stays free of
// escape sequences when piped.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// painter applies styles only when colour is enabled.
type painter struct {
	color bool
}

func (p painter) paint(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}

func (p painter) severity(sev errors.Severity) string {
	return p.paint(severityStyles[sev], sev.String())
}
