package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styled reports whether output should carry ANSI styling. Piped output
// stays plain so it can be scripted against.
func Styled() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

var (
	branchStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ccbf1")).Bold(true)
	commitStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f5c800"))
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#4dca7d"))
	changedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f89048"))
	closedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f46251"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#777777"))
)

// render applies style to text when styling is on.
func render(style lipgloss.Style, text string) string {
	if !Styled() {
		return text
	}
	return style.Render(text)
}
