package report

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette - keeping it minimal and accessible.
var (
	ColorWarning = lipgloss.Color("214") // Orange
	ColorMuted   = lipgloss.Color("240") // Dark gray
)

// Styles decorate the text report on a terminal.
type Styles struct {
	Notice    lipgloss.Style
	Separator lipgloss.Style
}

// DefaultStyles returns the terminal styles.
func DefaultStyles() *Styles {
	return &Styles{
		Notice:    lipgloss.NewStyle().Bold(true).Foreground(ColorWarning),
		Separator: lipgloss.NewStyle().Foreground(ColorMuted),
	}
}

// ShouldStyle reports whether output to f may carry colors.
//
// Returns false if:
//   - NO_COLOR is set (accessibility/automation indicator)
//   - CI is set (common CI/CD convention)
//   - f is not a terminal (pipes, files, captured output)
func ShouldStyle(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("CI") != "" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
