// Package style provides the colors, icons and text styles shared by the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
)

// Text styles.
var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(Iris)
	Muted = lipgloss.NewStyle().Foreground(Slate)
	Pass  = lipgloss.NewStyle().Foreground(Green)
	Fail  = lipgloss.NewStyle().Foreground(Red)
)

// Status renders the pass or fail icon.
func Status(ok bool) string {
	if ok {
		return Pass.Render(Check)
	}
	return Fail.Render(Cross)
}
