package style

import "github.com/charmbracelet/lipgloss"

// Palette used by the watch view.
var (
	Base     = lipgloss.Color("#1e1e2e")
	Mauve    = lipgloss.Color("#cba6f7")
	Red      = lipgloss.Color("#f38ba8")
	Peach    = lipgloss.Color("#fab387")
	Lavender = lipgloss.Color("#b4befe")

	AccentColor    = Mauve
	SecondaryColor = Lavender
	ErrorColor     = Red
)
