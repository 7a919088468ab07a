package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles for the terminal tree. Adaptive colors adjust to light and
// dark terminal themes.
var (
	rootStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "25", Dark: "39"})

	dirStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "250"})

	pageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "235", Dark: "252"})

	currentStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "40"})

	externalStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "97", Dark: "141"})

	urlStyle = lipgloss.NewStyle().
			Faint(true)
)
