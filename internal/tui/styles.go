package tui

import "github.com/charmbracelet/lipgloss"

var (
	mutedColor = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}

	articleTitleStyle = lipgloss.NewStyle().Bold(true)
	articleMetaStyle  = lipgloss.NewStyle().Italic(true)
	variablesStyle    = lipgloss.NewStyle().Foreground(mutedColor).Padding(0, 1)
)
