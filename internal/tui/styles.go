package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	primaryColor = lipgloss.AdaptiveColor{Light: "#0969da", Dark: "#58a6ff"}
	mutedColor   = lipgloss.AdaptiveColor{Light: "#656d76", Dark: "#7d8590"}
	warningColor = lipgloss.AdaptiveColor{Light: "#9a6700", Dark: "#d29922"}

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			PaddingLeft(1).
			PaddingRight(1)

	lockStyle = lipgloss.NewStyle().
			Foreground(warningColor).
			Bold(true)

	ruleStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	eventStyle = lipgloss.NewStyle().
			Foreground(mutedColor)
)
