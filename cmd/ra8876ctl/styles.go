package main

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	primaryColor = lipgloss.Color("#7D56F4")
	mutedColor   = lipgloss.Color("#666666")

	// allocation runs cycle through these
	runColors = []lipgloss.Color{
		lipgloss.Color("#00D7FF"),
		lipgloss.Color("#04B575"),
		lipgloss.Color("#FFA500"),
		lipgloss.Color("#FF00FF"),
		lipgloss.Color("#FF4B4B"),
	}

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	reservedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	freeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#383838"))

	gridStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#383838")).
			Padding(0, 1)
)

// render applies s unless color output is disabled.
func render(s lipgloss.Style, text string) string {
	if noColor {
		return text
	}
	return s.Render(text)
}

func runStyle(i int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(runColors[i%len(runColors)])
}
