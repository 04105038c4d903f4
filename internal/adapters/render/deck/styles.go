package deck

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	meta      lipgloss.Style
	cursor    lipgloss.Style
	selected  lipgloss.Style
	row       lipgloss.Style
	stamp     lipgloss.Style
	pending   lipgloss.Style
	empty     lipgloss.Style
	banner    lipgloss.Style
	fatal     lipgloss.Style
	help      lipgloss.Style
	inputArea lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		meta:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		cursor:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		selected:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		row:       lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		stamp:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		pending:   lipgloss.NewStyle().Faint(true).Italic(true),
		empty:     lipgloss.NewStyle().Faint(true),
		banner:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		fatal:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		help:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		inputArea: lipgloss.NewStyle().MarginTop(1).MarginBottom(1),
	}
}
