package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderTabs draws the page tabs with a bottom rule filling the rest of width
// A non-empty notice is right-aligned at the end of the rule.
func RenderTabs(pages []string, active, width int, notice string) string {
	cells := make([]string, len(pages))
	for i, name := range pages {
		style := TabStyle
		if i == active {
			style = ActiveTabStyle
		}
		cells[i] = style.Render(name)
	}
	tabs := lipgloss.JoinHorizontal(lipgloss.Top, cells...)

	fill := max(width-lipgloss.Width(tabs)-lipgloss.Width(notice)-2, 0)
	parts := []string{tabs, TabGapStyle.Render(strings.Repeat(" ", fill))}
	if notice != "" {
		parts = append(parts, notice)
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, parts...)
}
