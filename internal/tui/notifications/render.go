// Package notifications renders controller notices for the tab bar
package notifications

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/thenoetrevino/campfire/internal/dashboard"
)

// RenderInline renders a compact one-line notice (for the tab bar)
func RenderInline(n dashboard.Notice) string {
	s := styleFor(n.Level)

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.foreground)).
		Background(lipgloss.Color(s.background)).
		Bold(n.Level == dashboard.LevelError).
		Padding(0, 1).
		Render(s.icon + " " + n.Message)
}
