package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/thenoetrevino/campfire/internal/tui/theme"
)

// StatusBarProps is what the status bar shows
type StatusBarProps struct {
	Width int
	Left  string // project name
	Right string // last change seen on the event bus
}

// RenderStatusBar renders a full-width bar with left and right aligned text
func RenderStatusBar(props StatusBarProps) string {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.StatusBarText)).
		Background(lipgloss.Color(theme.StatusBarBg))

	leftRendered := style.Bold(true).Padding(0, 1).Render(props.Left)
	rightRendered := style.Padding(0, 1).Render(props.Right)

	gapWidth := props.Width - lipgloss.Width(leftRendered) - lipgloss.Width(rightRendered)
	if gapWidth < 1 {
		gapWidth = 1
	}
	gap := style.Render(strings.Repeat(" ", gapWidth))

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, gap, rightRendered)
}
