// Package components provides reusable UI components and styles.
// Call InitStyles() after theme.Init to pick up a new color scheme.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/thenoetrevino/campfire/internal/tui/theme"
)

var (
	// compared to the defaults, these feel like
	// they take up less space
	activeTabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      " ",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┘",
		BottomRight: "└",
	}

	tabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      "─",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┴",
		BottomRight: "┴",
	}

	// TabStyle defines inactive tabs
	TabStyle lipgloss.Style

	// ActiveTabStyle defines the selected tab
	ActiveTabStyle lipgloss.Style

	// TabGapStyle fills the remaining space after tabs
	TabGapStyle lipgloss.Style

	// TitleStyle is used for page and project titles
	TitleStyle lipgloss.Style

	// SubtleStyle is used for secondary text such as timestamps
	SubtleStyle lipgloss.Style

	// NormalStyle is used for body text
	NormalStyle lipgloss.Style

	// SelectedStyle highlights the row under the cursor
	SelectedStyle lipgloss.Style

	// Task state styles
	DoneStyle    lipgloss.Style
	OverdueStyle lipgloss.Style
	DueSoonStyle lipgloss.Style

	// CardStyle frames the overview card
	CardStyle lipgloss.Style

	// InputBoxStyle frames the text prompt
	InputBoxStyle lipgloss.Style
)

func init() {
	InitStyles()
}

// InitStyles rebuilds every style from the current theme colors
func InitStyles() {
	TabStyle = lipgloss.NewStyle().
		Border(tabBorder, true).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(0, 1)

	ActiveTabStyle = TabStyle.Border(activeTabBorder, true).
		Bold(true).
		Foreground(lipgloss.Color(theme.Title))

	TabGapStyle = TabStyle.
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))

	NormalStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Normal))

	SelectedStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(theme.SelectedBg)).
		Foreground(lipgloss.Color(theme.Accent)).
		Bold(true)

	DoneStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Done)).
		Strikethrough(true)

	OverdueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Overdue)).
		Bold(true)

	DueSoonStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.DueSoon))

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Border)).
		Padding(1, 2)

	InputBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(0, 1)
}
