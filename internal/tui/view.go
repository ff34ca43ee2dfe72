package tui

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/campfire/internal/tui/components"
	"github.com/thenoetrevino/campfire/internal/tui/notifications"
)

const defaultWidth = 80

// View renders the tab bar, the current page, the prompt and the help
// Required by tea.Model interface
func (m Model) View() string {
	width := m.width
	if width == 0 {
		width = defaultWidth
	}

	var notice string
	if m.notice != nil {
		notice = notifications.RenderInline(*m.notice)
	}

	var b strings.Builder
	b.WriteString(components.RenderTabs(pageNames[:], int(m.page), width, notice))
	b.WriteString("\n\n")
	b.WriteString(m.viewPage())
	b.WriteString("\n")

	if m.mode != inputNone {
		box := components.TitleStyle.Render(m.prompt()) + "\n" + m.input.View()
		b.WriteString("\n" + components.InputBoxStyle.Width(min(width-2, 60)).Render(box) + "\n")
	}

	b.WriteString("\n" + m.help.View(m.keys) + "\n")
	b.WriteString(components.RenderStatusBar(components.StatusBarProps{
		Width: width,
		Left:  "Campfire · " + m.projectName(),
		Right: m.lastEvent,
	}))
	return b.String()
}

func (m Model) viewPage() string {
	if m.loading[m.page] {
		return m.spinner.View() + " Loading " + m.page.String() + "..."
	}
	ok, err := m.loaded(m.page)
	if err != nil {
		return components.OverdueStyle.Render(fmt.Sprintf("Failed to load %s: %v", m.page, err)) +
			"\n" + components.SubtleStyle.Render("Press "+m.keys.Reload.Help().Key+" to retry")
	}
	if !ok {
		return ""
	}

	switch m.page {
	case PageTodos:
		return m.viewTodos()
	case PageMessages:
		return m.viewMessages()
	case PagePeople:
		return m.viewPeople()
	case PageCalendar:
		return m.viewCalendar()
	default:
		return m.viewOverview()
	}
}
