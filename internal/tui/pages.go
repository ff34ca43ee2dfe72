package tui

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/campfire/internal/tui/components"
)

func (m Model) viewOverview() string {
	v := m.overview.View()

	var card strings.Builder
	card.WriteString(components.TitleStyle.Render(v.Project.Name) + "\n")
	if v.Project.Description != "" {
		card.WriteString(components.SubtleStyle.Render(v.Project.Description) + "\n")
	}
	fmt.Fprintf(&card, "\n%s %d%%\n\n", m.progress.ViewAs(float64(v.Stats.Percent)/100), v.Stats.Percent)
	fmt.Fprintf(&card, "%d/%d tasks done · %s · %s · %d members",
		v.Stats.Completed, v.Stats.Total,
		components.OverdueStyle.Render(fmt.Sprintf("%d overdue", v.Stats.Overdue)),
		components.DueSoonStyle.Render(fmt.Sprintf("%d due soon", v.Stats.DueSoon)),
		v.Project.MemberCount)

	var b strings.Builder
	b.WriteString(components.CardStyle.Render(card.String()) + "\n\n")
	b.WriteString(components.TitleStyle.Render("Recent activity") + "\n")

	recent := v.RecentActivities()
	if len(recent) == 0 {
		b.WriteString(components.SubtleStyle.Render("No activity yet"))
		return b.String()
	}
	for _, a := range recent {
		fmt.Fprintf(&b, "%s  %s\n",
			components.SubtleStyle.Render(a.Timestamp.Format("Jan 2 15:04")),
			a.Details)
	}
	return b.String()
}

func (m Model) viewPeople() string {
	v := m.people.View()

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n\n",
		components.TitleStyle.Render("People"),
		components.SubtleStyle.Render(fmt.Sprintf("%d on %s", v.Project.MemberCount, v.Project.Name)))
	for i, p := range v.Members {
		line := fmt.Sprintf("%-18s %s", p.Name, components.SubtleStyle.Render(p.Email))
		if i == m.cursor[PagePeople] {
			line = components.SelectedStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m Model) viewCalendar() string {
	v := m.calendar.View()
	now := m.app.Clock().Now()

	var b strings.Builder
	b.WriteString(components.TitleStyle.Render("Calendar") + "\n")
	if len(v.Days) == 0 {
		b.WriteString("\n" + components.SubtleStyle.Render("Nothing scheduled"))
	}
	for _, d := range v.Days {
		b.WriteString("\n" + components.NormalStyle.Bold(true).Render(d.Date.Format("Mon Jan 2")) + "\n")
		for _, t := range d.Tasks {
			b.WriteString("  " + taskLine(t, now) + "\n")
		}
	}
	if v.Unscheduled > 0 {
		fmt.Fprintf(&b, "\n%s\n", components.SubtleStyle.Render(
			fmt.Sprintf("%d tasks without a due date", v.Unscheduled)))
	}
	return b.String()
}
