package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/thenoetrevino/campfire/internal/dashboard"
	"github.com/thenoetrevino/campfire/internal/models"
	"github.com/thenoetrevino/campfire/internal/tui/components"
)

// todoRow is one selectable line of the to-do page: a list header when
// task is nil, otherwise a task (list is nil for unlisted tasks)
type todoRow struct {
	list *models.TaskList
	task *models.Task
}

// todoRows flattens the to-do view in display order
// Tasks of collapsed lists are hidden.
func todoRows(v dashboard.TodosView) []todoRow {
	var rows []todoRow
	for _, lv := range v.Lists {
		rows = append(rows, todoRow{list: lv.List})
		if lv.List.IsCollapsed {
			continue
		}
		for _, t := range lv.Tasks {
			rows = append(rows, todoRow{list: lv.List, task: t})
		}
	}
	for _, t := range v.Unlisted {
		rows = append(rows, todoRow{task: t})
	}
	return rows
}

func (m Model) selectedTodo() (todoRow, bool) {
	rows := todoRows(m.todos.View())
	i := m.cursor[PageTodos]
	if i < 0 || i >= len(rows) {
		return todoRow{}, false
	}
	return rows[i], true
}

func (m Model) updateTodos(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if ok, _ := m.loaded(PageTodos); !ok {
		return m, nil
	}
	if m.moveCursor(msg, len(todoRows(m.todos.View()))) {
		return m, nil
	}

	row, selected := m.selectedTodo()
	switch {
	case key.Matches(msg, m.keys.AddTask):
		m.inputListID = nil
		if row.list != nil {
			m.inputListID = models.IntPtr(row.list.ID)
		}
		return m.startInput(inputAddTask, "What needs to be done?")

	case key.Matches(msg, m.keys.CreateList):
		return m.startInput(inputNewList, "List name")

	case !selected:
		return m, nil

	case key.Matches(msg, m.keys.ToggleTask), key.Matches(msg, m.keys.OpenThread):
		if row.task != nil {
			id := row.task.ID
			return m, m.act(PageTodos, func(ctx context.Context) error {
				_, err := m.todos.ToggleTask(ctx, id)
				return err
			})
		}
		return m, m.collapseList(row.list.ID)

	case key.Matches(msg, m.keys.ToggleList):
		if row.list != nil {
			return m, m.collapseList(row.list.ID)
		}

	case key.Matches(msg, m.keys.DeleteItem):
		if row.task != nil {
			id := row.task.ID
			return m, m.act(PageTodos, func(ctx context.Context) error {
				return m.todos.DeleteTask(ctx, id)
			})
		}
		id := row.list.ID
		return m, m.act(PageTodos, func(ctx context.Context) error {
			return m.todos.DeleteList(ctx, id)
		})
	}
	return m, nil
}

func (m Model) collapseList(listID int) tea.Cmd {
	return m.act(PageTodos, func(ctx context.Context) error {
		_, err := m.todos.ToggleListCollapse(ctx, listID)
		return err
	})
}

func (m Model) addTask(title string, listID *int) tea.Cmd {
	return m.act(PageTodos, func(ctx context.Context) error {
		_, err := m.todos.AddTask(ctx, title, listID)
		return err
	})
}

func (m Model) createList(name string) tea.Cmd {
	return m.act(PageTodos, func(ctx context.Context) error {
		_, err := m.todos.CreateList(ctx, dashboard.ListInput{Name: name})
		return err
	})
}

func (m Model) viewTodos() string {
	v := m.todos.View()
	now := m.app.Clock().Now()

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n\n",
		components.TitleStyle.Render("To-dos"),
		components.SubtleStyle.Render(fmt.Sprintf("%d/%d completed", v.Stats.Completed, v.Stats.Total)))

	rows := todoRows(v)
	if len(rows) == 0 {
		b.WriteString(components.SubtleStyle.Render("No tasks yet. Press a to add one."))
		return b.String()
	}

	stats := map[int]dashboard.Stats{}
	for _, lv := range v.Lists {
		stats[lv.List.ID] = lv.Stats
	}

	unlistedHeader := false
	for i, row := range rows {
		if row.list == nil && !unlistedHeader {
			unlistedHeader = true
			b.WriteString("\n" + components.TitleStyle.Render("No list") + "\n")
		}

		var line string
		if row.task == nil {
			line = listHeader(row.list, stats[row.list.ID])
		} else {
			line = "  " + taskLine(row.task, now)
		}
		if i == m.cursor[PageTodos] {
			line = components.SelectedStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func listHeader(l *models.TaskList, s dashboard.Stats) string {
	marker := "▾"
	if l.IsCollapsed {
		marker = "▸"
	}
	name := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(l.Color)).Render(l.Name)
	return fmt.Sprintf("%s %s %s", marker, name,
		components.SubtleStyle.Render(fmt.Sprintf("%d/%d", s.Completed, s.Total)))
}

func taskLine(t *models.Task, now time.Time) string {
	box := "[ ]"
	if t.Completed {
		box = "[x]"
	}
	line := box + " " + t.Title
	if t.Completed {
		return components.DoneStyle.Render(line)
	}
	if t.DueDate == nil {
		return line
	}

	due := t.DueDate.Format("Jan 2")
	switch {
	case dashboard.IsOverdue(t, now):
		due = components.OverdueStyle.Render(due + " overdue")
	case dashboard.IsDueSoon(t, now):
		due = components.DueSoonStyle.Render(due + " due soon")
	default:
		due = components.SubtleStyle.Render(due)
	}
	return line + "  " + due
}
