// Package task holds the to-do commands of a project
// e.g., campfire task ...
package task

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/campfire/internal/cli"
	"github.com/thenoetrevino/campfire/internal/cli/styles"
	"github.com/thenoetrevino/campfire/internal/dashboard"
	"github.com/thenoetrevino/campfire/internal/models"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ToggleCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// taskLine renders one task the way the to-do page lists it
func taskLine(t *models.Task, now time.Time) string {
	line := fmt.Sprintf("%s #%d %s", cli.Checkbox(t.Completed), t.ID, t.Title)
	if t.Completed {
		line = styles.DoneStyle.Render(line)
	}
	if t.DueDate == nil {
		return line
	}

	due := "due " + t.DueDate.Format("Jan 2")
	switch {
	case dashboard.IsOverdue(t, now):
		due = styles.OverdueStyle.Render(due + " (overdue)")
	case dashboard.IsDueSoon(t, now):
		due = styles.DueSoonStyle.Render(due + " (soon)")
	}
	return line + "  " + due
}
