package task

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/campfire/internal/cli"
	"github.com/thenoetrevino/campfire/internal/cli/styles"
	"github.com/thenoetrevino/campfire/internal/dashboard"
	"github.com/thenoetrevino/campfire/internal/models"
	tasklistservice "github.com/thenoetrevino/campfire/internal/services/tasklist"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the tasks of a project",
		Long: `List a project's tasks grouped by task list, newest first.

Examples:
  campfire task list --project 1
  campfire task list --list 2
  campfire task list --json
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cli.AddProjectFlag(cmd)
	cmd.Flags().Int("list", 0, "Only show tasks in this task list")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	listFilter, _ := cmd.Flags().GetInt("list")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		projectID, err := cli.GetProjectID(cmd, c)
		if err != nil {
			return f.Fail(err)
		}
		project, todos, err := c.Todos(ctx, projectID)
		if err != nil {
			return f.FailWithSuggestion(err, "Use 'campfire project list' to see available projects")
		}
		view := todos.View()

		tasks := view.Tasks
		if listFilter != 0 {
			lv, ok := findList(view, listFilter)
			if !ok {
				return f.Fail(errListNotInProject(listFilter, projectID))
			}
			tasks = lv.Tasks
		}

		if f.Quiet {
			ids := make([]int, 0, len(tasks))
			for _, t := range tasks {
				ids = append(ids, t.ID)
			}
			return f.IDs(ids...)
		}
		if f.JSON {
			return f.Payload("tasks", tasks)
		}

		now := c.App.Clock().Now()
		f.Println(styles.TitleStyle.Render(project.Name))
		f.Printf("%d/%d completed (%d%%)\n", view.Stats.Completed, view.Stats.Total, view.Stats.Percent)

		for _, lv := range view.Lists {
			if listFilter != 0 && lv.List.ID != listFilter {
				continue
			}
			f.Println(styles.SectionStyle.Render(
				styles.ColoredText(lv.List.Name, lv.List.Color)))
			printTasks(f, lv.Tasks, lv.List, now)
		}
		if listFilter == 0 && len(view.Unlisted) > 0 {
			f.Println(styles.SectionStyle.Render("No list"))
			printTasks(f, view.Unlisted, nil, now)
		}
		return nil
	})
}

func printTasks(f *cli.OutputFormatter, tasks []*models.Task, list *models.TaskList, now time.Time) {
	if list != nil && list.IsCollapsed {
		f.Printf("  (collapsed, %d tasks)\n", len(tasks))
		return
	}
	if len(tasks) == 0 {
		f.Println("  No tasks yet")
		return
	}
	for _, t := range tasks {
		f.Printf("  %s\n", taskLine(t, now))
	}
}

func findList(view dashboard.TodosView, listID int) (dashboard.ListView, bool) {
	for _, lv := range view.Lists {
		if lv.List.ID == listID {
			return lv, true
		}
	}
	return dashboard.ListView{}, false
}

func errListNotInProject(listID, projectID int) error {
	return fmt.Errorf("%w: list %d is not in project %d", tasklistservice.ErrTaskListNotFound, listID, projectID)
}
