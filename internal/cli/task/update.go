package task

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/campfire/internal/cli"
	"github.com/thenoetrevino/campfire/internal/dashboard"
)

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <task_id>",
		Short: "Edit a task",
		Long: `Edit the title, notes, due date, assignee or list of a task.
Only the flags you pass are changed.

--due takes YYYY-MM-DD or RFC 3339; an empty value clears the due date.
--assignee 0 unassigns the task and --list 0 moves it out of its list.

Examples:
  campfire task update 2 --title "Design the component library v2"
  campfire task update 2 --due 2024-03-01 --assignee 4
  campfire task update 6 --list 1
`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("notes", "", "New notes")
	cmd.Flags().String("due", "", "New due date")
	cmd.Flags().Int("assignee", 0, "Team member ID to assign")
	cmd.Flags().Int("list", 0, "Task list ID to move the task to")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	taskID, err := cli.ParseID("task", args[0])
	if err != nil {
		return cli.NewFormatter(cmd).Fail(err)
	}

	edit := dashboard.TaskEdit{}
	if cmd.Flags().Changed("title") {
		v, _ := cmd.Flags().GetString("title")
		edit.Title = &v
	}
	if cmd.Flags().Changed("notes") {
		v, _ := cmd.Flags().GetString("notes")
		edit.Notes = &v
	}
	if cmd.Flags().Changed("due") {
		v, _ := cmd.Flags().GetString("due")
		edit.DueDate = &v
	}
	if cmd.Flags().Changed("assignee") {
		v, _ := cmd.Flags().GetInt("assignee")
		edit.AssigneeID = &v
	}
	if cmd.Flags().Changed("list") {
		v, _ := cmd.Flags().GetInt("list")
		edit.ListID = &v
	}

	if edit == (dashboard.TaskEdit{}) {
		return cli.NewFormatter(cmd).Fail(
			cli.UsageError("at least one of --title, --notes, --due, --assignee or --list is required"))
	}

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		task, todos, err := c.TodosForTask(ctx, taskID)
		if err != nil {
			return f.Fail(err)
		}
		if edit.ListID != nil && *edit.ListID != 0 {
			if _, ok := findList(todos.View(), *edit.ListID); !ok {
				return f.Fail(errListNotInProject(*edit.ListID, task.ProjectID))
			}
		}
		if edit.AssigneeID != nil && *edit.AssigneeID != 0 {
			if _, err := c.App.TaskService.GetTeamMember(ctx, *edit.AssigneeID); err != nil {
				return f.FailWithSuggestion(err, "Use 'campfire people' to see team members")
			}
		}

		updated, err := todos.UpdateTask(ctx, taskID, edit)
		if err != nil {
			return f.Fail(err)
		}

		if f.Quiet {
			return f.IDs(updated.ID)
		}
		if f.JSON {
			return f.Payload("task", updated)
		}
		f.Printf("✓ Task %d updated\n", updated.ID)
		return nil
	})
}
