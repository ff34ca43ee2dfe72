package task

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/campfire/internal/cli"
	"github.com/thenoetrevino/campfire/internal/models"
)

// AddCmd returns the task add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task to a project",
		Long: `Add a task to a project, optionally inside one of its task lists.
The creation is recorded in the project's activity feed.

Examples:
  campfire task add "Write the launch email"
  campfire task add "Fix the header" --list 2 --project 1
  campfire task add "Ship it" --quiet
`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAdd,
	}

	cli.AddProjectFlag(cmd)
	cmd.Flags().Int("list", 0, "Task list to add the task to")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	title := strings.Join(args, " ")
	listID, _ := cmd.Flags().GetInt("list")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		projectID, err := cli.GetProjectID(cmd, c)
		if err != nil {
			return f.Fail(err)
		}
		_, todos, err := c.Todos(ctx, projectID)
		if err != nil {
			return f.FailWithSuggestion(err, "Use 'campfire project list' to see available projects")
		}

		var list *int
		if listID != 0 {
			if _, ok := findList(todos.View(), listID); !ok {
				return f.FailWithSuggestion(errListNotInProject(listID, projectID),
					"Use 'campfire list list' to see the project's task lists")
			}
			list = models.IntPtr(listID)
		}

		task, err := todos.AddTask(ctx, title, list)
		if err != nil {
			return f.Fail(err)
		}

		if f.Quiet {
			return f.IDs(task.ID)
		}
		if f.JSON {
			return f.Payload("task", task)
		}
		f.Printf("✓ Task '%s' added (ID: %d)\n", task.Title, task.ID)
		return nil
	})
}
