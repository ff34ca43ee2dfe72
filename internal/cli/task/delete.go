package task

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/campfire/internal/cli"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <task_id>",
		Short: "Delete a task",
		Long: `Delete a task. The deletion is recorded in the project's activity feed.

Examples:
  campfire task delete 5
  campfire task delete 5 --quiet
`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	taskID, err := cli.ParseID("task", args[0])
	if err != nil {
		return cli.NewFormatter(cmd).Fail(err)
	}

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		task, todos, err := c.TodosForTask(ctx, taskID)
		if err != nil {
			return f.Fail(err)
		}
		if err := todos.DeleteTask(ctx, taskID); err != nil {
			return f.Fail(err)
		}

		if f.Quiet {
			return f.IDs(taskID)
		}
		if f.JSON {
			return f.Payload("deleted", map[string]interface{}{"id": taskID, "title": task.Title})
		}
		f.Printf("✓ Task '%s' deleted\n", task.Title)
		return nil
	})
}
