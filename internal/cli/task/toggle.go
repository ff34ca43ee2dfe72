package task

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/campfire/internal/cli"
)

// ToggleCmd returns the task toggle subcommand
func ToggleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle <task_id>",
		Short: "Complete or reopen a task",
		Long: `Flip a task between completed and open.

Examples:
  campfire task toggle 2
  campfire task toggle 2 --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runToggle,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runToggle(cmd *cobra.Command, args []string) error {
	taskID, err := cli.ParseID("task", args[0])
	if err != nil {
		return cli.NewFormatter(cmd).Fail(err)
	}

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		_, todos, err := c.TodosForTask(ctx, taskID)
		if err != nil {
			return f.Fail(err)
		}

		task, err := todos.ToggleTask(ctx, taskID)
		if err != nil {
			return f.Fail(err)
		}

		if f.Quiet {
			return f.IDs(task.ID)
		}
		if f.JSON {
			return f.Payload("task", task)
		}
		if task.Completed {
			f.Printf("✓ Task %d completed\n", task.ID)
		} else {
			f.Printf("✓ Task %d reopened\n", task.ID)
		}
		return nil
	})
}
