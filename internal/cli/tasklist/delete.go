package tasklist

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/campfire/internal/cli"
	"github.com/thenoetrevino/campfire/internal/dashboard"
)

// DeleteCmd returns the list delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <list_id>",
		Short: "Delete an empty task list",
		Long: `Delete a task list. Lists that still hold tasks cannot be deleted;
move or delete their tasks first.

Examples:
  campfire list delete 3
`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	listID, err := cli.ParseID("list", args[0])
	if err != nil {
		return cli.NewFormatter(cmd).Fail(err)
	}

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		list, todos, err := c.TodosForList(ctx, listID)
		if err != nil {
			return f.Fail(err)
		}

		if err := todos.DeleteList(ctx, listID); err != nil {
			if errors.Is(err, dashboard.ErrListHasTasks) {
				return f.FailWithSuggestion(err, "Use 'campfire task update <id> --list 0' to move tasks out first")
			}
			return f.Fail(err)
		}

		if f.Quiet {
			return f.IDs(listID)
		}
		if f.JSON {
			return f.Payload("deleted", map[string]interface{}{"id": listID, "name": list.Name})
		}
		f.Printf("✓ Task list '%s' deleted\n", list.Name)
		return nil
	})
}
