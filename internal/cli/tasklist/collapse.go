package tasklist

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/campfire/internal/cli"
)

// CollapseCmd returns the list collapse subcommand
func CollapseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collapse <list_id>",
		Short: "Collapse or expand a task list",
		Args:  cobra.ExactArgs(1),
		RunE:  runCollapse,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runCollapse(cmd *cobra.Command, args []string) error {
	listID, err := cli.ParseID("list", args[0])
	if err != nil {
		return cli.NewFormatter(cmd).Fail(err)
	}

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		_, todos, err := c.TodosForList(ctx, listID)
		if err != nil {
			return f.Fail(err)
		}

		list, err := todos.ToggleListCollapse(ctx, listID)
		if err != nil {
			return f.Fail(err)
		}

		if f.Quiet {
			return f.IDs(list.ID)
		}
		if f.JSON {
			return f.Payload("list", list)
		}
		if list.IsCollapsed {
			f.Printf("✓ Task list '%s' collapsed\n", list.Name)
		} else {
			f.Printf("✓ Task list '%s' expanded\n", list.Name)
		}
		return nil
	})
}
