package tasklist

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/campfire/internal/cli"
	"github.com/thenoetrevino/campfire/internal/dashboard"
)

// UpdateCmd returns the list update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <list_id>",
		Short: "Rename, describe or recolor a task list",
		Long: `Edit a task list. Fields whose flag is omitted keep their value.

Examples:
  campfire list update 2 --name "Build"
  campfire list update 2 --color "#22C55E"
`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("name", "", "New name")
	cmd.Flags().String("description", "", "New description")
	cmd.Flags().String("color", "", "New color in #RRGGBB format")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	f := cli.NewFormatter(cmd)
	listID, err := cli.ParseID("list", args[0])
	if err != nil {
		return f.Fail(err)
	}

	flags := cmd.Flags()
	if !flags.Changed("name") && !flags.Changed("description") && !flags.Changed("color") {
		return f.Fail(cli.UsageError("at least one of --name, --description or --color is required"))
	}
	if flags.Changed("color") {
		color, _ := flags.GetString("color")
		if err := cli.ValidateColorHex(color); err != nil {
			return f.Fail(err)
		}
	}

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		current, todos, err := c.TodosForList(ctx, listID)
		if err != nil {
			return f.Fail(err)
		}

		in := dashboard.ListInput{Name: current.Name, Description: current.Description}
		if flags.Changed("name") {
			in.Name, _ = flags.GetString("name")
		}
		if flags.Changed("description") {
			in.Description, _ = flags.GetString("description")
		}
		if flags.Changed("color") {
			in.Color, _ = flags.GetString("color")
		}

		list, err := todos.EditList(ctx, listID, in)
		if err != nil {
			return f.Fail(err)
		}

		if f.Quiet {
			return f.IDs(list.ID)
		}
		if f.JSON {
			return f.Payload("list", list)
		}
		f.Printf("✓ Task list %d updated\n", list.ID)
		return nil
	})
}
