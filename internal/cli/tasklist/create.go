package tasklist

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/campfire/internal/cli"
	"github.com/thenoetrevino/campfire/internal/dashboard"
)

// CreateCmd returns the list create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a task list",
		Long: `Create a task list in a project.

Examples:
  campfire list create "QA" --color "#F97316"
  campfire list create "Backlog" --description "Someday, maybe" --project 2
`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCreate,
	}

	cli.AddProjectFlag(cmd)
	cmd.Flags().String("description", "", "List description")
	cmd.Flags().String("color", "", "List color in #RRGGBB format")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	description, _ := cmd.Flags().GetString("description")
	color, _ := cmd.Flags().GetString("color")
	if color != "" {
		if err := cli.ValidateColorHex(color); err != nil {
			return cli.NewFormatter(cmd).Fail(err)
		}
	}
	in := dashboard.ListInput{
		Name:        strings.Join(args, " "),
		Description: description,
		Color:       color,
	}

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		projectID, err := cli.GetProjectID(cmd, c)
		if err != nil {
			return f.Fail(err)
		}
		_, todos, err := c.Todos(ctx, projectID)
		if err != nil {
			return f.FailWithSuggestion(err, "Use 'campfire project list' to see available projects")
		}

		list, err := todos.CreateList(ctx, in)
		if err != nil {
			return f.Fail(err)
		}

		if f.Quiet {
			return f.IDs(list.ID)
		}
		if f.JSON {
			return f.Payload("list", list)
		}
		f.Printf("✓ Task list '%s' created (ID: %d)\n", list.Name, list.ID)
		return nil
	})
}
