package project

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/campfire/internal/cli"
)

// ListCmd returns the project list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all projects",
		Long:  "List all projects with their details.",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		projects, err := c.App.ProjectService.GetAll(ctx)
		if err != nil {
			return f.Fail(err)
		}

		// Output in appropriate format
		if f.Quiet {
			ids := make([]int, 0, len(projects))
			for _, p := range projects {
				ids = append(ids, p.ID)
			}
			return f.IDs(ids...)
		}

		if f.JSON {
			return f.Payload("projects", projects)
		}

		// Human-readable output
		if len(projects) == 0 {
			f.Println("No projects found")
			return nil
		}

		f.Printf("Found %d projects:\n\n", len(projects))
		for _, p := range projects {
			f.Printf("  [%d] %s", p.ID, p.Name)
			if p.Description != "" {
				f.Printf(" - %s", p.Description)
			}
			f.Println()
		}

		return nil
	})
}
