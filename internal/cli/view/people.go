package view

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/campfire/internal/cli"
	"github.com/thenoetrevino/campfire/internal/cli/styles"
	"github.com/thenoetrevino/campfire/internal/dashboard"
)

// PeopleCmd returns the view people subcommand
func PeopleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "people [project_id]",
		Short: "List the team members tasks can be assigned to",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPeople,
	}

	cli.AddProjectFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runPeople(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		projectID, err := cli.ProjectFromArgs(cmd, c, args)
		if err != nil {
			return f.Fail(err)
		}

		people := dashboard.NewPeople(c.App, projectID, dashboard.WithLogger(c.App.Logger()))
		if err := people.Load(ctx); err != nil {
			return f.FailWithSuggestion(err, "Use 'campfire project list' to see available projects")
		}
		v := people.View()

		if f.Quiet {
			ids := make([]int, 0, len(v.Members))
			for _, m := range v.Members {
				ids = append(ids, m.ID)
			}
			return f.IDs(ids...)
		}
		if f.JSON {
			return f.Payload("members", v.Members)
		}

		f.Println(styles.TitleStyle.Render(v.Project.Name + " · People"))
		for _, m := range v.Members {
			f.Printf("  [%d] %-16s %s\n", m.ID, m.Name, styles.SubtitleStyle.Render(m.Email))
		}
		return nil
	})
}
