package view

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/campfire/internal/cli"
	"github.com/thenoetrevino/campfire/internal/cli/styles"
	"github.com/thenoetrevino/campfire/internal/dashboard"
)

// OverviewCmd returns the view overview subcommand
func OverviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "overview [project_id]",
		Short: "Show a project's progress and recent activity",
		Long: `Show a project card with completion, overdue and due-soon counts
followed by the most recent activity.

Examples:
  campfire overview 1
  campfire overview --json
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runOverview,
	}

	cli.AddProjectFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runOverview(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		projectID, err := cli.ProjectFromArgs(cmd, c, args)
		if err != nil {
			return f.Fail(err)
		}

		overview := dashboard.NewOverview(c.App, projectID, dashboard.WithLogger(c.App.Logger()))
		if err := overview.Load(ctx); err != nil {
			return f.FailWithSuggestion(err, "Use 'campfire project list' to see available projects")
		}
		v := overview.View()
		recent := v.RecentActivities()

		if f.Quiet {
			return f.IDs(v.Project.ID)
		}
		if f.JSON {
			return f.Payload("overview", map[string]interface{}{
				"project":    v.Project,
				"stats":      v.Stats,
				"activities": recent,
			})
		}

		var card strings.Builder
		card.WriteString(styles.TitleStyle.Render(v.Project.Name) + "\n")
		if v.Project.Description != "" {
			card.WriteString(styles.SubtitleStyle.Render(v.Project.Description) + "\n")
		}
		fmt.Fprintf(&card, "\n%s %s\n\n",
			styles.ProgressBar(v.Stats.Percent, 30),
			styles.ValueStyle.Render(fmt.Sprintf("%d%% complete", v.Stats.Percent)))
		fmt.Fprintf(&card, "%s %d/%d done\n", styles.LabelStyle.Render("Tasks:"), v.Stats.Completed, v.Stats.Total)
		fmt.Fprintf(&card, "%s %s\n", styles.LabelStyle.Render("Overdue:"), styles.OverdueStyle.Render(fmt.Sprint(v.Stats.Overdue)))
		fmt.Fprintf(&card, "%s %s\n", styles.LabelStyle.Render("Due soon:"), styles.DueSoonStyle.Render(fmt.Sprint(v.Stats.DueSoon)))
		fmt.Fprintf(&card, "%s %d", styles.LabelStyle.Render("Members:"), v.Project.MemberCount)
		f.Println(styles.RenderCard(card.String()))

		f.Println(styles.SectionStyle.Render("Recent activity"))
		if len(recent) == 0 {
			f.Println("  No activity yet")
			return nil
		}
		for _, a := range recent {
			f.Printf("  %s  %s\n",
				styles.SubtitleStyle.Render(a.Timestamp.Format("Jan 2 15:04")),
				a.Details)
		}
		return nil
	})
}
