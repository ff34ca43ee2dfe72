package project

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/campfire/internal/cli"
	"github.com/thenoetrevino/campfire/internal/cli/styles"
)

// ShowCmd returns the project show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <project_id>",
		Short: "Show one project",
		Long: `Show a project with its member and task counts.

Examples:
  campfire project show 1
  campfire project show 1 --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	projectID, err := cli.ParseID("project", args[0])
	if err != nil {
		return cli.NewFormatter(cmd).Fail(err)
	}

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		project, err := c.App.ProjectService.GetByID(ctx, projectID)
		if err != nil {
			return f.FailWithSuggestion(err, "Use 'campfire project list' to see available projects")
		}
		taskCount, err := c.App.ProjectService.GetTaskCount(ctx, projectID)
		if err != nil {
			return f.Fail(err)
		}

		if f.Quiet {
			return f.IDs(project.ID)
		}
		if f.JSON {
			return f.Payload("project", map[string]interface{}{
				"id":           project.ID,
				"name":         project.Name,
				"description":  project.Description,
				"created_at":   project.CreatedAt,
				"member_count": project.MemberCount,
				"task_count":   taskCount,
			})
		}

		f.Println(styles.TitleStyle.Render(project.Name))
		if project.Description != "" {
			f.Println(styles.SubtitleStyle.Render(project.Description))
		}
		f.Println()
		f.Printf("%s %d\n", styles.LabelStyle.Render("ID:"), project.ID)
		f.Printf("%s %s\n", styles.LabelStyle.Render("Created:"), project.CreatedAt.Format("Jan 2, 2006"))
		f.Printf("%s %d\n", styles.LabelStyle.Render("Members:"), project.MemberCount)
		f.Printf("%s %d\n", styles.LabelStyle.Render("Tasks:"), taskCount)
		return nil
	})
}
