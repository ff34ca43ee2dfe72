package tasklist

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/campfire/internal/cli"
	"github.com/thenoetrevino/campfire/internal/cli/styles"
)

// IndexCmd returns the list list subcommand
func IndexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show the task lists of a project",
		Long: `Show a project's task lists with their progress.

Examples:
  campfire list list --project 1
  campfire list ls --json
`,
		Args: cobra.NoArgs,
		RunE: runIndex,
	}

	cli.AddProjectFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

type listSummary struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
	IsCollapsed bool   `json:"is_collapsed"`
	Total       int    `json:"total"`
	Completed   int    `json:"completed"`
	Percent     int    `json:"percent"`
}

func runIndex(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		projectID, err := cli.GetProjectID(cmd, c)
		if err != nil {
			return f.Fail(err)
		}
		project, todos, err := c.Todos(ctx, projectID)
		if err != nil {
			return f.FailWithSuggestion(err, "Use 'campfire project list' to see available projects")
		}
		view := todos.View()

		if f.Quiet {
			ids := make([]int, 0, len(view.Lists))
			for _, lv := range view.Lists {
				ids = append(ids, lv.List.ID)
			}
			return f.IDs(ids...)
		}
		if f.JSON {
			summaries := make([]listSummary, 0, len(view.Lists))
			for _, lv := range view.Lists {
				summaries = append(summaries, listSummary{
					ID:          lv.List.ID,
					Name:        lv.List.Name,
					Description: lv.List.Description,
					Color:       lv.List.Color,
					IsCollapsed: lv.List.IsCollapsed,
					Total:       lv.Stats.Total,
					Completed:   lv.Stats.Completed,
					Percent:     lv.Stats.Percent,
				})
			}
			return f.Payload("lists", summaries)
		}

		if len(view.Lists) == 0 {
			f.Printf("No task lists in %s\n", project.Name)
			return nil
		}

		f.Printf("Task lists in %s:\n\n", project.Name)
		for _, lv := range view.Lists {
			marker := "▾"
			if lv.List.IsCollapsed {
				marker = "▸"
			}
			f.Printf("  %s [%d] %s  %s %d/%d\n",
				marker,
				lv.List.ID,
				styles.ColoredText(lv.List.Name, lv.List.Color),
				styles.ProgressBar(lv.Stats.Percent, 10),
				lv.Stats.Completed,
				lv.Stats.Total)
		}
		return nil
	})
}
