package view

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/campfire/internal/cli"
	"github.com/thenoetrevino/campfire/internal/cli/styles"
	"github.com/thenoetrevino/campfire/internal/dashboard"
)

// CalendarCmd returns the view calendar subcommand
func CalendarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar [project_id]",
		Short: "Show a project's tasks by due day",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runCalendar,
	}

	cli.AddProjectFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

type calendarDay struct {
	Date  string `json:"date"`
	Tasks []int  `json:"tasks"`
}

func runCalendar(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		projectID, err := cli.ProjectFromArgs(cmd, c, args)
		if err != nil {
			return f.Fail(err)
		}
		if _, err := c.App.ProjectService.GetByID(ctx, projectID); err != nil {
			return f.FailWithSuggestion(err, "Use 'campfire project list' to see available projects")
		}

		calendar := dashboard.NewCalendar(c.App, projectID, dashboard.WithLogger(c.App.Logger()))
		if err := calendar.Load(ctx); err != nil {
			return f.Fail(err)
		}
		v := calendar.View()

		if f.Quiet {
			var ids []int
			for _, d := range v.Days {
				for _, t := range d.Tasks {
					ids = append(ids, t.ID)
				}
			}
			return f.IDs(ids...)
		}
		if f.JSON {
			days := make([]calendarDay, 0, len(v.Days))
			for _, d := range v.Days {
				day := calendarDay{Date: d.Date.Format("2006-01-02")}
				for _, t := range d.Tasks {
					day.Tasks = append(day.Tasks, t.ID)
				}
				days = append(days, day)
			}
			return f.Payload("calendar", map[string]interface{}{
				"days":        days,
				"unscheduled": v.Unscheduled,
			})
		}

		now := c.App.Clock().Now()
		for _, d := range v.Days {
			f.Println(styles.SectionStyle.Render(d.Date.Format("Mon Jan 2, 2006")))
			for _, t := range d.Tasks {
				line := cli.Checkbox(t.Completed) + " #" + strconv.Itoa(t.ID) + " " + t.Title
				switch {
				case t.Completed:
					line = styles.DoneStyle.Render(line)
				case dashboard.IsOverdue(t, now):
					line = styles.OverdueStyle.Render(line)
				case dashboard.IsDueSoon(t, now):
					line = styles.DueSoonStyle.Render(line)
				}
				f.Printf("  %s\n", line)
			}
		}
		if v.Unscheduled > 0 {
			f.Printf("\n%d tasks have no due date\n", v.Unscheduled)
		}
		return nil
	})
}
