// Package export holds the commands that write the workspace to files
// other tools can open
package export

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/campfire/internal/cli"
	"github.com/thenoetrevino/campfire/internal/store"
)

// ExportCmd returns the export parent command
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export projects to a spreadsheet or a SQLite database",
	}

	cmd.AddCommand(XLSXCmd())
	cmd.AddCommand(SQLiteCmd())

	return cmd
}

func addExportFlags(cmd *cobra.Command, defaultOut string) {
	cmd.Flags().StringP("out", "o", defaultOut, "Output file")
	cmd.Flags().Int("project", 0, "Only export this project")
	cli.AddOutputFlags(cmd)
}

// snapshot copies the store, narrowed to --project when it is set
func snapshot(ctx context.Context, cmd *cobra.Command, c *cli.CLI) (*store.Snapshot, error) {
	snap := c.App.Store().Snapshot()

	projectID, _ := cmd.Flags().GetInt("project")
	if projectID == 0 {
		return snap, nil
	}
	if _, err := c.App.ProjectService.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	return snap.ForProject(projectID), nil
}
