package export

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/campfire/internal/cli"
	"github.com/thenoetrevino/campfire/internal/database"
)

// SQLiteCmd returns the export sqlite subcommand
func SQLiteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sqlite",
		Short: "Write a SQLite database",
		Long: `Write every collection into a fresh SQLite database. An existing
file at the output path is replaced.

Examples:
  campfire export sqlite --out campfire.db
  campfire export sqlite --project 2 --json
`,
		Args: cobra.NoArgs,
		RunE: runSQLite,
	}

	addExportFlags(cmd, "campfire.db")

	return cmd
}

func runSQLite(cmd *cobra.Command, args []string) error {
	out, _ := cmd.Flags().GetString("out")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		snap, err := snapshot(ctx, cmd, c)
		if err != nil {
			return f.Fail(err)
		}

		counts, err := database.WriteSnapshot(ctx, out, snap)
		if err != nil {
			return f.Fail(err)
		}

		if f.Quiet {
			f.Println(out)
			return nil
		}
		if f.JSON {
			return f.Payload("export", map[string]interface{}{
				"path":   out,
				"counts": counts,
			})
		}
		f.Printf("✓ Wrote %d projects, %d tasks and %d activities to %s\n",
			counts.Projects, counts.Tasks, counts.Activities, out)
		return nil
	})
}
