package export

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/campfire/internal/cli"
	workbook "github.com/thenoetrevino/campfire/internal/export"
	"github.com/thenoetrevino/campfire/internal/store"
)

// XLSXCmd returns the export xlsx subcommand
func XLSXCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "xlsx",
		Short: "Write an Excel workbook",
		Long: `Write a workbook with Summary, Tasks, Lists and Activity sheets.

Examples:
  campfire export xlsx --out report.xlsx
  campfire export xlsx --project 1 -o website.xlsx
`,
		Args: cobra.NoArgs,
		RunE: runXLSX,
	}

	addExportFlags(cmd, "campfire.xlsx")

	return cmd
}

func runXLSX(cmd *cobra.Command, args []string) error {
	out, _ := cmd.Flags().GetString("out")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		snap, err := snapshot(ctx, cmd, c)
		if err != nil {
			return f.Fail(err)
		}

		if err := writeXLSXFile(out, snap, c); err != nil {
			return f.Fail(err)
		}

		if f.Quiet {
			f.Println(out)
			return nil
		}
		if f.JSON {
			return f.Payload("export", map[string]interface{}{
				"path":     out,
				"projects": len(snap.Projects),
				"tasks":    len(snap.Tasks),
			})
		}
		f.Printf("✓ Wrote %d projects and %d tasks to %s\n", len(snap.Projects), len(snap.Tasks), out)
		return nil
	})
}

func writeXLSXFile(path string, snap *store.Snapshot, c *cli.CLI) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return workbook.WriteXLSX(file, snap, c.App.Clock().Now())
}
