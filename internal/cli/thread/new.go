package thread

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/campfire/internal/cli"
)

// NewCmd returns the thread new subcommand
func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new <title>",
		Short: "Start a message thread",
		Long: `Start a thread with a title and an opening message.

Examples:
  campfire thread new "Retro" --message "What went well this sprint?"
`,
		Args: cobra.MinimumNArgs(1),
		RunE: runNew,
	}

	cmd.Flags().StringP("message", "m", "", "Opening message (required)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runNew(cmd *cobra.Command, args []string) error {
	title := strings.Join(args, " ")
	body, _ := cmd.Flags().GetString("message")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		messages, err := board(ctx, c)
		if err != nil {
			return f.Fail(err)
		}

		thread, err := messages.CreateThread(ctx, title, body)
		if err != nil {
			return f.Fail(err)
		}

		if f.Quiet {
			return f.IDs(thread.ID)
		}
		if f.JSON {
			return f.Payload("thread", thread)
		}
		f.Printf("✓ Thread '%s' started (ID: %d)\n", thread.Title, thread.ID)
		return nil
	})
}
