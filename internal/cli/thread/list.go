package thread

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/campfire/internal/cli"
	"github.com/thenoetrevino/campfire/internal/cli/styles"
)

// ListCmd returns the thread list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List message threads, most recently active first",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		messages, err := board(ctx, c)
		if err != nil {
			return f.Fail(err)
		}
		threads := messages.View().Threads

		if f.Quiet {
			ids := make([]int, 0, len(threads))
			for _, t := range threads {
				ids = append(ids, t.ID)
			}
			return f.IDs(ids...)
		}
		if f.JSON {
			return f.Payload("threads", threads)
		}

		if len(threads) == 0 {
			f.Println("No threads yet")
			return nil
		}
		for _, t := range threads {
			f.Printf("[%d] %s\n", t.ID, styles.TitleStyle.Render(t.Title))
			f.Printf("    %s · %d replies · %s\n",
				t.Author, t.ReplyCount, t.LastActivity.Format("Jan 2, 2006 15:04"))
		}
		return nil
	})
}
