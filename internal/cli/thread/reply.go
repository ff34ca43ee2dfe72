package thread

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/campfire/internal/cli"
)

// ReplyCmd returns the thread reply subcommand
func ReplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reply <thread_id> <message>",
		Short: "Reply to a thread",
		Long: `Post a reply to a thread. The thread moves to the top of the board.

Examples:
  campfire thread reply 2 "March 1st works for design"
`,
		Args: cobra.MinimumNArgs(2),
		RunE: runReply,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runReply(cmd *cobra.Command, args []string) error {
	threadID, err := cli.ParseID("thread", args[0])
	if err != nil {
		return cli.NewFormatter(cmd).Fail(err)
	}
	content := strings.Join(args[1:], " ")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		messages, err := board(ctx, c)
		if err != nil {
			return f.Fail(err)
		}

		reply, err := messages.Reply(ctx, threadID, content)
		if err != nil {
			return f.Fail(err)
		}

		if f.Quiet {
			return f.IDs(reply.ID)
		}
		if f.JSON {
			return f.Payload("message", reply)
		}
		f.Printf("✓ Reply posted to thread %d\n", threadID)
		return nil
	})
}
