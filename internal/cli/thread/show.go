package thread

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/campfire/internal/cli"
	"github.com/thenoetrevino/campfire/internal/cli/styles"
	"github.com/thenoetrevino/campfire/internal/render"
)

// ShowCmd returns the thread show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <thread_id>",
		Short: "Show a thread and its replies",
		Long: `Show a thread's opening message and replies, oldest first.
Message bodies are rendered as markdown.

Examples:
  campfire thread show 1
  campfire thread show 1 --width 100
  campfire thread show 1 --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}

	cmd.Flags().Int("width", 76, "Wrap message bodies at this width")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	threadID, err := cli.ParseID("thread", args[0])
	if err != nil {
		return cli.NewFormatter(cmd).Fail(err)
	}
	width, _ := cmd.Flags().GetInt("width")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		messages, err := board(ctx, c)
		if err != nil {
			return f.Fail(err)
		}
		thread, err := findThread(messages.View(), threadID)
		if err != nil {
			return f.FailWithSuggestion(err, "Use 'campfire thread list' to see available threads")
		}
		posts, err := messages.OpenThread(ctx, threadID)
		if err != nil {
			return f.Fail(err)
		}

		if f.Quiet {
			ids := make([]int, 0, len(posts))
			for _, m := range posts {
				ids = append(ids, m.ID)
			}
			return f.IDs(ids...)
		}
		if f.JSON {
			return f.Payload("thread", map[string]interface{}{
				"thread":   thread,
				"messages": posts,
			})
		}

		f.Println(styles.TitleStyle.Render(thread.Title))
		for _, m := range posts {
			f.Println(styles.SectionStyle.Render(m.Author) + " " +
				styles.SubtitleStyle.Render(m.Timestamp.Format("Jan 2, 2006 15:04")))
			f.Println(render.Markdown(m.Content, width))
		}
		return nil
	})
}
