// Package thread holds the message board commands
// e.g., campfire thread ...
package thread

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/campfire/internal/cli"
	"github.com/thenoetrevino/campfire/internal/dashboard"
	"github.com/thenoetrevino/campfire/internal/models"
	messageservice "github.com/thenoetrevino/campfire/internal/services/message"
)

// ThreadCmd returns the thread parent command
func ThreadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "thread",
		Aliases: []string{"threads", "msg"},
		Short:   "Read and post to the message board",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(NewCmd())
	cmd.AddCommand(ReplyCmd())

	return cmd
}

// board loads the message board controller
func board(ctx context.Context, c *cli.CLI) (*dashboard.Messages, error) {
	messages := dashboard.NewMessages(c.App, dashboard.WithLogger(c.App.Logger()))
	if err := messages.Load(ctx); err != nil {
		return nil, err
	}
	return messages, nil
}

func findThread(view dashboard.MessagesView, id int) (*models.MessageThread, error) {
	for _, t := range view.Threads {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", messageservice.ErrThreadNotFound, id)
}
