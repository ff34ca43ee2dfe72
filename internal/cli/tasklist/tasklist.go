// Package tasklist holds the commands that organize a project's tasks into
// named, colored lists
package tasklist

import (
	"github.com/spf13/cobra"
)

// ListCmd returns the list parent command
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"lists"},
		Short:   "Manage task lists",
	}

	cmd.AddCommand(IndexCmd())
	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(CollapseCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}
