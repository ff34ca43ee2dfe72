// Package view prints the read-only dashboard pages of a project
// e.g., campfire overview 1
package view

import (
	"github.com/spf13/cobra"
)

// Commands returns the page commands, which sit directly under the root
func Commands() []*cobra.Command {
	return []*cobra.Command{
		OverviewCmd(),
		PeopleCmd(),
		CalendarCmd(),
	}
}
