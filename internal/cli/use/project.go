package use

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/campfire/internal/cli"
)

// ProjectCmd returns the use project subcommand
func ProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project [project-id]",
		Short: "Set project context for current shell session",
		Long: `Set the current project context using environment variables.
This command outputs shell commands that should be evaluated:

  eval $(campfire use project 3)              # Use project 3
  eval $(campfire use project --clear)        # Clear project context
  campfire use project --show                 # Show current project

The CAMPFIRE_PROJECT environment variable will be set in your current shell
session only. The --project flag on other commands takes precedence over
this environment variable.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runUseProject,
	}

	cmd.Flags().Bool("clear", false, "Clear the current project context")
	cmd.Flags().Bool("show", false, "Show the current project context")
	cmd.Flags().Bool("dry-run", false, "Show what would be exported without outputting shell commands")

	return cmd
}

func runUseProject(cmd *cobra.Command, args []string) error {
	clearFlag, _ := cmd.Flags().GetBool("clear")
	showFlag, _ := cmd.Flags().GetBool("show")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	if showFlag {
		return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
			return showCurrentProject(ctx, c, f)
		})
	}

	if clearFlag {
		if dryRun {
			fmt.Fprintf(errOut, "Would clear %s\n", cli.EnvProject)
			return nil
		}
		fmt.Fprintf(out, "unset %s\n", cli.EnvProject)
		fmt.Fprintf(errOut, "Cleared project context\n")
		return nil
	}

	if len(args) == 0 {
		return cli.NewFormatter(cmd).Fail(cli.UsageError("project ID required\nUsage: eval $(campfire use project <project-id>)"))
	}

	projectID, err := cli.ParseID("project", args[0])
	if err != nil {
		return cli.NewFormatter(cmd).Fail(err)
	}

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		project, err := c.App.ProjectService.GetByID(ctx, projectID)
		if err != nil {
			return f.FailWithSuggestion(err, "Use 'campfire project list' to see available projects")
		}

		if dryRun {
			fmt.Fprintf(errOut, "Would set %s=%d (%s)\n", cli.EnvProject, projectID, project.Name)
			return nil
		}

		// Shell export goes to stdout for eval
		fmt.Fprintf(out, "export %s=%d\n", cli.EnvProject, projectID)
		fmt.Fprintf(errOut, "Now using project %d: %s\n", projectID, project.Name)
		return nil
	})
}

func showCurrentProject(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
	current := os.Getenv(cli.EnvProject)
	if current == "" {
		f.Println("No project context set")
		f.Println("Use 'eval $(campfire use project <project-id>)' to set one")
		return nil
	}

	projectID, err := cli.ParseID("project", current)
	if err != nil {
		f.Printf("Invalid project context: %s\n", current)
		return nil
	}

	project, err := c.App.ProjectService.GetByID(ctx, projectID)
	if err != nil {
		f.Printf("Current project: %d (project not found)\n", projectID)
		return nil
	}

	f.Printf("Current project: %d (%s)\n", projectID, project.Name)
	return nil
}
