// Package cmd wires the campfire subcommands under one root command.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/campfire/internal/app"
	"github.com/thenoetrevino/campfire/internal/cli"
	"github.com/thenoetrevino/campfire/internal/cli/export"
	"github.com/thenoetrevino/campfire/internal/cli/project"
	"github.com/thenoetrevino/campfire/internal/cli/styles"
	"github.com/thenoetrevino/campfire/internal/cli/task"
	"github.com/thenoetrevino/campfire/internal/cli/tasklist"
	"github.com/thenoetrevino/campfire/internal/cli/thread"
	"github.com/thenoetrevino/campfire/internal/cli/use"
	"github.com/thenoetrevino/campfire/internal/cli/view"
	"github.com/thenoetrevino/campfire/internal/config"
	"github.com/thenoetrevino/campfire/internal/events"
	"github.com/thenoetrevino/campfire/internal/logging"
	"github.com/thenoetrevino/campfire/internal/tui"
)

var (
	configPath string
	noLatency  bool

	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "campfire",
	Short: "Campfire - a project dashboard for the terminal",
	Long: `Campfire is a project dashboard with to-dos, a message board, people and
a calendar. Run it without arguments to open the dashboard, or use the
subcommands for scripting.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runDashboard,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/campfire/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noLatency, "no-latency", false, "Disable simulated service latency")
	rootCmd.Flags().Int("project", 0, "Project to open (default from config)")

	rootCmd.AddCommand(
		project.ProjectCmd(),
		task.TaskCmd(),
		tasklist.ListCmd(),
		thread.ThreadCmd(),
		export.ExportCmd(),
		use.UseCmd(),
		tuiCmd(),
	)
	rootCmd.AddCommand(view.Commands()...)
}

// setup loads configuration and logging before any subcommand runs
func setup(cmd *cobra.Command, _ []string) error {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if noLatency {
		cfg.NoLatency = true
	}

	styles.Init(cfg.ColorScheme)

	// Logging failures are not fatal; the default logger still works
	if closer, err := logging.Init("", cfg.SlogLevel()); err == nil {
		logCloser = closer
	}

	cmd.SetContext(cli.ContextWithConfig(cmd.Context(), cfg))
	return nil
}

func tuiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive dashboard",
		Args:  cobra.NoArgs,
		RunE:  runDashboard,
	}
	cmd.Flags().Int("project", 0, "Project to open (default from config)")
	return cmd
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg := cli.ConfigFromContext(ctx)

	projectID, _ := cmd.Flags().GetInt("project")
	if projectID <= 0 {
		projectID = cfg.DefaultProject
	}
	if projectID <= 0 {
		projectID = 1
	}

	bus := events.NewBus()
	if err := bus.Subscribe(projectID); err != nil {
		return cli.WithCode(cli.ExitError, err)
	}

	a, err := app.Bootstrap(cfg, app.WithEventPublisher(bus))
	if err != nil {
		return cli.WithCode(cli.ExitError, err)
	}
	defer a.Close()

	if err := tui.Run(ctx, a, cfg, projectID); err != nil {
		return cli.WithCode(cli.ExitError, err)
	}
	return nil
}

// Execute runs the root command
// Errors not already reported by a subcommand are printed here.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if logCloser != nil {
		_ = logCloser.Close()
	}
	if err == nil {
		return nil
	}

	var exitErr *cli.CodedError
	if !errors.As(err, &exitErr) {
		// cobra's own errors: unknown command, bad flags, wrong arg count
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cli.WithCode(cli.ExitUsage, err)
	}
	return err
}
