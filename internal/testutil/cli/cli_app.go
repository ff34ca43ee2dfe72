// Package cli runs cobra commands against a test application. It is
// separate from testutil so that testutil stays importable from packages
// the CLI depends on.
package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/campfire/internal/app"
	climain "github.com/thenoetrevino/campfire/internal/cli"
	"github.com/thenoetrevino/campfire/internal/clock"
	"github.com/thenoetrevino/campfire/internal/config"
	"github.com/thenoetrevino/campfire/internal/testutil"
)

// SetupCLITest returns a seeded App with no latency and a fake clock
func SetupCLITest(t *testing.T) (*app.App, *clock.FakeClock) {
	t.Helper()
	return testutil.NewApp(t)
}

// ExecuteCLICommand executes a CLI command with a test app instance and
// returns what it wrote to stdout. Stderr is discarded.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	stdout, _, err := ExecuteCLICommandWithContext(t, context.Background(), testApp, cmd, args)
	return stdout, err
}

// ExecuteCLICommandWithContext executes a CLI command with a specific context
// and test app, returning stdout and stderr separately
func ExecuteCLICommandWithContext(t *testing.T, ctx context.Context, testApp *app.App, cmd *cobra.Command, args []string) (string, string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	cfg := config.Default()
	cfg.NoLatency = true
	ctx = climain.ContextWithConfig(climain.ContextWithApp(ctx, testApp), cfg)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	testutil.SetupCobraCommand(cmd, args)

	err := cmd.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}
