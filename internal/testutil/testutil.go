// Package testutil builds seeded applications and captures command output
// for package tests.
package testutil

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/campfire/internal/app"
	"github.com/thenoetrevino/campfire/internal/clock"
	"github.com/thenoetrevino/campfire/internal/fixtures"
	"github.com/thenoetrevino/campfire/internal/latency"
	"github.com/thenoetrevino/campfire/internal/logging"
	"github.com/thenoetrevino/campfire/internal/store"
)

// FixedNow is the fake clock's starting time. Against the bundled seed it
// makes task 2 overdue and task 4 due soon.
var FixedNow = time.Date(2024, 2, 19, 12, 0, 0, 0, time.UTC)

// NewStore returns a store seeded from the bundled fixtures
func NewStore(t *testing.T) *store.Store {
	t.Helper()

	seed, err := fixtures.Load()
	if err != nil {
		t.Fatalf("Failed to load fixtures: %v", err)
	}
	return store.New(seed)
}

// NewApp returns a seeded App with no simulated latency, a fake clock at
// FixedNow and a silent logger. Extra options are applied last.
func NewApp(t *testing.T, opts ...app.Option) (*app.App, *clock.FakeClock) {
	t.Helper()

	fake := clock.Fake(FixedNow)
	base := []app.Option{
		app.WithLatency(latency.Zero()),
		app.WithClock(fake),
		app.WithLogger(logging.Discard()),
	}
	a := app.New(NewStore(t), append(base, opts...)...)
	t.Cleanup(func() { _ = a.Close() })
	return a, fake
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]interface{} {
	t.Helper()

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}

// SetupCobraCommand sets up a cobra command with args for testing
func SetupCobraCommand(cmd *cobra.Command, args []string) {
	cmd.SetArgs(args)
	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
}
