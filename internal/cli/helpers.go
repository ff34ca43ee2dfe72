package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/campfire/internal/models"
)

var colorHex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ValidateColorHex validates that a color string is in valid hex format #RRGGBB
func ValidateColorHex(color string) error {
	if !colorHex.MatchString(color) {
		return fmt.Errorf("color must be in hex format #RRGGBB (e.g., #FF0000), got: %s: %w", color, models.ErrValidation)
	}
	return nil
}

// ParseID parses a positional id argument
// Non-numeric input is a usage error, a non-positive number an invalid argument.
func ParseID(what, arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, UsageError("invalid %s ID: %s", what, arg)
	}
	if id <= 0 {
		return 0, fmt.Errorf("%s ID must be positive, got %d: %w", what, id, models.ErrInvalidArgument)
	}
	return id, nil
}

// Checkbox renders a task's completion state
func Checkbox(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}

// EnvProject selects the project when --project is not given
const EnvProject = "CAMPFIRE_PROJECT"

// AddProjectFlag registers --project
func AddProjectFlag(cmd *cobra.Command) {
	cmd.Flags().Int("project", 0, "Project ID (uses "+EnvProject+" or the configured default if not specified)")
}

// GetProjectID resolves the project of a command: the --project flag, then
// CAMPFIRE_PROJECT, then the configured default project
func GetProjectID(cmd *cobra.Command, c *CLI) (int, error) {
	if id, _ := cmd.Flags().GetInt("project"); id != 0 {
		if id < 0 {
			return 0, fmt.Errorf("project ID must be positive, got %d: %w", id, models.ErrInvalidArgument)
		}
		return id, nil
	}
	if env := strings.TrimSpace(os.Getenv(EnvProject)); env != "" {
		return ParseID("project", env)
	}
	return c.ProjectOrDefault(0), nil
}

// ProjectFromArgs resolves the project of a command taking an optional
// positional project ID, falling back to GetProjectID
func ProjectFromArgs(cmd *cobra.Command, c *CLI, args []string) (int, error) {
	if len(args) > 0 {
		return ParseID("project", args[0])
	}
	return GetProjectID(cmd, c)
}

// Run initializes the CLI for cmd, calls fn and releases the CLI
// Initialization failures are reported through the formatter.
func Run(cmd *cobra.Command, fn func(ctx context.Context, c *CLI, f *OutputFormatter) error) error {
	f := NewFormatter(cmd)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cliInstance, err := GetCLIFromContext(ctx)
	if err != nil {
		return f.Fail(err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	return fn(ctx, cliInstance, f)
}
