package cli

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/campfire/internal/models"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: cancelled operations, export failures, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, wrong number of arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: project, task, task list or thread ids that don't exist.
	ExitNotFound = 3

	// ExitValidation indicates a validation error.
	// Use for: blank titles, malformed due dates or colors, non-positive ids,
	// deleting a list that still holds tasks.
	ExitValidation = 5
)

// CodedError carries the process exit code for a failed command
type CodedError struct {
	Code int
	Err  error
}

func (e *CodedError) Error() string { return e.Err.Error() }

func (e *CodedError) Unwrap() error { return e.Err }

// ExitCodeFor maps an error to the exit code a command should end with
func ExitCodeFor(err error) int {
	var exitErr *CodedError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &exitErr):
		return exitErr.Code
	case errors.Is(err, models.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, models.ErrValidation), errors.Is(err, models.ErrInvalidArgument):
		return ExitValidation
	default:
		return ExitError
	}
}

// errorCode is the machine-readable code printed for err
func errorCode(err error) string {
	switch ExitCodeFor(err) {
	case ExitNotFound:
		return "NOT_FOUND"
	case ExitValidation:
		if errors.Is(err, models.ErrInvalidArgument) {
			return "INVALID_ARGUMENT"
		}
		return "VALIDATION_ERROR"
	case ExitUsage:
		return "USAGE_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}

// UsageError reports a malformed invocation, such as a non-numeric id
func UsageError(format string, args ...any) error {
	return &CodedError{Code: ExitUsage, Err: fmt.Errorf(format, args...)}
}

// WithCode attaches an exit code to err
func WithCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &CodedError{Code: code, Err: err}
}
