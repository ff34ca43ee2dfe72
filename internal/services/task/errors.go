package task

import (
	"fmt"

	"github.com/thenoetrevino/campfire/internal/models"
)

// Task-related errors
var (
	// Validation errors
	ErrInvalidDueDate = models.ErrInvalidDueDate

	// Business logic errors
	ErrTaskNotFound       = fmt.Errorf("task %w", models.ErrNotFound)
	ErrTeamMemberNotFound = fmt.Errorf("team member %w", models.ErrNotFound)
)
