package tasklist

import (
	"fmt"

	"github.com/thenoetrevino/campfire/internal/models"
)

// Task list errors
var (
	ErrTaskListNotFound = fmt.Errorf("task list %w", models.ErrNotFound)
)
