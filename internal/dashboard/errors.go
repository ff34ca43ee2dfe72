package dashboard

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/campfire/internal/models"
)

var (
	// ErrNotLoaded is returned when an action targets an entity that is not
	// in the controller's local view state
	ErrNotLoaded = errors.New("not loaded")

	// ErrListHasTasks blocks deleting a task list that still holds tasks
	ErrListHasTasks = fmt.Errorf("cannot delete list with tasks: %w", models.ErrValidation)

	ErrEmptyTaskTitle = fmt.Errorf("task title is required: %w", models.ErrValidation)
	ErrEmptyListName  = fmt.Errorf("list name is required: %w", models.ErrValidation)
)
