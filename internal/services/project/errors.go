package project

import (
	"fmt"

	"github.com/thenoetrevino/campfire/internal/models"
)

// Domain errors for project service
var (
	ErrProjectNotFound = fmt.Errorf("project %w", models.ErrNotFound)
)
