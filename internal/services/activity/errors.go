package activity

import (
	"fmt"

	"github.com/thenoetrevino/campfire/internal/models"
)

// ErrActivityNotFound is returned for an unknown activity id
var ErrActivityNotFound = fmt.Errorf("activity %w", models.ErrNotFound)
