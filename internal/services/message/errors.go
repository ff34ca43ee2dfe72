package message

import (
	"fmt"

	"github.com/thenoetrevino/campfire/internal/models"
)

// Message board errors
var (
	// Validation errors
	ErrEmptyThreadTitle   = fmt.Errorf("thread title is required: %w", models.ErrValidation)
	ErrEmptyThreadMessage = fmt.Errorf("thread message is required: %w", models.ErrValidation)
	ErrEmptyReply         = fmt.Errorf("reply content is required: %w", models.ErrValidation)
	ErrInvalidThreadID    = fmt.Errorf("invalid thread ID: %w", models.ErrInvalidArgument)

	// Business logic errors
	ErrThreadNotFound = fmt.Errorf("thread %w", models.ErrNotFound)
)
