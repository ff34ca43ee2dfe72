package models

import "errors"

// Error kinds shared by every service
// Service packages declare their own sentinels wrapping one of these so
// callers can match either the precise error or its kind with errors.Is
var (
	// ErrNotFound indicates the requested id is absent from its collection
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates a required field was blank or malformed
	ErrValidation = errors.New("validation failed")

	// ErrInvalidArgument indicates a non-positive identifier
	ErrInvalidArgument = errors.New("invalid argument")
)
