package usecase

import "errors"

// Sentinel errors for use case layer
var (
	// Validation errors (client-visible, 400 class)
	ErrEmptyMessage  = errors.New("message is required")
	ErrEmptyScopeKey = errors.New("scope key is required")

	// Not found errors (client-visible, 404 class)
	ErrProcedureNotFound = errors.New("procedure not found")
)
