package form

import "errors"

// Error definitions for the form view.
var (
	// ErrNoLookupService indicates that no lookup service was provided.
	ErrNoLookupService = errors.New("lookup service is required")
)
