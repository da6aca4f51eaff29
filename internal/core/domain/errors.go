package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSearchUnavailable indicates no search backend is configured.
	ErrSearchUnavailable = errors.New("search backend unavailable")

	// ErrNavigationCancelled indicates a pre-navigate callback rejected navigation.
	ErrNavigationCancelled = errors.New("navigation cancelled")

	// ErrNavigationUnavailable indicates no navigator is configured.
	ErrNavigationUnavailable = errors.New("navigation unavailable")

	// ErrUnsupportedType indicates an unknown backend or file type.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrAuthRequired indicates a remote backend needs a token but none is configured.
	ErrAuthRequired = errors.New("authentication required")

	// ErrRateLimited indicates the backend rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
