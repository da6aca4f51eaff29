package form

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/custodia-labs/lookup/internal/core/domain"
)

// Messages shown to the user.
const (
	SearchErrorMessage = "An error occurred while searching with the lookup field."
	RequiredMessage    = "Please make a selection."
	SubmittedMessage   = "The form was submitted."
)

// Validate checks a selection against the form rules: a multi-entry lookup
// may hold at most maxSize items, and the selection must not be empty.
// A maxSize of zero disables the size check.
func Validate(selection []domain.ResultItem, multiEntry bool, maxSize int) []domain.FieldError {
	var errs []domain.FieldError
	if multiEntry && maxSize > 0 && len(selection) > maxSize {
		errs = append(errs, newFieldError(fmt.Sprintf("You may only select up to %d items.", maxSize)))
	}
	if len(selection) == 0 {
		errs = append(errs, newFieldError(RequiredMessage))
	}
	return errs
}

func newFieldError(message string) domain.FieldError {
	return domain.FieldError{ID: uuid.NewString(), Message: message}
}

// SearchError converts a failed search into a field error.
func SearchError() domain.FieldError {
	return newFieldError(SearchErrorMessage)
}
