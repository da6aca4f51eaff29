package domain

// FieldError is a validation message displayed under a lookup.
// Any FieldError marks the lookup invalid.
type FieldError struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e FieldError) Error() string {
	return e.Message
}

// CloneFieldErrors returns an independent copy of errs.
func CloneFieldErrors(errs []FieldError) []FieldError {
	out := make([]FieldError, len(errs))
	copy(out, errs)
	return out
}
