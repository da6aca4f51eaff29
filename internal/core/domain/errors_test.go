package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrAlreadyExists", ErrAlreadyExists},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrSearchUnavailable", ErrSearchUnavailable},
		{"ErrNavigationCancelled", ErrNavigationCancelled},
		{"ErrNavigationUnavailable", ErrNavigationUnavailable},
		{"ErrUnsupportedType", ErrUnsupportedType},
		{"ErrAuthRequired", ErrAuthRequired},
		{"ErrRateLimited", ErrRateLimited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestErrNotFound tests ErrNotFound error
func TestErrNotFound(t *testing.T) {
	assert.Equal(t, "not found", ErrNotFound.Error())
	assert.True(t, errors.Is(ErrNotFound, ErrNotFound))
	assert.False(t, errors.Is(ErrNotFound, ErrAlreadyExists))
}

func TestErrNavigationCancelled_Wrapped(t *testing.T) {
	err := fmt.Errorf("pre-navigate Account: %w", ErrNavigationCancelled)

	assert.True(t, errors.Is(err, ErrNavigationCancelled))
	assert.False(t, errors.Is(err, ErrNavigationUnavailable))
}

func TestFieldError_Error(t *testing.T) {
	var err error = FieldError{ID: "e1", Message: "Some error"}

	assert.Equal(t, "Some error", err.Error())
}

func TestCloneFieldErrors_Independent(t *testing.T) {
	src := []FieldError{{ID: "e1", Message: "one"}}

	dst := CloneFieldErrors(src)
	dst[0].Message = "changed"

	assert.Equal(t, "one", src[0].Message)
}
