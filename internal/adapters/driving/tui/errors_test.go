package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	errors := []error{
		ErrMissingLookupService,
		ErrMissingSettingsService,
		ErrInvalidPorts,
	}

	// Ensure all errors are unique
	seen := make(map[string]bool)
	for _, err := range errors {
		msg := err.Error()
		assert.False(t, seen[msg], "duplicate error message: %s", msg)
		seen[msg] = true
	}
}

func TestErrors_HavePrefix(t *testing.T) {
	for _, err := range []error{ErrMissingLookupService, ErrMissingSettingsService, ErrInvalidPorts} {
		assert.Contains(t, err.Error(), "tui:")
	}
}
