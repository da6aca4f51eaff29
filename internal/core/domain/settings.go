package domain

import (
	"fmt"
	"time"
)

const unknownDescription = "Unknown"

// Defaults for lookup settings.
const (
	DefaultMinSearchTermLength = 2
	DefaultSearchDelay         = 300 * time.Millisecond
	DefaultResultLimit         = 20
	DefaultRecentLimit         = 5
)

// Variant controls how a lookup renders its label.
type Variant string

// Available label variants.
const (
	// VariantStacked renders the label above the input.
	VariantStacked Variant = "stacked"

	// VariantInline renders the label on the same line as the input.
	VariantInline Variant = "label-inline"

	// VariantHidden keeps the label out of the visible output.
	VariantHidden Variant = "label-hidden"
)

// IsValid returns true if the variant is recognised.
func (v Variant) IsValid() bool {
	switch v {
	case VariantStacked, VariantInline, VariantHidden:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (v Variant) String() string {
	return string(v)
}

// Description returns a human-readable description of the variant.
func (v Variant) Description() string {
	switch v {
	case VariantStacked:
		return "Label above input"
	case VariantInline:
		return "Label beside input"
	case VariantHidden:
		return "Hidden label"
	default:
		return unknownDescription
	}
}

// BackendType identifies where lookup candidates come from.
type BackendType string

// Available backends.
const (
	// BackendSQLite searches records stored in the local SQLite database.
	BackendSQLite BackendType = "sqlite"

	// BackendMemory searches records held in memory for the process lifetime.
	BackendMemory BackendType = "memory"

	// BackendGitHub searches GitHub repositories.
	BackendGitHub BackendType = "github"
)

// IsValid returns true if the backend type is recognised.
func (b BackendType) IsValid() bool {
	switch b {
	case BackendSQLite, BackendMemory, BackendGitHub:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b BackendType) String() string {
	return string(b)
}

// LookupSettings holds the configuration attributes of a lookup.
type LookupSettings struct {
	Label               string
	Placeholder         string
	Required            bool
	MultiEntry          bool
	Variant             Variant
	MinSearchTermLength int
	SearchDelay         time.Duration
	ScrollAfterNItems   int
	ResultLimit         int
	RecentLimit         int
	MaxSelectionSize    int
	Backend             BackendType
	NewRecordOptions    []NewRecordOption
}

// DefaultLookupSettings returns settings with sensible defaults.
func DefaultLookupSettings() LookupSettings {
	return LookupSettings{
		Label:               "Search",
		Placeholder:         "Search...",
		Variant:             VariantStacked,
		MinSearchTermLength: DefaultMinSearchTermLength,
		SearchDelay:         DefaultSearchDelay,
		ScrollAfterNItems:   5,
		ResultLimit:         DefaultResultLimit,
		RecentLimit:         DefaultRecentLimit,
		MaxSelectionSize:    2,
		Backend:             BackendSQLite,
	}
}

// Validate checks the settings for values a lookup cannot work with.
func (s *LookupSettings) Validate() error {
	if s.MinSearchTermLength < 1 {
		return fmt.Errorf("%w: min search term length must be at least 1", ErrInvalidInput)
	}
	if s.SearchDelay < 0 {
		return fmt.Errorf("%w: search delay must not be negative", ErrInvalidInput)
	}
	if s.ScrollAfterNItems < 0 {
		return fmt.Errorf("%w: scroll after n items must not be negative", ErrInvalidInput)
	}
	if !s.Variant.IsValid() {
		return fmt.Errorf("%w: unknown variant %q", ErrInvalidInput, s.Variant)
	}
	if !s.Backend.IsValid() {
		return fmt.Errorf("%w: unknown backend %q", ErrUnsupportedType, s.Backend)
	}
	return nil
}
