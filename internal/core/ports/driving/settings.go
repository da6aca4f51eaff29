package driving

import "github.com/custodia-labs/lookup/internal/core/domain"

// SettingsService manages lookup settings.
type SettingsService interface {
	// Get retrieves current lookup settings.
	Get() (*domain.LookupSettings, error)

	// Save persists lookup settings.
	Save(settings *domain.LookupSettings) error

	// Set updates a single setting by key, e.g. "lookup.min_search_term_length".
	Set(key, value string) error

	// Keys lists the settable keys.
	Keys() []string

	// GetDefaults returns default settings.
	GetDefaults() domain.LookupSettings

	// Reload re-reads settings from storage.
	Reload() (*domain.LookupSettings, error)
}
