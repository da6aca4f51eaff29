package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/lookup/internal/core/domain"
	"github.com/custodia-labs/lookup/internal/core/ports/driven"
	"github.com/custodia-labs/lookup/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyLabel               = "lookup.label"
	KeyPlaceholder         = "lookup.placeholder"
	KeyRequired            = "lookup.required"
	KeyMultiEntry          = "lookup.multi_entry"
	KeyVariant             = "lookup.variant"
	KeyMinSearchTermLength = "lookup.min_search_term_length"
	KeySearchDelayMs       = "lookup.search_delay_ms"
	KeyScrollAfterNItems   = "lookup.scroll_after_n_items"
	KeyResultLimit         = "lookup.result_limit"
	KeyRecentLimit         = "lookup.recent_limit"
	KeyMaxSelectionSize    = "lookup.max_selection_size"
	KeyBackend             = "lookup.backend"
	KeyNewRecordOptions    = "lookup.new_record_options"
)

// SettingsService manages lookup settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current lookup settings, falling back to defaults for unset keys.
func (s *SettingsService) Get() (*domain.LookupSettings, error) {
	defaults := domain.DefaultLookupSettings()

	settings := &domain.LookupSettings{
		Label:               s.getString(KeyLabel, defaults.Label),
		Placeholder:         s.getString(KeyPlaceholder, defaults.Placeholder),
		Required:            s.getBool(KeyRequired, defaults.Required),
		MultiEntry:          s.getBool(KeyMultiEntry, defaults.MultiEntry),
		Variant:             domain.Variant(s.getString(KeyVariant, string(defaults.Variant))),
		MinSearchTermLength: s.getInt(KeyMinSearchTermLength, defaults.MinSearchTermLength),
		SearchDelay:         time.Duration(s.getInt(KeySearchDelayMs, int(defaults.SearchDelay/time.Millisecond))) * time.Millisecond,
		ScrollAfterNItems:   s.getInt(KeyScrollAfterNItems, defaults.ScrollAfterNItems),
		ResultLimit:         s.getInt(KeyResultLimit, defaults.ResultLimit),
		RecentLimit:         s.getInt(KeyRecentLimit, defaults.RecentLimit),
		MaxSelectionSize:    s.getInt(KeyMaxSelectionSize, defaults.MaxSelectionSize),
		Backend:             domain.BackendType(s.getString(KeyBackend, string(defaults.Backend))),
		NewRecordOptions:    ParseNewRecordOptions(s.configStore.GetStringSlice(KeyNewRecordOptions)),
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("settings in %s: %w", s.configStore.Path(), err)
	}
	return settings, nil
}

// Save persists lookup settings.
func (s *SettingsService) Save(settings *domain.LookupSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{KeyLabel, settings.Label},
		{KeyPlaceholder, settings.Placeholder},
		{KeyRequired, settings.Required},
		{KeyMultiEntry, settings.MultiEntry},
		{KeyVariant, settings.Variant.String()},
		{KeyMinSearchTermLength, settings.MinSearchTermLength},
		{KeySearchDelayMs, int(settings.SearchDelay / time.Millisecond)},
		{KeyScrollAfterNItems, settings.ScrollAfterNItems},
		{KeyResultLimit, settings.ResultLimit},
		{KeyRecentLimit, settings.RecentLimit},
		{KeyMaxSelectionSize, settings.MaxSelectionSize},
		{KeyBackend, settings.Backend.String()},
		{KeyNewRecordOptions, FormatNewRecordOptions(settings.NewRecordOptions)},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// Set updates a single setting from its string form.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	switch key {
	case KeyLabel:
		settings.Label = value
	case KeyPlaceholder:
		settings.Placeholder = value
	case KeyRequired:
		settings.Required, err = strconv.ParseBool(value)
	case KeyMultiEntry:
		settings.MultiEntry, err = strconv.ParseBool(value)
	case KeyVariant:
		settings.Variant = domain.Variant(value)
	case KeyMinSearchTermLength:
		settings.MinSearchTermLength, err = strconv.Atoi(value)
	case KeySearchDelayMs:
		var ms int
		ms, err = strconv.Atoi(value)
		settings.SearchDelay = time.Duration(ms) * time.Millisecond
	case KeyScrollAfterNItems:
		settings.ScrollAfterNItems, err = strconv.Atoi(value)
	case KeyResultLimit:
		settings.ResultLimit, err = strconv.Atoi(value)
	case KeyRecentLimit:
		settings.RecentLimit, err = strconv.Atoi(value)
	case KeyMaxSelectionSize:
		settings.MaxSelectionSize, err = strconv.Atoi(value)
	case KeyBackend:
		settings.Backend = domain.BackendType(value)
	case KeyNewRecordOptions:
		settings.NewRecordOptions = ParseNewRecordOptions(strings.Split(value, ","))
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
	if err != nil {
		return fmt.Errorf("%w: %s=%q: %v", domain.ErrInvalidInput, key, value, err)
	}

	return s.Save(settings)
}

// Keys lists the settable keys in sorted order.
func (s *SettingsService) Keys() []string {
	keys := []string{
		KeyLabel, KeyPlaceholder, KeyRequired, KeyMultiEntry, KeyVariant,
		KeyMinSearchTermLength, KeySearchDelayMs, KeyScrollAfterNItems,
		KeyResultLimit, KeyRecentLimit, KeyMaxSelectionSize, KeyBackend,
		KeyNewRecordOptions,
	}
	sort.Strings(keys)
	return keys
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.LookupSettings {
	return domain.DefaultLookupSettings()
}

// Reload re-reads the config store and returns the resulting settings.
func (s *SettingsService) Reload() (*domain.LookupSettings, error) {
	if err := s.configStore.Load(); err != nil {
		return nil, fmt.Errorf("reload config: %w", err)
	}
	return s.Get()
}

func (s *SettingsService) getString(key, def string) string {
	if _, ok := s.configStore.Get(key); !ok {
		return def
	}
	return s.configStore.GetString(key)
}

func (s *SettingsService) getInt(key string, def int) int {
	if _, ok := s.configStore.Get(key); !ok {
		return def
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getBool(key string, def bool) bool {
	if _, ok := s.configStore.Get(key); !ok {
		return def
	}
	return s.configStore.GetBool(key)
}

// ParseNewRecordOptions parses "Value=Label" entries. An entry without a
// label uses "New <Value>". Blank entries are skipped.
func ParseNewRecordOptions(entries []string) []domain.NewRecordOption {
	var options []domain.NewRecordOption
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		value, label, found := strings.Cut(entry, "=")
		value = strings.TrimSpace(value)
		label = strings.TrimSpace(label)
		if value == "" {
			continue
		}
		if !found || label == "" {
			label = "New " + value
		}
		options = append(options, domain.NewRecordOption{Value: value, Label: label})
	}
	return options
}

// FormatNewRecordOptions is the inverse of ParseNewRecordOptions.
func FormatNewRecordOptions(options []domain.NewRecordOption) []string {
	out := make([]string, 0, len(options))
	for _, opt := range options {
		out = append(out, opt.Value+"="+opt.Label)
	}
	return out
}
