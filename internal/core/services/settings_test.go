package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lookup/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/lookup/internal/core/domain"
)

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()

	require.NoError(t, err)
	defaults := domain.DefaultLookupSettings()
	assert.Equal(t, defaults.Label, settings.Label)
	assert.Equal(t, defaults.MinSearchTermLength, settings.MinSearchTermLength)
	assert.Equal(t, defaults.SearchDelay, settings.SearchDelay)
	assert.Equal(t, defaults.Variant, settings.Variant)
	assert.Equal(t, defaults.Backend, settings.Backend)
	assert.Empty(t, settings.NewRecordOptions)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set(KeyLabel, "Account")
	_ = store.Set(KeyMultiEntry, true)
	_ = store.Set(KeySearchDelayMs, 150)
	_ = store.Set(KeyVariant, "label-inline")
	_ = store.Set(KeyNewRecordOptions, []string{"Account=New Account", "Opportunity"})

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	assert.Equal(t, "Account", settings.Label)
	assert.True(t, settings.MultiEntry)
	assert.Equal(t, 150*time.Millisecond, settings.SearchDelay)
	assert.Equal(t, domain.VariantInline, settings.Variant)
	require.Len(t, settings.NewRecordOptions, 2)
	assert.Equal(t, "New Account", settings.NewRecordOptions[0].Label)
	assert.Equal(t, "New Opportunity", settings.NewRecordOptions[1].Label)
}

func TestSettingsService_Get_InvalidStoredValue(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set(KeyVariant, "sideways")

	_, err := NewSettingsService(store).Get()

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsService_SaveRoundTrip(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())
	settings := domain.DefaultLookupSettings()
	settings.Label = "Contact"
	settings.Required = true
	settings.MinSearchTermLength = 3
	settings.NewRecordOptions = []domain.NewRecordOption{{Value: "Contact", Label: "New Contact"}}

	require.NoError(t, service.Save(&settings))
	got, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, "Contact", got.Label)
	assert.True(t, got.Required)
	assert.Equal(t, 3, got.MinSearchTermLength)
	assert.Equal(t, settings.NewRecordOptions, got.NewRecordOptions)
}

func TestSettingsService_Save_RejectsInvalid(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())
	settings := domain.DefaultLookupSettings()
	settings.MinSearchTermLength = 0

	assert.ErrorIs(t, service.Save(&settings), domain.ErrInvalidInput)
}

func TestSettingsService_Set(t *testing.T) {
	tests := []struct {
		key   string
		value string
		check func(t *testing.T, s *domain.LookupSettings)
	}{
		{KeyRequired, "true", func(t *testing.T, s *domain.LookupSettings) { assert.True(t, s.Required) }},
		{KeySearchDelayMs, "500", func(t *testing.T, s *domain.LookupSettings) {
			assert.Equal(t, 500*time.Millisecond, s.SearchDelay)
		}},
		{KeyBackend, "memory", func(t *testing.T, s *domain.LookupSettings) {
			assert.Equal(t, domain.BackendMemory, s.Backend)
		}},
		{KeyNewRecordOptions, "Account=New Account,Lead", func(t *testing.T, s *domain.LookupSettings) {
			require.Len(t, s.NewRecordOptions, 2)
			assert.Equal(t, "Lead", s.NewRecordOptions[1].Value)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			service := NewSettingsService(memory.NewConfigStore())

			require.NoError(t, service.Set(tt.key, tt.value))
			got, err := service.Get()

			require.NoError(t, err)
			tt.check(t, got)
		})
	}
}

func TestSettingsService_Set_Errors(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	assert.ErrorIs(t, service.Set("lookup.colour", "red"), domain.ErrInvalidInput)
	assert.ErrorIs(t, service.Set(KeyRequired, "maybe"), domain.ErrInvalidInput)
	assert.ErrorIs(t, service.Set(KeyBackend, "oracle"), domain.ErrUnsupportedType)
}

func TestSettingsService_Keys(t *testing.T) {
	keys := NewSettingsService(memory.NewConfigStore()).Keys()

	assert.Len(t, keys, 13)
	assert.IsIncreasing(t, keys)
	assert.Contains(t, keys, KeyMinSearchTermLength)
}

func TestSettingsService_Reload(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)
	_ = store.Set(KeyPlaceholder, "Find a record")

	settings, err := service.Reload()

	require.NoError(t, err)
	assert.Equal(t, "Find a record", settings.Placeholder)
}

func TestParseNewRecordOptions(t *testing.T) {
	options := ParseNewRecordOptions([]string{" Account = New Account ", "", "=Orphan", "Case"})

	require.Len(t, options, 2)
	assert.Equal(t, domain.NewRecordOption{Value: "Account", Label: "New Account"}, options[0])
	assert.Equal(t, domain.NewRecordOption{Value: "Case", Label: "New Case"}, options[1])
	assert.Equal(t, []string{"Account=New Account", "Case=New Case"}, FormatNewRecordOptions(options))
}
