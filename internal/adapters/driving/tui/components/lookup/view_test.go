package lookup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/lookup/internal/core/domain"
)

func TestView_Label(t *testing.T) {
	tests := []struct {
		name    string
		variant domain.Variant
		want    bool
	}{
		{"stacked", domain.VariantStacked, true},
		{"inline", domain.VariantInline, true},
		{"hidden", domain.VariantHidden, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestLookup(t)
			m.SetLabel("Account")
			m.SetVariant(tt.variant)

			assert.Equal(t, tt.want, strings.Contains(m.View(), "Account"))
		})
	}
}

func TestView_RequiredMarker(t *testing.T) {
	m := newTestLookup(t)
	m.SetLabel("Account")
	m.SetRequired(true)

	assert.Contains(t, m.View(), "*")
}

func TestView_DropdownOnlyWhenOpen(t *testing.T) {
	m := newTestLookup(t)
	m.SetSearchResults(sampleResults())
	assert.NotContains(t, m.View(), "Sample item 1")

	m.Focus()
	assert.Contains(t, m.View(), "Sample item 1")
}

func TestView_NoResults(t *testing.T) {
	m := focused(t)
	m.HandleInput("zz")
	m.SetSearchResults(nil)

	assert.Contains(t, m.View(), "No results.")
}

func TestView_NewRecordRows(t *testing.T) {
	m := focused(t)
	m.SetSearchResults(sampleResults())
	m.SetNewRecordOptions([]domain.NewRecordOption{{Value: "Account", Label: "New Account"}})

	view := m.View()

	assert.Contains(t, view, "New Account")
	assert.Contains(t, view, "+")
}

func TestView_SingleSelection(t *testing.T) {
	m := newTestLookup(t)
	m.SetSelection(domain.SelectItem(domain.ResultItem{ID: "id1", Title: "Acme", Icon: "standard:account"}))

	view := m.View()

	assert.Contains(t, view, "Acme")
	assert.Contains(t, view, "account")
	assert.Contains(t, view, "✕")
}

func TestView_Pills(t *testing.T) {
	m := newTestLookup(t)
	m.SetMultiEntry(true)
	m.SetSelection(domain.SelectList(sampleResults()))

	view := m.View()

	assert.Contains(t, view, "Sample item 1")
	assert.Contains(t, view, "Sample item 2")
	assert.Contains(t, view, "×")
}

func TestView_Errors(t *testing.T) {
	m := newTestLookup(t)
	m.SetErrors([]domain.FieldError{{ID: "e1", Message: "Some error"}})

	assert.Contains(t, m.View(), "Some error")
}

func TestIconBadge(t *testing.T) {
	assert.Equal(t, "account", iconBadge("standard:account"))
	assert.Equal(t, "custom", iconBadge("custom"))
	assert.Equal(t, "", iconBadge(""))
}
