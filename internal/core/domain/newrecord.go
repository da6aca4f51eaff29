package domain

import "context"

// Page reference constants used by the "create new" affordance.
const (
	PageTypeObjectPage = "standard__objectPage"
	ActionNew          = "new"
)

// PreNavigateFunc runs before navigating to a new-record page.
// Returning an error cancels the navigation.
type PreNavigateFunc func(ctx context.Context, option NewRecordOption) error

// NewRecordOption is an extra dropdown row that navigates to a
// "create record" page for Value.
type NewRecordOption struct {
	// Value is the object type to create, e.g. "Account".
	Value string `json:"value" toml:"value"`

	// Label is the text shown in the dropdown.
	Label string `json:"label" toml:"label"`

	// DefaultFieldValues prefill the new record.
	DefaultFieldValues map[string]string `json:"defaultFieldValues,omitempty" toml:"default_field_values,omitempty"`

	// PreNavigate is optional; nil behaves as an immediate success.
	PreNavigate PreNavigateFunc `json:"-" toml:"-"`
}

// PageAttributes identify the target of a PageReference.
type PageAttributes struct {
	ObjectAPIName string `json:"objectApiName"`
	ActionName    string `json:"actionName"`
}

// PageState carries optional state for a PageReference.
type PageState struct {
	DefaultFieldValues map[string]string `json:"defaultFieldValues,omitempty"`
}

// PageReference is a navigation request.
type PageReference struct {
	Type       string         `json:"type"`
	Attributes PageAttributes `json:"attributes"`
	State      PageState      `json:"state"`
}

// NewRecordPage builds the page reference for creating a record of option.Value.
func NewRecordPage(option NewRecordOption) PageReference {
	var defaults map[string]string
	if len(option.DefaultFieldValues) > 0 {
		defaults = make(map[string]string, len(option.DefaultFieldValues))
		for k, v := range option.DefaultFieldValues {
			defaults[k] = v
		}
	}
	return PageReference{
		Type: PageTypeObjectPage,
		Attributes: PageAttributes{
			ObjectAPIName: option.Value,
			ActionName:    ActionNew,
		},
		State: PageState{DefaultFieldValues: defaults},
	}
}
