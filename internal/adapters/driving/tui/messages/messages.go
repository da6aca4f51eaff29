// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/lookup/internal/core/domain"
)

// SearchCompleted carries the answer to a lookup search back to the form.
// Seq identifies the request so answers to superseded searches can be dropped.
type SearchCompleted struct {
	LookupID string
	Seq      int
	Results  []domain.ResultItem
	Err      error
}

// DefaultsLoaded carries the results a lookup shows before the user types.
type DefaultsLoaded struct {
	LookupID string
	Results  []domain.ResultItem
	Err      error
}

// SelectionRecorded signals that selected ids were marked as recently viewed.
type SelectionRecorded struct {
	IDs []string
	Err error
}

// NavigationCompleted signals that a new-record page was opened.
type NavigationCompleted struct {
	Page domain.PageReference
	Err  error
}

// SettingsLoaded carries lookup settings, e.g. after the config file changed.
type SettingsLoaded struct {
	Settings *domain.LookupSettings
	Err      error
}

// Submitted signals the form passed validation and was submitted.
type Submitted struct {
	Selection []domain.ResultItem
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewForm is the lookup form.
	ViewForm ViewType = iota
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewForm:
		return "form"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
