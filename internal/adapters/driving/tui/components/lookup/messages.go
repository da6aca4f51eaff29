package lookup

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/lookup/internal/core/domain"
)

// SearchMsg asks the host to run a search. The host answers with SetSearchResults.
type SearchMsg struct {
	LookupID string
	domain.SearchRequest
}

// SelectionChangeMsg reports a user-driven selection change.
type SelectionChangeMsg struct {
	LookupID string
	IDs      []string
}

// NavigateMsg asks the host to open a new-record page.
type NavigateMsg struct {
	LookupID string
	Page     domain.PageReference
}

// NavigationCancelledMsg reports that a new-record option's pre-navigation hook failed.
type NavigationCancelledMsg struct {
	LookupID string
	Option   domain.NewRecordOption
	Err      error
}

// debounceMsg fires when a debounce timer expires.
type debounceMsg struct {
	lookupID string
	timerID  int
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
