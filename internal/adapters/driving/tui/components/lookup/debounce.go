package lookup

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/lookup/internal/core/domain"
)

// debounceTimer is the single pending search timer of a lookup.
// A tick whose id no longer matches the pending timer is stale and dropped.
type debounceTimer struct {
	id  int
	raw string
}

// cancelPending forgets the pending timer. Its tick still arrives but is ignored.
func (m *Model) cancelPending() {
	m.pending = nil
}

// schedule cancels any pending timer and starts a new one.
func (m *Model) schedule(raw string) tea.Cmd {
	m.cancelPending()

	m.nextTimerID++
	m.pending = &debounceTimer{id: m.nextTimerID, raw: raw}

	msg := debounceMsg{lookupID: m.id, timerID: m.pending.id}
	return tea.Tick(m.searchDelay, func(time.Time) tea.Msg {
		return msg
	})
}

// fire handles an expired timer and emits the search request.
func (m *Model) fire(msg debounceMsg) tea.Cmd {
	if msg.lookupID != m.id || m.pending == nil || m.pending.id != msg.timerID {
		return nil
	}
	raw := m.pending.raw
	m.pending = nil

	// The term may have been cleared or shortened since the timer started.
	if !termLongEnough(m.cleanTerm, m.minSearchTermLength) {
		return nil
	}

	m.loading = true
	req := SearchMsg{
		LookupID: m.id,
		SearchRequest: domain.SearchRequest{
			SearchTerm:    m.cleanTerm,
			RawSearchTerm: raw,
			SelectedIDs:   domain.ResultIDs(m.selection),
		},
	}
	return tea.Batch(emit(req), m.spinner.Tick)
}
