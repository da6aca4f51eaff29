package lookup

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/lookup/internal/core/domain"
)

// SetSelection replaces the selection without emitting SelectionChangeMsg.
// A single-entry lookup keeps only the first item.
func (m *Model) SetSelection(in domain.SelectionInput) {
	items := domain.NormalizeSelection(in)
	if !m.multiEntry && len(items) > 1 {
		items = items[:1]
	}
	m.selection = items
	m.processSelectionUpdate(false)
	m.Blur()
}

// Selection returns a copy of the selected items in order.
func (m *Model) Selection() []domain.ResultItem {
	return domain.CloneResults(m.selection)
}

// GetSelection is an alias of Selection.
func (m *Model) GetSelection() []domain.ResultItem {
	return m.Selection()
}

// SelectedIDs returns the selected ids in order.
func (m *Model) SelectedIDs() []string {
	return domain.ResultIDs(m.selection)
}

// SetSearchResults displays results. Selected ids are dropped, missing icons
// defaulted and matches of the current clean term highlighted. The loading
// indicator and keyboard focus are reset.
func (m *Model) SetSearchResults(results []domain.ResultItem) {
	m.loading = false

	out := domain.ExcludeIDs(results, domain.ResultIDs(m.selection))
	highlight := highlighter(m.cleanTerm)
	for i := range out {
		if out[i].Icon == "" {
			out[i].Icon = domain.DefaultIcon
		}
		out[i].TitleFormatted = highlight(out[i].Title)
		out[i].SubtitleFormatted = highlight(out[i].Subtitle)
	}

	m.searchResults = out
	m.focusIndex = nil
}

// SetDefaultResults stores the results shown without a search term, such as
// recently viewed records. They are displayed right away when nothing else is.
func (m *Model) SetDefaultResults(results []domain.ResultItem) {
	m.defaultResults = domain.CloneResults(results)
	if len(m.searchResults) == 0 {
		m.SetSearchResults(m.defaultResults)
	}
}

// Results returns a copy of the displayed results.
func (m *Model) Results() []domain.ResultItem {
	return domain.CloneResults(m.searchResults)
}

// SelectResult selects the displayed result with the given id, as a click would.
func (m *Model) SelectResult(id string) tea.Cmd {
	if m.disabled || !m.isSelectionAllowed() {
		return nil
	}

	var (
		item  domain.ResultItem
		found bool
	)
	for i := range m.searchResults {
		if m.searchResults[i].ID == id {
			item, found = m.searchResults[i], true
			break
		}
	}
	if !found {
		return nil
	}
	item.TitleFormatted, item.SubtitleFormatted = "", ""

	selection := make([]domain.ResultItem, 0, len(m.selection)+1)
	selection = append(selection, m.selection...)
	m.selection = append(selection, item)

	if !m.multiEntry {
		m.Blur()
	}
	return m.processSelectionUpdate(true)
}

// RemoveSelectedItem removes the item with id from the selection.
func (m *Model) RemoveSelectedItem(id string) tea.Cmd {
	if m.disabled {
		return nil
	}

	kept := make([]domain.ResultItem, 0, len(m.selection))
	for _, item := range m.selection {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(m.selection) {
		return nil
	}

	m.selection = kept
	return m.processSelectionUpdate(true)
}

// ClearSelection empties the selection.
func (m *Model) ClearSelection() tea.Cmd {
	if m.disabled || !m.hasSelection() {
		return nil
	}
	m.selection = []domain.ResultItem{}
	m.Blur()
	return m.processSelectionUpdate(true)
}

// processSelectionUpdate resets the search after the selection changed and
// shows the default results minus the selection.
func (m *Model) processSelectionUpdate(user bool) tea.Cmd {
	m.cancelPending()
	m.rawTerm, m.cleanTerm = "", ""
	m.input.Reset()

	m.SetSearchResults(m.defaultResults)
	m.dirty = user

	if !user {
		return nil
	}
	return emit(SelectionChangeMsg{LookupID: m.id, IDs: domain.ResultIDs(m.selection)})
}

func (m *Model) hasSelection() bool {
	return len(m.selection) > 0
}

// isSelectionAllowed reports whether another item may be added.
func (m *Model) isSelectionAllowed() bool {
	return m.multiEntry || !m.hasSelection()
}
