package lookup

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/lookup/internal/adapters/driving/tui/keymap"
)

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.disabled {
		return nil
	}

	keyStr := msg.String()

	// Clear also works on a single-entry lookup, which cannot take focus
	// while it holds a selection.
	if keymap.Matches(keyStr, m.keys.Clear) {
		return m.ClearSelection()
	}
	if !m.hasFocus {
		return nil
	}

	// An invalid lookup keeps its dropdown closed; hidden rows cannot be
	// focused or selected.
	rowsHidden := len(m.errors) > 0

	switch {
	case rowsHidden && (keymap.Matches(keyStr, m.keys.Next) ||
		keymap.Matches(keyStr, m.keys.Prev) ||
		keymap.Matches(keyStr, m.keys.Select)):
		m.focusIndex = nil
		return nil
	case keymap.Matches(keyStr, m.keys.Next):
		m.moveFocus(1)
		return nil
	case keymap.Matches(keyStr, m.keys.Prev):
		m.moveFocus(-1)
		return nil
	case keymap.Matches(keyStr, m.keys.Select):
		return m.selectFocused()
	case keymap.Matches(keyStr, m.keys.Dismiss):
		m.dismiss()
		return nil
	case keymap.Matches(keyStr, m.keys.RemoveLast) && m.multiEntry && m.input.Value() == "" && m.hasSelection():
		return m.RemoveSelectedItem(m.selection[len(m.selection)-1].ID)
	}

	if !m.isSelectionAllowed() {
		return nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != before {
		return tea.Batch(cmd, m.updateSearchTerm(value))
	}
	return cmd
}

// rowCount is the number of rows keyboard focus moves through:
// results first, then new-record options.
func (m *Model) rowCount() int {
	return len(m.searchResults) + len(m.newRecordOptions)
}

// moveFocus moves the focused row by delta, wrapping at both ends.
// From no focus, down goes to the first row and up to the last.
func (m *Model) moveFocus(delta int) {
	n := m.rowCount()
	if n == 0 {
		m.focusIndex = nil
		return
	}

	i := -1
	if m.focusIndex != nil {
		i = *m.focusIndex
	}
	i += delta
	switch {
	case i >= n:
		i = 0
	case i < 0:
		i = n - 1
	}
	m.focusIndex = &i
}

// selectFocused acts on the focused row like a click.
func (m *Model) selectFocused() tea.Cmd {
	if !m.hasFocus || m.focusIndex == nil || *m.focusIndex < 0 {
		return nil
	}

	i := *m.focusIndex
	if i < len(m.searchResults) {
		return m.SelectResult(m.searchResults[i].ID)
	}
	i -= len(m.searchResults)
	if i < len(m.newRecordOptions) {
		return m.SelectNewRecordOption(m.newRecordOptions[i].Value)
	}
	return nil
}

// dismiss clears the displayed results. The selection is untouched.
func (m *Model) dismiss() {
	m.searchResults = nil
	m.focusIndex = nil
}
