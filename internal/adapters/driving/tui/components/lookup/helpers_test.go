package lookup

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lookup/internal/core/domain"
)

func sampleResults() []domain.ResultItem {
	return []domain.ResultItem{
		{ID: "id1", Title: "Sample item 1"},
		{ID: "id2", Title: "Sample item 2"},
	}
}

func newTestLookup(t *testing.T) *Model {
	t.Helper()
	m := New("account", nil)
	m.SetSearchDelay(0)
	return m
}

// focused returns a lookup that already has focus.
func focused(t *testing.T) *Model {
	t.Helper()
	m := newTestLookup(t)
	m.Focus()
	require.True(t, m.Focused())
	return m
}

// collect runs cmd and flattens batches into their messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, collect(c)...)
	}
	return out
}

// firePending expires the pending debounce timer and returns the messages it emits.
func firePending(t *testing.T, m *Model) []tea.Msg {
	t.Helper()
	require.NotNil(t, m.pending, "expected a pending search")
	_, cmd := m.Update(debounceMsg{lookupID: m.id, timerID: m.pending.id})
	return collect(cmd)
}

func searchMsgs(msgs []tea.Msg) []SearchMsg {
	var out []SearchMsg
	for _, msg := range msgs {
		if s, ok := msg.(SearchMsg); ok {
			out = append(out, s)
		}
	}
	return out
}

func selectionChange(t *testing.T, cmd tea.Cmd) SelectionChangeMsg {
	t.Helper()
	msgs := collect(cmd)
	require.Len(t, msgs, 1)
	change, ok := msgs[0].(SelectionChangeMsg)
	require.True(t, ok, "expected SelectionChangeMsg, got %T", msgs[0])
	return change
}

func press(m *Model, keyType tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: keyType})
	return cmd
}
