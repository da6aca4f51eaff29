package status

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lookup/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/lookup/internal/adapters/driving/tui/styles"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap(), keymap.DefaultLookupKeyMap())

	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Equal(t, 0, bar.ResultCount())
}

func TestNewBar_NilStyles(t *testing.T) {
	bar := NewBar(nil, nil, nil)

	require.NotNil(t, bar)
	assert.NotNil(t, bar.styles)
	assert.NotNil(t, bar.keymap)
	assert.NotNil(t, bar.lookupKeys)
}

func TestStatusBar_InitAndUpdate(t *testing.T) {
	bar := NewBar(nil, nil, nil)

	assert.Nil(t, bar.Init())

	updated, cmd := bar.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, bar, updated)
	assert.Nil(t, cmd)
}

func TestStatusBar_Setters(t *testing.T) {
	bar := NewBar(nil, nil, nil)

	bar.SetState(StateSearching)
	bar.SetMessage("hello")
	bar.SetResultCount(4)
	bar.SetWidth(120)
	bar.SetBackend("sqlite")

	assert.Equal(t, StateSearching, bar.State())
	assert.Equal(t, "hello", bar.Message())
	assert.Equal(t, 4, bar.ResultCount())
	assert.Equal(t, 120, bar.Width())
	assert.Equal(t, "sqlite", bar.Backend())
}

func TestStatusBar_View(t *testing.T) {
	tests := []struct {
		name    string
		state   State
		message string
		count   int
		want    string
	}{
		{"ready", StateReady, "", 0, "Ready"},
		{"searching", StateSearching, "", 0, "Searching..."},
		{"error with message", StateError, "backend down", 0, "Error: backend down"},
		{"error without message", StateError, "", 0, "Error"},
		{"one result", StateResults, "", 1, "1 result"},
		{"results", StateResults, "", 5, "5 results"},
		{"success", StateSuccess, "The form was submitted.", 0, "The form was submitted."},
		{"help", StateHelp, "", 0, "Help"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewBar(nil, nil, nil)
			bar.SetWidth(160)
			bar.SetState(tt.state)
			bar.SetMessage(tt.message)
			bar.SetResultCount(tt.count)

			assert.Contains(t, bar.View(), tt.want)
		})
	}
}

func TestStatusBar_View_Hints(t *testing.T) {
	bar := NewBar(nil, nil, nil)
	bar.SetWidth(160)

	assert.Contains(t, bar.View(), "submit")

	bar.SetState(StateResults)
	bar.SetResultCount(2)
	assert.Contains(t, bar.View(), "select")
}

func TestStatusBar_View_Backend(t *testing.T) {
	bar := NewBar(nil, nil, nil)
	bar.SetWidth(160)
	bar.SetBackend("github")

	assert.Contains(t, bar.View(), "[github]")
}

func TestStatusBar_Clear(t *testing.T) {
	bar := NewBar(nil, nil, nil)
	bar.SetState(StateError)
	bar.SetMessage("error")
	bar.SetResultCount(10)

	bar.Clear()

	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Equal(t, 0, bar.ResultCount())
}
