package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Both maps plug into the bubbles help component.
var (
	_ help.KeyMap = (*KeyMap)(nil)
	_ help.KeyMap = (*LookupKeyMap)(nil)
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
	assert.Contains(t, km.Quit.Keys(), "ctrl+c")
	assert.NotContains(t, km.Quit.Keys(), "q", "printable keys belong to the input")
	assert.Contains(t, km.Submit.Keys(), "ctrl+s")
	assert.Contains(t, km.ToggleMulti.Keys(), "ctrl+t")
	assert.Contains(t, km.Reset.Keys(), "ctrl+r")
	assert.Contains(t, km.Focus.Keys(), "tab")
}

func TestDefaultLookupKeyMap(t *testing.T) {
	km := DefaultLookupKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		keys    []string
	}{
		{"prev", km.Prev, []string{"up", "ctrl+p"}},
		{"next", km.Next, []string{"down", "ctrl+n"}},
		{"select", km.Select, []string{"enter"}},
		{"dismiss", km.Dismiss, []string{"esc"}},
		{"remove last", km.RemoveLast, []string{"backspace"}},
		{"clear", km.Clear, []string{"ctrl+x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.keys, tt.binding.Keys())
			assert.NotEmpty(t, tt.binding.Help().Desc)
		})
	}
}

func TestHelpGroups(t *testing.T) {
	km := DefaultKeyMap()
	lk := DefaultLookupKeyMap()

	assert.Len(t, km.ShortHelp(), 3)
	assert.Len(t, km.FullHelp(), 2)
	assert.Len(t, lk.ShortHelp(), 4)
	assert.Len(t, lk.FullHelp(), 2)
}

func TestMatches(t *testing.T) {
	km := DefaultLookupKeyMap()

	assert.True(t, Matches("down", km.Next))
	assert.True(t, Matches("ctrl+n", km.Next))
	assert.False(t, Matches("j", km.Next))
	assert.False(t, Matches("enter", key.NewBinding()))
}
