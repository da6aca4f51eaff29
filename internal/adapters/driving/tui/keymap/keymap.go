// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the form-level keybindings of the TUI.
// Printable keys are left to the lookup input.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help toggles the full help view.
	Help key.Binding

	// Submit validates the form.
	Submit key.Binding

	// ToggleMulti switches the lookup between single and multi entry.
	ToggleMulti key.Binding

	// Reset clears the form and its errors.
	Reset key.Binding

	// Focus moves focus back to the lookup.
	Focus key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "submit"),
		),
		ToggleMulti: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "toggle multi-entry"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reset"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "focus lookup"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Help, k.Quit}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Reset, k.ToggleMulti},
		{k.Focus, k.Help, k.Quit},
	}
}

// LookupKeyMap defines the keybindings handled by a focused lookup.
type LookupKeyMap struct {
	// Prev moves the focused row up, wrapping to the last row.
	Prev key.Binding

	// Next moves the focused row down, wrapping to the first row.
	Next key.Binding

	// Select picks the focused row.
	Select key.Binding

	// Dismiss clears the displayed results.
	Dismiss key.Binding

	// RemoveLast removes the last pill when the input is empty.
	RemoveLast key.Binding

	// Clear removes the whole selection.
	Clear key.Binding
}

// DefaultLookupKeyMap returns the default lookup keybindings.
func DefaultLookupKeyMap() *LookupKeyMap {
	return &LookupKeyMap{
		Prev: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "next"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "dismiss"),
		),
		RemoveLast: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "remove last"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "clear selection"),
		),
	}
}

// ShortHelp returns the lookup bindings shown inline.
func (k *LookupKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Select, k.Dismiss}
}

// FullHelp returns all lookup bindings.
func (k *LookupKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Select},
		{k.Dismiss, k.RemoveLast, k.Clear},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
