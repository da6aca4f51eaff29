// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/lookup/internal/adapters/driving/tui/styles"
)

// MinWidth is the narrowest input the component will render.
const MinWidth = 10

// LookupInput wraps a bubbles textinput as the search box of a lookup.
// It starts blurred; the owning lookup decides when it may take focus.
type LookupInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// NewLookupInput creates a new lookup input component.
func NewLookupInput(s *styles.Styles) *LookupInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 255
	ti.Width = 40
	ti.PlaceholderStyle = s.Muted
	ti.TextStyle = s.Normal

	return &LookupInput{
		textinput: ti,
		styles:    s,
		width:     40,
	}
}

// Init initialises the input.
func (s *LookupInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (s *LookupInput) Update(msg tea.Msg) (*LookupInput, tea.Cmd) {
	var cmd tea.Cmd
	s.textinput, cmd = s.textinput.Update(msg)
	return s, cmd
}

// View renders the bare input line; the lookup draws the frame.
func (s *LookupInput) View() string {
	return s.textinput.View()
}

// Value returns the current input value.
func (s *LookupInput) Value() string {
	return s.textinput.Value()
}

// SetValue sets the input value and moves the cursor to the end.
func (s *LookupInput) SetValue(value string) {
	s.textinput.SetValue(value)
	s.textinput.CursorEnd()
}

// Placeholder returns the placeholder text.
func (s *LookupInput) Placeholder() string {
	return s.textinput.Placeholder
}

// SetPlaceholder sets the placeholder text.
func (s *LookupInput) SetPlaceholder(placeholder string) {
	s.textinput.Placeholder = placeholder
}

// Focus sets focus on the input.
func (s *LookupInput) Focus() tea.Cmd {
	return s.textinput.Focus()
}

// Blur removes focus from the input.
func (s *LookupInput) Blur() {
	s.textinput.Blur()
}

// Focused returns whether the input is focused.
func (s *LookupInput) Focused() bool {
	return s.textinput.Focused()
}

// SetWidth sets the width of the input, frame included.
func (s *LookupInput) SetWidth(width int) {
	s.width = width
	// Account for border and padding
	inputWidth := width - 4
	if inputWidth < MinWidth {
		inputWidth = MinWidth
	}
	s.textinput.Width = inputWidth
}

// Width returns the current width.
func (s *LookupInput) Width() int {
	return s.width
}

// Reset clears the input.
func (s *LookupInput) Reset() {
	s.textinput.Reset()
}
