// Package lookup provides a search-as-you-type combobox for Bubble Tea hosts.
//
// The lookup owns its selection, the displayed results and a single debounce
// timer. It never searches on its own: after the user pauses typing it emits a
// SearchMsg, and the host answers with SetSearchResults. User-driven selection
// changes are reported with SelectionChangeMsg.
package lookup

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/lookup/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/lookup/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/lookup/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/lookup/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/lookup/internal/core/domain"
)

// Model is a lookup field.
type Model struct {
	id       string
	styles   *styles.Styles
	keys     *keymap.LookupKeyMap
	input    *input.LookupInput
	dropdown *list.Dropdown
	spinner  spinner.Model

	// Configuration
	label               string
	variant             domain.Variant
	required            bool
	disabled            bool
	multiEntry          bool
	minSearchTermLength int
	searchDelay         time.Duration
	newRecordOptions    []domain.NewRecordOption
	errors              []domain.FieldError

	selection      []domain.ResultItem
	searchResults  []domain.ResultItem
	defaultResults []domain.ResultItem

	rawTerm   string
	cleanTerm string

	loading    bool
	hasFocus   bool
	dirty      bool
	focusIndex *int

	pending     *debounceTimer
	nextTimerID int

	ctx   context.Context
	width int
}

// New creates a lookup. The id is copied into every message it emits.
func New(id string, s *styles.Styles) *Model {
	if s == nil {
		s = styles.DefaultStyles()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = s.Muted

	m := &Model{
		id:                  id,
		styles:              s,
		keys:                keymap.DefaultLookupKeyMap(),
		input:               input.NewLookupInput(s),
		dropdown:            list.NewDropdown(s),
		spinner:             sp,
		variant:             domain.VariantStacked,
		minSearchTermLength: domain.DefaultMinSearchTermLength,
		searchDelay:         domain.DefaultSearchDelay,
		selection:           []domain.ResultItem{},
		ctx:                 context.Background(),
		width:               60,
	}
	m.SetWidth(m.width)
	return m
}

// ID returns the lookup id.
func (m *Model) ID() string {
	return m.id
}

// Init initialises the lookup.
func (m *Model) Init() tea.Cmd {
	return m.input.Init()
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case debounceMsg:
		return m, m.fire(msg)

	case NavigationCancelledMsg:
		if msg.LookupID == m.id {
			m.navigationCancelled(msg)
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	if !m.hasFocus {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// HandleInput applies an input event with the full input value, as if typed.
func (m *Model) HandleInput(value string) tea.Cmd {
	if m.disabled || !m.isSelectionAllowed() {
		return nil
	}
	m.input.SetValue(value)
	return m.updateSearchTerm(value)
}

// Focus gives the lookup input focus. It is refused while disabled or
// while a single-entry lookup already holds a selection.
func (m *Model) Focus() tea.Cmd {
	if m.disabled || !m.isSelectionAllowed() {
		return nil
	}
	m.hasFocus = true
	m.focusIndex = nil
	return m.input.Focus()
}

// Blur drops focus and closes the dropdown.
func (m *Model) Blur() {
	m.hasFocus = false
	m.focusIndex = nil
	m.input.Blur()
}

// Focused reports whether the lookup has focus.
func (m *Model) Focused() bool {
	return m.hasFocus
}

// ReportValidity reports whether the lookup has no errors and satisfies its
// required constraint.
func (m *Model) ReportValidity() bool {
	if len(m.errors) > 0 {
		return false
	}
	return !m.required || m.hasSelection()
}

// SetErrors replaces the displayed errors. Any error blurs the lookup.
func (m *Model) SetErrors(errs []domain.FieldError) {
	m.errors = domain.CloneFieldErrors(errs)
	if len(m.errors) > 0 {
		m.Blur()
	}
}

// Errors returns a copy of the displayed errors.
func (m *Model) Errors() []domain.FieldError {
	return domain.CloneFieldErrors(m.errors)
}

// SetDisabled enables or disables the lookup. A disabled lookup ignores all
// interaction and drops any pending search.
func (m *Model) SetDisabled(disabled bool) {
	m.disabled = disabled
	if disabled {
		m.cancelPending()
		m.Blur()
	}
}

// Disabled reports whether the lookup is disabled.
func (m *Model) Disabled() bool {
	return m.disabled
}

// SetRequired marks the lookup as requiring a selection.
func (m *Model) SetRequired(required bool) {
	m.required = required
}

// Required reports whether a selection is required.
func (m *Model) Required() bool {
	return m.required
}

// SetMultiEntry switches between single and multi selection.
// Leaving multi-entry keeps only the first selected item.
func (m *Model) SetMultiEntry(multi bool) {
	m.multiEntry = multi
	if !multi && len(m.selection) > 1 {
		m.selection = m.selection[:1]
		m.Blur()
	}
}

// MultiEntry reports whether more than one item may be selected.
func (m *Model) MultiEntry() bool {
	return m.multiEntry
}

// SetLabel sets the field label.
func (m *Model) SetLabel(label string) {
	m.label = label
}

// Label returns the field label.
func (m *Model) Label() string {
	return m.label
}

// SetPlaceholder sets the input placeholder.
func (m *Model) SetPlaceholder(placeholder string) {
	m.input.SetPlaceholder(placeholder)
}

// Placeholder returns the input placeholder.
func (m *Model) Placeholder() string {
	return m.input.Placeholder()
}

// SetVariant sets how the label is laid out. Unknown variants are ignored.
func (m *Model) SetVariant(v domain.Variant) {
	if v.IsValid() {
		m.variant = v
	}
}

// Variant returns the label variant.
func (m *Model) Variant() domain.Variant {
	return m.variant
}

// SetScrollAfterNItems limits the visible dropdown rows. Zero shows all rows.
func (m *Model) SetScrollAfterNItems(n int) {
	m.dropdown.SetMaxVisible(n)
}

// ScrollAfterNItems returns the visible row limit.
func (m *Model) ScrollAfterNItems() int {
	return m.dropdown.MaxVisible()
}

// SetMinSearchTermLength sets the shortest clean term that triggers a search.
func (m *Model) SetMinSearchTermLength(n int) {
	if n < 1 {
		n = 1
	}
	m.minSearchTermLength = n
}

// SetSearchDelay sets the debounce delay.
func (m *Model) SetSearchDelay(d time.Duration) {
	if d < 0 {
		d = 0
	}
	m.searchDelay = d
}

// SearchDelay returns the debounce delay.
func (m *Model) SearchDelay() time.Duration {
	return m.searchDelay
}

// SetNewRecordOptions sets the "create new" rows shown below results.
func (m *Model) SetNewRecordOptions(options []domain.NewRecordOption) {
	m.newRecordOptions = append([]domain.NewRecordOption(nil), options...)
	m.focusIndex = nil
}

// NewRecordOptions returns a copy of the "create new" options.
func (m *Model) NewRecordOptions() []domain.NewRecordOption {
	return append([]domain.NewRecordOption(nil), m.newRecordOptions...)
}

// ApplySettings configures the lookup in one call.
func (m *Model) ApplySettings(s domain.LookupSettings) {
	m.SetLabel(s.Label)
	m.SetPlaceholder(s.Placeholder)
	m.SetRequired(s.Required)
	m.SetMultiEntry(s.MultiEntry)
	m.SetVariant(s.Variant)
	m.SetMinSearchTermLength(s.MinSearchTermLength)
	m.SetSearchDelay(s.SearchDelay)
	m.SetScrollAfterNItems(s.ScrollAfterNItems)
	m.SetNewRecordOptions(s.NewRecordOptions)
}

// SetContext sets the context passed to pre-navigation hooks.
func (m *Model) SetContext(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	m.ctx = ctx
}

// SetWidth sets the rendered width.
func (m *Model) SetWidth(width int) {
	m.width = width
	m.input.SetWidth(width)
	m.dropdown.SetWidth(width)
}

// Width returns the rendered width.
func (m *Model) Width() int {
	return m.width
}

// KeyMap returns the lookup key bindings for help rendering.
func (m *Model) KeyMap() *keymap.LookupKeyMap {
	return m.keys
}
