package lookup

import (
	"github.com/custodia-labs/lookup/internal/core/domain"
)

// Phase is the lookup state derived from its fields.
type Phase int

// Lookup phases, in precedence order: Disabled wins over Invalid, which
// wins over any focus state.
const (
	PhaseIdle Phase = iota
	PhaseFocusedEmpty
	PhaseFocusedSearching
	PhaseFocusedResults
	PhaseDisabled
	PhaseInvalid
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseFocusedEmpty:
		return "focused-empty"
	case PhaseFocusedSearching:
		return "focused-searching"
	case PhaseFocusedResults:
		return "focused-results"
	case PhaseDisabled:
		return "disabled"
	case PhaseInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Phase returns the current phase.
func (m *Model) Phase() Phase {
	switch {
	case m.disabled:
		return PhaseDisabled
	case len(m.errors) > 0:
		return PhaseInvalid
	case !m.hasFocus:
		return PhaseIdle
	case m.pending != nil || m.loading:
		return PhaseFocusedSearching
	case termLongEnough(m.cleanTerm, m.minSearchTermLength):
		return PhaseFocusedResults
	default:
		return PhaseFocusedEmpty
	}
}

// DisplayRow is the render state of one dropdown row.
type DisplayRow struct {
	ID        string
	Icon      string
	Title     string
	Subtitle  string
	Focused   bool
	NewRecord bool
}

// RowViewState computes the display state of result at rowIndex.
// Formatted text is preferred; a result without one falls back to its plain text.
func RowViewState(result domain.ResultItem, focusIndex *int, rowIndex int) DisplayRow {
	title := result.TitleFormatted
	if title == "" {
		title = result.Title
	}
	subtitle := result.SubtitleFormatted
	if subtitle == "" {
		subtitle = result.Subtitle
	}
	icon := result.Icon
	if icon == "" {
		icon = domain.DefaultIcon
	}
	return DisplayRow{
		ID:       result.ID,
		Icon:     icon,
		Title:    title,
		Subtitle: subtitle,
		Focused:  focusIndex != nil && *focusIndex == rowIndex,
	}
}

// newRecordRow computes the display state of a new-record option at rowIndex.
func newRecordRow(option domain.NewRecordOption, focusIndex *int, rowIndex int) DisplayRow {
	label := option.Label
	if label == "" {
		label = "New " + option.Value
	}
	return DisplayRow{
		ID:        option.Value,
		Title:     label,
		Focused:   focusIndex != nil && *focusIndex == rowIndex,
		NewRecord: true,
	}
}

// Rows returns the display state of every dropdown row: results, then
// new-record options.
func (m *Model) Rows() []DisplayRow {
	rows := make([]DisplayRow, 0, m.rowCount())
	for i := range m.searchResults {
		rows = append(rows, RowViewState(m.searchResults[i], m.focusIndex, i))
	}
	for i, option := range m.newRecordOptions {
		rows = append(rows, newRecordRow(option, m.focusIndex, len(m.searchResults)+i))
	}
	return rows
}

// FocusIndex returns the keyboard-focused row, if any.
func (m *Model) FocusIndex() (int, bool) {
	if m.focusIndex == nil {
		return 0, false
	}
	return *m.focusIndex, true
}

// SearchState returns the search term processing state.
func (m *Model) SearchState() domain.SearchState {
	return domain.SearchState{
		RawTerm:   m.rawTerm,
		CleanTerm: m.cleanTerm,
		MinLength: m.minSearchTermLength,
		Pending:   m.pending != nil,
	}
}

// Loading reports whether a search was emitted and not yet answered.
func (m *Model) Loading() bool {
	return m.loading
}

// Dirty reports whether the user changed the selection.
func (m *Model) Dirty() bool {
	return m.dirty
}

// DropdownOpen reports whether the result dropdown is shown.
func (m *Model) DropdownOpen() bool {
	if !m.hasFocus || m.disabled || len(m.errors) > 0 || !m.isSelectionAllowed() {
		return false
	}
	return termLongEnough(m.cleanTerm, m.minSearchTermLength) || len(m.searchResults) > 0
}

// HasInputError reports whether the input is styled as erroneous: errors are
// present, or a required lookup was emptied by the user.
func (m *Model) HasInputError() bool {
	return len(m.errors) > 0 || (m.dirty && m.required && !m.hasSelection())
}

// InputValue is the text shown in the input. A single-entry lookup with a
// selection shows the selected title.
func (m *Model) InputValue() string {
	if !m.multiEntry && m.hasSelection() {
		return m.selection[0].Title
	}
	return m.rawTerm
}

// InputTitle is the tooltip text of the input.
func (m *Model) InputTitle() string {
	if !m.multiEntry && m.hasSelection() {
		return m.selection[0].Title
	}
	return ""
}

// InputReadonly reports whether typing is blocked by a single selection.
func (m *Model) InputReadonly() bool {
	return !m.multiEntry && m.hasSelection()
}

// ShowClearButton reports whether the clear affordance is shown.
func (m *Model) ShowClearButton() bool {
	return m.hasSelection()
}

// SelectedIcon is the icon shown in a single-entry input.
func (m *Model) SelectedIcon() string {
	if m.hasSelection() && m.selection[0].Icon != "" {
		return m.selection[0].Icon
	}
	return domain.DefaultIcon
}
