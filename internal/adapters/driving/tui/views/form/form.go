// Package form provides the lookup form view for the TUI.
// It hosts a single lookup and answers its events through the core services.
package form

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/lookup/internal/adapters/driving/tui/components/lookup"
	"github.com/custodia-labs/lookup/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/lookup/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/lookup/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/lookup/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/lookup/internal/core/domain"
	"github.com/custodia-labs/lookup/internal/core/ports/driving"
	"github.com/custodia-labs/lookup/internal/logger"
)

// LookupID identifies the form's lookup in its messages.
const LookupID = "lookup"

// View represents the form view with a lookup and a status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	lookup    *lookup.Model
	statusbar *status.Bar

	lookupService driving.LookupService
	navigation    driving.NavigationService
	ctx           context.Context

	settings domain.LookupSettings
	seq      int
	inFlight bool

	width  int
	height int
	ready  bool
	err    error
}

// NewView creates a new form view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	lookupService driving.LookupService,
	navigation driving.NavigationService,
	settings domain.LookupSettings,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	lk := lookup.New(LookupID, s)
	lk.ApplySettings(settings)

	bar := status.NewBar(s, km, lk.KeyMap())
	if lookupService != nil {
		bar.SetBackend(lookupService.BackendName())
	}

	return &View{
		styles:        s,
		keymap:        km,
		lookup:        lk,
		statusbar:     bar,
		lookupService: lookupService,
		navigation:    navigation,
		ctx:           context.Background(),
		settings:      settings,
		width:         80,
		height:        24,
	}
}

// WithContext sets the context for the view and its lookup.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	v.lookup.SetContext(ctx)
	return v
}

// Init initialises the view: the lookup takes focus and default results load.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.lookup.Init(), v.lookup.Focus(), v.loadDefaults())
}

// Update handles messages for the form view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v, v.handleKeyMsg(msg)

	case lookup.SearchMsg:
		return v, v.search(msg)

	case lookup.SelectionChangeMsg:
		return v, v.selectionChanged(msg)

	case lookup.NavigateMsg:
		return v, v.navigate(msg.Page)

	case lookup.NavigationCancelledMsg:
		logger.Warn("navigation to new %s cancelled: %v", msg.Option.Value, msg.Err)
		v.lookup.Update(msg)
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil

	case messages.SearchCompleted:
		v.searchCompleted(msg)
		return v, nil

	case messages.DefaultsLoaded:
		if msg.Err != nil {
			logger.Warn("loading default results: %v", msg.Err)
			return v, nil
		}
		v.lookup.SetDefaultResults(msg.Results)
		return v, nil

	case messages.SelectionRecorded:
		if msg.Err != nil {
			logger.Warn("recording selection %v: %v", msg.IDs, msg.Err)
			return v, nil
		}
		return v, v.loadDefaults()

	case messages.NavigationCompleted:
		v.navigationCompleted(msg)
		return v, nil

	case messages.SettingsLoaded:
		return v, v.applySettings(msg)

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	// Debounce ticks, spinner frames and cursor blinks belong to the lookup
	return v, v.forward(msg)
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, v.keymap.Submit):
		return v.submit()
	case keymap.Matches(keyStr, v.keymap.ToggleMulti):
		return v.toggleMulti()
	case keymap.Matches(keyStr, v.keymap.Reset):
		return v.Reset()
	case keymap.Matches(keyStr, v.keymap.Focus):
		return v.lookup.Focus()
	}

	return v.forward(msg)
}

// forward passes msg to the lookup. A search still in flight is abandoned
// once the lookup stops waiting for it, e.g. after the term was shortened
// below the minimum length or a row was selected.
func (v *View) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	v.lookup, cmd = v.lookup.Update(msg)

	if v.inFlight && !v.lookup.Loading() && !v.lookup.SearchState().Pending {
		logger.Debug("abandoning search %d", v.seq)
		v.seq++
		v.inFlight = false
		if v.statusbar.State() == status.StateSearching {
			v.statusbar.SetState(status.StateReady)
		}
	}
	return cmd
}

// search answers a lookup search event. Each request gets a sequence number
// so a late answer to an older request cannot overwrite newer results.
func (v *View) search(msg lookup.SearchMsg) tea.Cmd {
	v.lookup.SetErrors(nil)
	v.seq++
	v.inFlight = true
	seq := v.seq

	v.statusbar.SetState(status.StateSearching)
	v.statusbar.SetMessage("")
	logger.Debug("search %d: %q", seq, msg.SearchTerm)

	svc, ctx, req := v.lookupService, v.ctx, msg.SearchRequest
	return func() tea.Msg {
		if svc == nil {
			return messages.SearchCompleted{LookupID: msg.LookupID, Seq: seq, Err: ErrNoLookupService}
		}
		results, err := svc.Search(ctx, req)
		return messages.SearchCompleted{LookupID: msg.LookupID, Seq: seq, Results: results, Err: err}
	}
}

// searchCompleted pushes search results, or the search error, into the lookup.
func (v *View) searchCompleted(msg messages.SearchCompleted) {
	if msg.Seq != v.seq {
		logger.Debug("dropping results of superseded search %d", msg.Seq)
		return
	}
	v.inFlight = false

	if msg.Err != nil {
		logger.Warn("lookup search failed: %v", msg.Err)
		v.err = msg.Err
		v.lookup.SetSearchResults(nil)
		v.lookup.SetErrors([]domain.FieldError{SearchError()})
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(searchFailure(msg.Err))
		return
	}

	v.err = nil
	v.lookup.SetSearchResults(msg.Results)
	v.statusbar.SetState(status.StateResults)
	v.statusbar.SetResultCount(len(v.lookup.Results()))
}

// searchFailure describes a search error for the status bar.
func searchFailure(err error) string {
	switch {
	case errors.Is(err, domain.ErrRateLimited):
		return "search rate limited, try again shortly"
	case errors.Is(err, domain.ErrAuthRequired):
		return "search backend needs a token"
	default:
		return err.Error()
	}
}

// selectionChanged validates the new selection and records it as recent.
func (v *View) selectionChanged(msg lookup.SelectionChangeMsg) tea.Cmd {
	logger.Debug("selection changed: %v", msg.IDs)

	v.lookup.SetErrors(Validate(v.lookup.Selection(), v.lookup.MultiEntry(), v.settings.MaxSelectionSize))
	v.statusbar.Clear()

	if len(msg.IDs) == 0 {
		// Keep typing possible after the last item went away.
		return v.lookup.Focus()
	}
	return v.recordSelection(msg.IDs)
}

func (v *View) recordSelection(ids []string) tea.Cmd {
	svc, ctx := v.lookupService, v.ctx
	return func() tea.Msg {
		if svc == nil {
			return messages.SelectionRecorded{IDs: ids, Err: ErrNoLookupService}
		}
		return messages.SelectionRecorded{IDs: ids, Err: svc.RecordSelection(ctx, ids)}
	}
}

func (v *View) loadDefaults() tea.Cmd {
	svc, ctx := v.lookupService, v.ctx
	return func() tea.Msg {
		if svc == nil {
			return messages.DefaultsLoaded{LookupID: LookupID, Err: ErrNoLookupService}
		}
		results, err := svc.DefaultResults(ctx)
		return messages.DefaultsLoaded{LookupID: LookupID, Results: results, Err: err}
	}
}

func (v *View) navigate(page domain.PageReference) tea.Cmd {
	nav, ctx := v.navigation, v.ctx
	return func() tea.Msg {
		if nav == nil {
			return messages.NavigationCompleted{Page: page, Err: domain.ErrNavigationUnavailable}
		}
		return messages.NavigationCompleted{Page: page, Err: nav.Navigate(ctx, page)}
	}
}

func (v *View) navigationCompleted(msg messages.NavigationCompleted) {
	if msg.Err != nil {
		logger.Warn("navigating to %s: %v", msg.Page.Attributes.ObjectAPIName, msg.Err)
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return
	}
	v.statusbar.SetState(status.StateSuccess)
	v.statusbar.SetMessage(fmt.Sprintf("Opened new %s page", msg.Page.Attributes.ObjectAPIName))
}

// submit validates the form and, when valid, emits Submitted.
func (v *View) submit() tea.Cmd {
	errs := Validate(v.lookup.Selection(), v.lookup.MultiEntry(), v.settings.MaxSelectionSize)
	v.lookup.SetErrors(errs)
	if len(errs) > 0 {
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage("the form has errors")
		return nil
	}

	v.statusbar.SetState(status.StateSuccess)
	v.statusbar.SetMessage(SubmittedMessage)

	selection := v.lookup.Selection()
	logger.Info("form submitted with %d item(s)", len(selection))
	return func() tea.Msg {
		return messages.Submitted{Selection: selection}
	}
}

// toggleMulti switches between single and multi entry, starting over empty.
func (v *View) toggleMulti() tea.Cmd {
	v.settings.MultiEntry = !v.settings.MultiEntry
	v.lookup.SetMultiEntry(v.settings.MultiEntry)

	cmd := v.Reset()
	if v.settings.MultiEntry {
		v.statusbar.SetMessage("Multi-entry on")
	} else {
		v.statusbar.SetMessage("Multi-entry off")
	}
	return cmd
}

// applySettings reconfigures the lookup, e.g. after the config file changed.
func (v *View) applySettings(msg messages.SettingsLoaded) tea.Cmd {
	if msg.Err != nil {
		logger.Warn("reloading settings: %v", msg.Err)
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage("settings: " + msg.Err.Error())
		return nil
	}
	if msg.Settings == nil {
		return nil
	}

	v.settings = *msg.Settings
	v.lookup.ApplySettings(v.settings)
	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage("Settings reloaded")
	return v.loadDefaults()
}

// View renders the form view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 6)
	sections = append(sections, v.styles.Title.Render("Lookup"), "")
	sections = append(sections, v.lookup.View())

	if n := len(v.lookup.Selection()); n > 0 && v.lookup.MultiEntry() {
		sections = append(sections, "", v.styles.Muted.Render(fmt.Sprintf("%d selected", n)))
	}

	sections = append(sections, "", v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.lookup.SetWidth(width)
	v.statusbar.SetWidth(width)
}

// Reset clears the selection and errors and focuses the lookup.
func (v *View) Reset() tea.Cmd {
	v.lookup.SetSelection(domain.NoSelection())
	v.lookup.SetErrors(nil)
	v.err = nil
	if v.inFlight {
		v.seq++
		v.inFlight = false
	}
	v.statusbar.Clear()
	return v.lookup.Focus()
}

// SetSelection sets the lookup selection without a change event.
func (v *View) SetSelection(items []domain.ResultItem) {
	v.lookup.SetSelection(domain.SelectList(items))
}

// Lookup returns the hosted lookup.
func (v *View) Lookup() *lookup.Model {
	return v.lookup
}

// Settings returns the settings the form runs with.
func (v *View) Settings() domain.LookupSettings {
	return v.settings
}

// StatusBar returns the status bar.
func (v *View) StatusBar() *status.Bar {
	return v.statusbar
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Err returns the last search error, if any.
func (v *View) Err() error {
	return v.err
}
