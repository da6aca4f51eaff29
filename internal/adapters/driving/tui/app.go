package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/lookup/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/lookup/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/lookup/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/lookup/internal/adapters/driving/tui/views/form"
	"github.com/custodia-labs/lookup/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keymap holds the form-level keybindings.
	keymap *keymap.KeyMap

	// formView hosts the lookup.
	formView *form.View

	// help renders the keybinding reference.
	help help.Model

	// currentView tracks which view is active.
	currentView messages.ViewType

	// submitted holds the selection of the last successful submit.
	submitted []domain.ResultItem

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	settings, err := ports.Settings.Get()
	if err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	h := help.New()
	h.ShowAll = true

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		formView:    form.NewView(s, km, ports.Lookup, ports.Navigation, *settings),
		help:        h,
		currentView: messages.ViewForm,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.formView.WithContext(ctx)
	return a
}

// WithInitialSelection preselects items without a change event.
func (a *App) WithInitialSelection(items []domain.ResultItem) *App {
	if len(items) > 0 {
		a.formView.SetSelection(items)
	}
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("lookup"),
		a.formView.Init(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if keymap.Matches(msg.String(), a.keymap.Quit) {
			return a, tea.Quit
		}
		if keymap.Matches(msg.String(), a.keymap.Help) {
			a.toggleHelp()
			return a, nil
		}
		if a.currentView == messages.ViewHelp {
			// Esc from help goes back to the form
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewForm
			}
			return a, nil
		}

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.Submitted:
		a.submitted = msg.Selection
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err

	case messages.Quit:
		return a, tea.Quit
	}

	// Everything else belongs to the form, including async replies that
	// arrive while help is shown.
	a.formView, cmd = a.formView.Update(msg)
	return a, cmd
}

func (a *App) toggleHelp() {
	if a.currentView == messages.ViewHelp {
		a.currentView = messages.ViewForm
		return
	}
	a.currentView = messages.ViewHelp
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.formView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	keys := helpKeys{form: a.keymap, lookup: a.formView.Lookup().KeyMap()}
	return a.styles.Title.Render("Help") + "\n\n" +
		a.help.View(keys) + "\n\n" +
		a.styles.Muted.Render("[esc] back to form")
}

// helpKeys combines form and lookup bindings for the help view.
type helpKeys struct {
	form   *keymap.KeyMap
	lookup *keymap.LookupKeyMap
}

func (h helpKeys) ShortHelp() []key.Binding {
	return h.form.ShortHelp()
}

func (h helpKeys) FullHelp() [][]key.Binding {
	return append(h.form.FullHelp(), h.lookup.FullHelp()...)
}

// NewProgram wraps the app in a Bubbletea program.
func (a *App) NewProgram(opts ...tea.ProgramOption) *tea.Program {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(a.ctx)}, opts...)
	return tea.NewProgram(a, opts...)
}

// Run starts the TUI application.
func (a *App) Run() error {
	_, err := a.NewProgram().Run()
	return err
}

// Form returns the form view.
func (a *App) Form() *form.View {
	return a.formView
}

// Submitted returns the selection of the last successful submit.
func (a *App) Submitted() []domain.ResultItem {
	return domain.CloneResults(a.submitted)
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.help.Width = width
	a.formView.SetDimensions(width, height)
}
