package cli

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lookup/internal/core/domain"
)

func TestTUICmd_Flags(t *testing.T) {
	assert.NotNil(t, tuiCmd.Flags().Lookup("log-file"))
	assert.NotNil(t, tuiCmd.Flags().Lookup("select"))
	assert.NotNil(t, tuiCmd.Flags().Lookup("no-watch"))
}

func TestTUICmd_RequiresTerminal(t *testing.T) {
	svc, _ := newTestServices(t)

	// Tests run without a terminal attached.
	_, err := execute(t, svc, "tui")

	assert.ErrorIs(t, err, ErrNotTerminal)
}

func TestPreselected(t *testing.T) {
	svc, _ := newTestServices(t, sampleRecords...)

	items, err := preselected(t.Context(), svc, []string{"opp-1", "acc-1"})

	require.NoError(t, err)
	assert.Equal(t, []string{"opp-1", "acc-1"}, domain.ResultIDs(items))
	assert.Equal(t, "Initech renewal", items[0].Title)
	assert.Equal(t, domain.DefaultIcon, items[0].Icon)
}

func TestPreselected_None(t *testing.T) {
	svc, _ := newTestServices(t)

	items, err := preselected(t.Context(), svc, nil)

	require.NoError(t, err)
	assert.Nil(t, items)
}

func TestPreselected_UnknownID(t *testing.T) {
	svc, _ := newTestServices(t)

	_, err := preselected(t.Context(), svc, []string{"nope"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPreselected_NoStore(t *testing.T) {
	svc, _ := newTestServices(t)
	svc.Records = nil

	_, err := preselected(t.Context(), svc, []string{"acc-1"})

	assert.ErrorIs(t, err, ErrNotConfigured)
}

// quitModel exits shortly after starting.
type quitModel struct{}

func (quitModel) Init() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(time.Time) tea.Msg { return tea.QuitMsg{} })
}

func (m quitModel) Update(tea.Msg) (tea.Model, tea.Cmd) { return m, nil }

func (quitModel) View() string { return "" }

func TestRunProgram_WatcherFailureIsNotFatal(t *testing.T) {
	svc, _ := newTestServices(t)
	svc.ConfigPath = filepath.Join(t.TempDir(), "missing", "config.toml")
	tuiNoWatch = false

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()
	p := tea.NewProgram(quitModel{}, tea.WithInput(nil), tea.WithOutput(io.Discard))

	err := runProgram(ctx, cancel, p, svc)

	assert.NoError(t, err)
}
