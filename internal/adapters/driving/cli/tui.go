package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/custodia-labs/lookup/internal/adapters/driven/config/file"
	"github.com/custodia-labs/lookup/internal/adapters/driving/tui"
	"github.com/custodia-labs/lookup/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/lookup/internal/core/domain"
	"github.com/custodia-labs/lookup/internal/logger"
)

// ErrNotTerminal is returned when the TUI is started without a terminal.
var ErrNotTerminal = errors.New("tui requires an interactive terminal")

var (
	tuiLogFile string
	tuiSelect  []string
	tuiNoWatch bool
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive lookup",
	Long: `Launch the interactive lookup.

Type to search; results appear after a short pause. Selected ids are
printed on submit.

Controls:
  ↑/↓      - Move through results
  Enter    - Select
  Esc      - Dismiss results
  Ctrl+X   - Clear selection
  Ctrl+S   - Submit
  F1       - Toggle help
  Ctrl+C   - Quit`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringVar(&tuiLogFile, "log-file", "", "write logs to this file")
	tuiCmd.Flags().StringSliceVar(&tuiSelect, "select", nil, "record ids to preselect")
	tuiCmd.Flags().BoolVar(&tuiNoWatch, "no-watch", false, "do not reload settings when the config file changes")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("tui panic: %v", r)
		}
	}()

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNotTerminal
	}

	svc, err := requireServices()
	if err != nil {
		return err
	}

	// The alt screen owns the terminal, so logs go to a file or nowhere.
	if tuiLogFile != "" {
		f, ferr := os.OpenFile(tuiLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if ferr != nil {
			return fmt.Errorf("opening log file: %w", ferr)
		}
		defer f.Close()
		logger.SetOutput(f)
		defer logger.SetOutput(os.Stderr)
	} else {
		logger.SetVerbose(false)
	}

	app, err := tui.NewApp(tui.NewPorts(svc.Lookup, svc.Navigation, svc.Settings))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	app.WithContext(ctx)

	initial, err := preselected(ctx, svc, tuiSelect)
	if err != nil {
		return err
	}
	app.WithInitialSelection(initial)

	p := app.NewProgram()
	if err := runProgram(ctx, cancel, p, svc); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	for _, item := range app.Submitted() {
		cmd.Println(item.ID)
	}
	return nil
}

// runProgram runs p alongside the config watcher until p exits.
func runProgram(ctx context.Context, cancel context.CancelFunc, p *tea.Program, svc *Services) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	})

	if svc.ConfigPath != "" && !tuiNoWatch {
		watcher := file.NewWatcher(svc.ConfigPath)
		g.Go(func() error {
			// Live reload is optional; the session carries on without it.
			if err := watcher.Run(gctx); err != nil {
				logger.Warn("config reload disabled: %v", err)
			}
			return nil
		})
		g.Go(func() error {
			for {
				select {
				case <-gctx.Done():
					return nil
				case <-watcher.Changes():
					settings, err := svc.Settings.Reload()
					if err != nil {
						logger.Warn("reloading settings: %v", err)
					}
					p.Send(messages.SettingsLoaded{Settings: settings, Err: err})
				}
			}
		})
	}

	return g.Wait()
}

// preselected resolves ids to records for the initial selection.
func preselected(ctx context.Context, svc *Services, ids []string) ([]domain.ResultItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	if svc.Records == nil {
		return nil, fmt.Errorf("%w: no record store for --select", ErrNotConfigured)
	}
	items := make([]domain.ResultItem, 0, len(ids))
	for _, id := range ids {
		rec, err := svc.Records.Get(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("preselecting %s: %w", id, err)
		}
		items = append(items, rec.ToResult())
	}
	return items, nil
}
