// Package cli provides the command-line interface for lookup.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lookup/internal/core/ports/driven"
	"github.com/custodia-labs/lookup/internal/core/ports/driving"
	"github.com/custodia-labs/lookup/internal/logger"
)

// annotationNoServices marks commands that run without opening storage.
const annotationNoServices = "lookup/no-services"

// ErrNotConfigured is returned when a command runs without its services.
var ErrNotConfigured = errors.New("services not configured")

// Services holds the core services commands operate on.
type Services struct {
	Lookup     driving.LookupService
	Navigation driving.NavigationService
	Settings   driving.SettingsService
	Records    driven.RecordStore

	// ConfigPath is watched by the TUI for live settings reloads.
	// Empty disables watching.
	ConfigPath string
}

var (
	version   = "dev"
	verbose   bool
	configDir string

	active  *Services
	closeFn func() error
)

var rootCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Search-as-you-type record lookup",
	Long: `lookup finds and selects records as you type.

Run "lookup tui" for the interactive lookup, or use the search and records
commands from scripts.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if active != nil || cmd.Annotations[annotationNoServices] == "true" {
			return nil
		}
		svc, closer, err := Bootstrap(cmd.Context(), configDir)
		if err != nil {
			return err
		}
		active, closeFn = svc, closer
		return nil
	},
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
		return closeServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.lookup)")
}

// SetServices injects services, skipping bootstrap.
func SetServices(s *Services) {
	active = s
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx.
func ExecuteContext(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	defer logger.Sync()

	err := rootCmd.ExecuteContext(ctx)
	if cerr := closeServices(); err == nil {
		err = cerr
	}
	return err
}

func closeServices() error {
	if closeFn == nil {
		return nil
	}
	err := closeFn()
	closeFn = nil
	active = nil
	return err
}

func requireServices() (*Services, error) {
	if active == nil {
		return nil, ErrNotConfigured
	}
	return active, nil
}
