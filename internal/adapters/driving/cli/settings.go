package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lookup/internal/core/domain"
	"github.com/custodia-labs/lookup/internal/core/services"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage lookup settings",
	Long: `View and change the lookup configuration stored in config.toml.

A running "lookup tui" picks up changes immediately.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Long: `Change a single setting. Run "lookup settings keys" for the list of keys.

New-record options are a comma separated list of Value=Label entries:
  lookup settings set lookup.new_record_options "Account=New Account,Opportunity"`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List settable keys",
	RunE:  runSettingsKeys,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsKeysCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	settings, err := svc.Settings.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	values := settingValues(settings)
	cmd.Println("Lookup Settings")
	cmd.Println("===============")
	for _, key := range svc.Settings.Keys() {
		cmd.Printf("  %-32s %s\n", key, values[key])
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	if err := svc.Settings.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to update setting: %w", err)
	}
	cmd.Printf("%s updated.\n", args[0])
	return nil
}

func runSettingsKeys(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}
	for _, key := range svc.Settings.Keys() {
		cmd.Println(key)
	}
	return nil
}

// settingValues renders settings keyed by their config key.
func settingValues(s *domain.LookupSettings) map[string]string {
	options := strings.Join(services.FormatNewRecordOptions(s.NewRecordOptions), ",")
	if options == "" {
		options = "(none)"
	}
	return map[string]string{
		services.KeyLabel:               s.Label,
		services.KeyPlaceholder:         s.Placeholder,
		services.KeyRequired:            strconv.FormatBool(s.Required),
		services.KeyMultiEntry:          strconv.FormatBool(s.MultiEntry),
		services.KeyVariant:             fmt.Sprintf("%s (%s)", s.Variant, s.Variant.Description()),
		services.KeyMinSearchTermLength: strconv.Itoa(s.MinSearchTermLength),
		services.KeySearchDelayMs:       strconv.FormatInt(s.SearchDelay.Milliseconds(), 10),
		services.KeyScrollAfterNItems:   strconv.Itoa(s.ScrollAfterNItems),
		services.KeyResultLimit:         strconv.Itoa(s.ResultLimit),
		services.KeyRecentLimit:         strconv.Itoa(s.RecentLimit),
		services.KeyMaxSelectionSize:    strconv.Itoa(s.MaxSelectionSize),
		services.KeyBackend:             s.Backend.String(),
		services.KeyNewRecordOptions:    options,
	}
}
