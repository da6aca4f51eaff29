package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/lookup/internal/adapters/driven/storage/seed"
	"github.com/custodia-labs/lookup/internal/core/domain"
)

var (
	recordsJSON     bool
	recordType      string
	recordSubtitle  string
	recordIcon      string
	recentLimitFlag int
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Manage lookup records",
	Long:  `Import, list and add the records the sqlite and memory backends search.`,
}

var recordsImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import records from a YAML or TOML seed file",
	Long: `Import records from a seed file. The format follows the extension
(.yaml, .yml or .toml). Records without an id are given a new one.

  records:
    - title: Acme Corporation
      object_type: Account
      subtitle: San Francisco`,
	Args: cobra.ExactArgs(1),
	RunE: runRecordsImport,
}

var recordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all records",
	RunE:  runRecordsList,
}

var recordsAddCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a record",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRecordsAdd,
}

var recordsRemoveCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove a record",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecordsRemove,
}

var recordsRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show the default results (recently viewed records)",
	RunE:  runRecordsRecent,
}

func init() {
	recordsListCmd.Flags().BoolVar(&recordsJSON, "json", false, "output records as JSON")
	recordsAddCmd.Flags().StringVarP(&recordType, "type", "t", "", "object type, e.g. Account")
	recordsAddCmd.Flags().StringVarP(&recordSubtitle, "subtitle", "s", "", "secondary text")
	recordsAddCmd.Flags().StringVar(&recordIcon, "icon", "", "icon name (default "+domain.DefaultIcon+")")
	recordsRecentCmd.Flags().IntVarP(&recentLimitFlag, "limit", "n", 0, "maximum number of records (0 uses the recent_limit setting)")

	recordsCmd.AddCommand(recordsImportCmd)
	recordsCmd.AddCommand(recordsListCmd)
	recordsCmd.AddCommand(recordsAddCmd)
	recordsCmd.AddCommand(recordsRemoveCmd)
	recordsCmd.AddCommand(recordsRecentCmd)
	rootCmd.AddCommand(recordsCmd)
}

func recordStore() (*Services, error) {
	svc, err := requireServices()
	if err != nil {
		return nil, err
	}
	if svc.Records == nil {
		return nil, fmt.Errorf("%w: record store", ErrNotConfigured)
	}
	return svc, nil
}

func runRecordsImport(cmd *cobra.Command, args []string) error {
	svc, err := recordStore()
	if err != nil {
		return err
	}

	recs, err := seed.LoadFile(args[0])
	if err != nil {
		return err
	}
	n, err := seed.Import(cmd.Context(), svc.Records, recs)
	if err != nil {
		return fmt.Errorf("import stopped after %d records: %w", n, err)
	}
	cmd.Printf("Imported %d records.\n", n)
	return nil
}

func runRecordsList(cmd *cobra.Command, _ []string) error {
	svc, err := recordStore()
	if err != nil {
		return err
	}

	recs, err := svc.Records.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list records: %w", err)
	}

	if recordsJSON {
		data, err := json.MarshalIndent(recs, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal records: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(recs) == 0 {
		cmd.Println("No records. Use 'lookup records import' to add some.")
		return nil
	}
	for i := range recs {
		cmd.Printf("  %s  %-12s %s\n", recs[i].ID, recs[i].ObjectType, recs[i].Title)
	}
	return nil
}

func runRecordsAdd(cmd *cobra.Command, args []string) error {
	svc, err := recordStore()
	if err != nil {
		return err
	}

	rec := domain.Record{
		ID:         uuid.NewString(),
		ObjectType: recordType,
		Title:      strings.Join(args, " "),
		Subtitle:   recordSubtitle,
		Icon:       recordIcon,
		CreatedAt:  time.Now(),
	}
	if err := svc.Records.Save(cmd.Context(), rec); err != nil {
		return fmt.Errorf("failed to add record: %w", err)
	}
	cmd.Println(rec.ID)
	return nil
}

func runRecordsRemove(cmd *cobra.Command, args []string) error {
	svc, err := recordStore()
	if err != nil {
		return err
	}
	if err := svc.Records.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to remove record: %w", err)
	}
	cmd.Printf("Removed %s.\n", args[0])
	return nil
}

func runRecordsRecent(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	items, err := svc.Lookup.DefaultResults(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load recent records: %w", err)
	}
	if recentLimitFlag > 0 && len(items) > recentLimitFlag {
		items = items[:recentLimitFlag]
	}
	if len(items) == 0 {
		cmd.Println("No recently viewed records.")
		return nil
	}
	for i := range items {
		cmd.Printf("  %s  %s\n", items[i].ID, items[i].Title)
	}
	return nil
}
