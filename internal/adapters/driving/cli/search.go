package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lookup/internal/adapters/driving/tui/components/lookup"
	"github.com/custodia-labs/lookup/internal/core/domain"
)

var (
	searchExclude []string
	searchJSON    bool
	searchPlain   bool
)

var searchCmd = &cobra.Command{
	Use:   "search [term]",
	Short: "Search records once",
	Long: `Runs a single lookup search and prints the candidates.

The term is cleaned the same way the interactive lookup cleans it: wildcards
(* and ?) are removed, surrounding whitespace is trimmed and the term is
lower-cased. Matches are emphasised unless --plain is given.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringSliceVar(&searchExclude, "exclude", nil, "ids treated as already selected")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	searchCmd.Flags().BoolVar(&searchPlain, "plain", false, "do not emphasise matches")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	raw := strings.Join(args, " ")
	req := domain.SearchRequest{
		SearchTerm:    lookup.CleanTerm(raw),
		RawSearchTerm: raw,
		SelectedIDs:   searchExclude,
	}
	if req.SearchTerm == "" {
		return fmt.Errorf("%w: empty search term", domain.ErrInvalidInput)
	}

	results, err := svc.Lookup.Search(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}
	return outputSearchTable(cmd, req.SearchTerm, results)
}

func outputSearchJSON(cmd *cobra.Command, results []domain.ResultItem) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, term string, results []domain.ResultItem) error {
	if len(results) == 0 {
		cmd.Println("No results.")
		return nil
	}

	for i := range results {
		title, subtitle := results[i].Title, results[i].Subtitle
		if !searchPlain {
			title = lookup.Highlight(title, term)
			subtitle = lookup.Highlight(subtitle, term)
		}
		cmd.Printf("  [%d] %s (%s)\n", i+1, title, results[i].ID)
		if subtitle != "" {
			cmd.Printf("      %s\n", subtitle)
		}
	}
	return nil
}
