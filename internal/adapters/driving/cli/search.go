package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/docuchat/docuchat/internal/core/domain"
)

var (
	searchLimit int
	searchJSON  bool
)

// Styles for the search result table.
var (
	resultTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	resultScoreStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4"))
	resultSnippetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search ingested documents",
	Long: `Embeds the query and returns the most similar documents from
the stored corpus, best match first.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "maximum number of results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if searchService == nil {
		return errors.New("search service not configured")
	}

	results, err := searchService.Search(cmd.Context(), query, searchLimit)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}

	return outputSearchTable(cmd, results)
}

func outputSearchJSON(cmd *cobra.Command, results []domain.SearchResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results []domain.SearchResult) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range results {
		title := results[i].Title
		if title == "" {
			title = results[i].DocumentID
		}

		cmd.Printf("  [%d] %s %s\n", i+1,
			resultTitleStyle.Render(title),
			resultScoreStyle.Render(fmt.Sprintf("(%.2f)", results[i].Score)))

		if len(results[i].Highlights) > 0 {
			cmd.Printf("      %s\n", resultSnippetStyle.Render(results[i].Highlights[0]))
		}
		cmd.Println()
	}

	return nil
}
