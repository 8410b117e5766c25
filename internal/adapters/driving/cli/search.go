package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

var searchJSON bool

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the product catalog",
	Long: `Runs a full-text search across product names, descriptions, brands and SKUs.
Search results are not paginated; price bounds and ordering are applied locally.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	addPriceFlags(searchCmd)
	addSortFlags(searchCmd)
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if newBrowser == nil {
		return errors.New("catalog not configured")
	}

	browser, err := prepareBrowser(cmd, 0)
	if err != nil {
		return err
	}

	if _, err := browser.RunSearch(cmd.Context(), query); err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	state := browser.Snapshot()
	if searchJSON {
		return outputListingJSON(cmd, &state)
	}
	if state.Mode == domain.ModeSearch && len(state.PublishedList) == 0 {
		cmd.Println("No results found.")
		return nil
	}
	outputListing(cmd, &state)
	return nil
}
