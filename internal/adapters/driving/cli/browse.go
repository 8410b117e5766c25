package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driving"
)

var (
	browsePage     int
	browseSize     int
	browseCategory string
	browseJSON     bool
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse catalog pages",
	Long: `Fetches one page of the catalog and prints it after client-side
price filtering and sorting.

Price bounds and ordering are also sent to the server as hints; the page
shown is always filtered and sorted locally.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().IntVarP(&browsePage, "page", "p", 1, "page number (1-based)")
	browseCmd.Flags().IntVarP(&browseSize, "size", "n", 0, "products per page (default from settings)")
	browseCmd.Flags().StringVar(&browseCategory, "category", "", "category ID to browse")
	browseCmd.Flags().BoolVar(&browseJSON, "json", false, "output as JSON")
	addPriceFlags(browseCmd)
	addSortFlags(browseCmd)
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	if newBrowser == nil {
		return errors.New("catalog not configured")
	}
	if browsePage < 1 {
		return fmt.Errorf("%w: page must be 1 or greater", domain.ErrInvalidInput)
	}

	browser, err := prepareBrowser(cmd, browseSize)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if browseCategory != "" {
		if _, err := browser.SetCategory(ctx, browseCategory); err != nil {
			return fmt.Errorf("failed to load catalog: %w", err)
		}
	}
	if browseCategory == "" || browsePage != 1 {
		if _, err := browser.RequestPage(ctx, browsePage); err != nil {
			return fmt.Errorf("failed to load catalog: %w", err)
		}
	}

	state := browser.Snapshot()
	if browseJSON {
		return outputListingJSON(cmd, &state)
	}
	outputListing(cmd, &state)
	return nil
}

// prepareBrowser creates a pipeline configured from settings and flags.
// size overrides the configured page size when positive.
func prepareBrowser(cmd *cobra.Command, size int) (driving.CatalogBrowser, error) {
	filter, err := filterFromFlags(cmd)
	if err != nil {
		return nil, err
	}

	settings := catalogSettings()
	sortCriteria, err := sortFromFlags(cmd, settings.DefaultSort)
	if err != nil {
		return nil, err
	}
	if size > 0 {
		settings.PageSize = size
	}

	browser := newBrowser(settings)
	browser.SetSort(sortCriteria)
	browser.SetFilter(filter)
	return browser, nil
}
