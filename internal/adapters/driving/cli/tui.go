package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for the storefront.

The TUI shows one catalog page at a time, or every match while a search
is active. Price filtering and sorting apply instantly to what is shown.

Controls:
  ↑/k, ↓/j - Navigate products
  Enter    - Product details
  /        - Search (empty query returns to the catalog)
  p        - Price range (tab switches min/max)
  s, o     - Sort field, sort order
  [, ]     - Previous / next page
  g        - Cycle category
  c, x, r  - Clear filters, clear search, refresh
  ?        - Toggle help
  q        - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if newBrowser == nil {
		return fmt.Errorf("failed to create TUI: %w", tui.ErrMissingCatalogBrowser)
	}

	ports := tui.NewPorts(newBrowser(catalogSettings()), productService)

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
