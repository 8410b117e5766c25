package cli

import (
	"bufio"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the catalog API connection, browsing defaults and
search history.

Use subcommands to change individual keys or run the interactive wizard.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a single setting",
	Long: `Set a single setting by key.

Available keys:
  api.base_url             Catalog API root URL
  api.timeout_seconds      Per-request timeout
  api.requests_per_second  Request throttle (0 disables)
  api.max_retries          Retries for transient failures
  catalog.page_size        Products per catalog page
  catalog.sort_field       name or price
  catalog.sort_order       asc or desc
  catalog.locale           BCP 47 tag used for name ordering
  history.enabled          true or false
  history.limit            Entries shown by default`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure the API connection and browsing defaults.`,
	RunE:  runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[API]")
	cmd.Printf("  Base URL: %s\n", settings.API.BaseURL)
	cmd.Printf("  Timeout: %s\n", settings.API.Timeout)
	if settings.API.RequestsPerSecond > 0 {
		cmd.Printf("  Rate limit: %g requests/s\n", settings.API.RequestsPerSecond)
	} else {
		cmd.Printf("  Rate limit: unlimited\n")
	}
	cmd.Printf("  Max retries: %d\n", settings.API.MaxRetries)
	cmd.Println()

	cmd.Println("[Catalog]")
	cmd.Printf("  Page size: %d\n", settings.Catalog.PageSize)
	cmd.Printf("  Default sort: %s\n", settings.Catalog.DefaultSort)
	cmd.Printf("  Locale: %s\n", settings.Catalog.Locale)
	cmd.Println()

	cmd.Println("[History]")
	if settings.History.Enabled {
		cmd.Printf("  Enabled: yes\n")
		cmd.Printf("  Limit: %d\n", settings.History.Limit)
	} else {
		cmd.Printf("  Enabled: no\n")
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if !slices.Contains(settingsService.Keys(), key) {
		return fmt.Errorf("unknown setting %q (available: %s)", key, strings.Join(settingsService.Keys(), ", "))
	}
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Storefront Settings Wizard")
	cmd.Println("==========================")
	cmd.Println()

	reader := bufio.NewReader(cmd.InOrStdin())

	// Step 1: API connection
	cmd.Println("Step 1: Catalog API")
	cmd.Println("-------------------")
	cmd.Printf("Base URL [%s]: ", settings.API.BaseURL)
	if input := readLine(reader); input != "" {
		settings.API.BaseURL = strings.TrimRight(input, "/")
	}
	cmd.Printf("Timeout in seconds [%d]: ", int(settings.API.Timeout/time.Second))
	if n := parsePositive(readLine(reader)); n > 0 {
		settings.API.Timeout = time.Duration(n) * time.Second
	}
	cmd.Println()

	// Step 2: browsing defaults
	cmd.Println("Step 2: Browsing")
	cmd.Println("----------------")
	cmd.Printf("Page size [%d]: ", settings.Catalog.PageSize)
	if n := parsePositive(readLine(reader)); n > 0 {
		settings.Catalog.PageSize = n
	}

	sorts := []domain.SortCriteria{
		{Field: domain.SortByName, Order: domain.SortAsc},
		{Field: domain.SortByName, Order: domain.SortDesc},
		{Field: domain.SortByPrice, Order: domain.SortAsc},
		{Field: domain.SortByPrice, Order: domain.SortDesc},
	}
	current := 1
	cmd.Println("Default sort:")
	for i, s := range sorts {
		if s == settings.Catalog.DefaultSort {
			current = i + 1
		}
		cmd.Printf("  %d. %s\n", i+1, s)
	}
	cmd.Printf("\nEnter choice [%d]: ", current)
	settings.Catalog.DefaultSort = sorts[parseChoice(readLine(reader), len(sorts), current)-1]
	cmd.Println()

	// Step 3: history
	cmd.Println("Step 3: Search History")
	cmd.Println("----------------------")
	defaultAnswer := "y"
	if !settings.History.Enabled {
		defaultAnswer = "n"
	}
	cmd.Printf("Record searches? (y/n) [%s]: ", defaultAnswer)
	switch strings.ToLower(readLine(reader)) {
	case "y", "yes":
		settings.History.Enabled = true
	case "n", "no":
		settings.History.Enabled = false
	}
	cmd.Println()

	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Println("Settings saved.")
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

// parsePositive returns the positive integer in input, or 0.
func parsePositive(input string) int {
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 {
		return 0
	}
	return val
}
