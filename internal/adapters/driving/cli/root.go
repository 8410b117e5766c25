package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driving"
	"github.com/custodia-labs/storefront-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Options holds the root flags that shape service wiring.
type Options struct {
	// APIURL overrides the configured catalog API root.
	APIURL string

	// ConfigDir overrides the configuration directory (default ~/.storefront).
	ConfigDir string

	// Offline serves the catalog from a fixture instead of the REST API.
	Offline bool

	// CatalogFile is the YAML fixture used in offline mode. Empty uses the
	// built-in sample catalog.
	CatalogFile string

	// Latency delays every offline catalog call, for watching how late
	// responses are reconciled.
	Latency time.Duration

	// Verbose enables debug logging.
	Verbose bool
}

// Services holds the driving ports the commands depend on.
type Services struct {
	Settings driving.SettingsService
	Products driving.ProductService
	History  driving.HistoryService

	// NewBrowser creates a fresh reconciliation pipeline. Each command
	// invocation owns exactly one.
	NewBrowser func(settings domain.CatalogSettings) driving.CatalogBrowser

	// Close releases resources such as the history database.
	Close func() error
}

// Bootstrap builds services from the parsed root flags.
type Bootstrap func(opts Options) (*Services, error)

var (
	rootOpts  Options
	bootstrap Bootstrap

	settingsService driving.SettingsService
	productService  driving.ProductService
	historyService  driving.HistoryService
	newBrowser      func(settings domain.CatalogSettings) driving.CatalogBrowser
	closeServices   func() error
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Browse and search the storefront product catalog",
	Long: `Storefront is a terminal client for the storefront catalog API.

Browse server-paginated catalog pages or run full-text searches, narrow the
results by price and reorder them by name or price. Responses that arrive
after a newer request has been issued are discarded, so what you see always
matches the last thing you asked for.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupServices,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootOpts.APIURL, "api-url", "", "catalog API root (overrides api.base_url)")
	flags.StringVar(&rootOpts.ConfigDir, "config-dir", "", "configuration directory (default ~/.storefront)")
	flags.BoolVar(&rootOpts.Offline, "offline", false, "serve the catalog from a local fixture")
	flags.StringVar(&rootOpts.CatalogFile, "catalog-file", "", "YAML catalog fixture for --offline")
	flags.DurationVar(&rootOpts.Latency, "latency", 0, "delay every --offline catalog call (e.g. 300ms)")
	flags.BoolVarP(&rootOpts.Verbose, "verbose", "v", false, "enable debug logging")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetBootstrap registers the function that wires services once flags are parsed.
func SetBootstrap(fn Bootstrap) {
	bootstrap = fn
}

// SetServices installs services directly.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	settingsService = s.Settings
	productService = s.Products
	historyService = s.History
	newBrowser = s.NewBrowser
	closeServices = s.Close
}

// Execute runs the root command and releases services afterwards.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if closeServices != nil {
		if cerr := closeServices(); cerr != nil {
			logger.Warn("close services: %v", cerr)
		}
	}
	return err
}

func setupServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(rootOpts.Verbose)
	if bootstrap == nil {
		return nil
	}
	if rootOpts.CatalogFile != "" && !rootOpts.Offline {
		return errors.New("--catalog-file requires --offline")
	}
	if rootOpts.Latency != 0 && !rootOpts.Offline {
		return errors.New("--latency requires --offline")
	}
	if rootOpts.Latency < 0 {
		return fmt.Errorf("--latency must not be negative, got %s", rootOpts.Latency)
	}

	services, err := bootstrap(rootOpts)
	if err != nil {
		return fmt.Errorf("failed to initialise: %w", err)
	}
	SetServices(services)
	return nil
}

// catalogSettings returns configured catalog settings, or defaults when
// no settings service is wired.
func catalogSettings() domain.CatalogSettings {
	if settingsService != nil {
		if s, err := settingsService.Get(); err == nil {
			return s.Catalog
		}
	}
	return domain.DefaultAppSettings().Catalog
}
