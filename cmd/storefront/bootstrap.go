package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/custodia-labs/storefront-cli/internal/adapters/driven/catalog/rest"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/storefront-cli/internal/core/domain"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driven"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driving"
	"github.com/custodia-labs/storefront-cli/internal/core/services"
	"github.com/custodia-labs/storefront-cli/internal/logger"
)

// bootstrap wires driven adapters into services once root flags are parsed.
func bootstrap(opts cli.Options) (*cli.Services, error) {
	configStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	if opts.APIURL != "" {
		settings.API.BaseURL = opts.APIURL
	}

	catalog, err := newCatalog(opts, settings.API)
	if err != nil {
		return nil, err
	}

	watchCtx, stopWatch := context.WithCancel(context.Background())
	if fixture, ok := catalog.(*memory.Catalog); ok && opts.CatalogFile != "" {
		if err := fixture.Watch(watchCtx, opts.CatalogFile, nil); err != nil {
			logger.Warn("catalog file will not be reloaded: %v", err)
		}
	}

	dataDir := ""
	if opts.ConfigDir != "" {
		dataDir = filepath.Join(opts.ConfigDir, "data")
	}
	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		stopWatch()
		return nil, fmt.Errorf("opening history database: %w", err)
	}
	history := store.HistoryStore()
	logger.Debug("history database: %s", store.Path())

	historyEnabled := settings.History.Enabled
	return &cli.Services{
		Settings: settingsService,
		Products: services.NewProductService(catalog),
		History:  services.NewHistoryService(history, settings.History.Limit),
		NewBrowser: func(cs domain.CatalogSettings) driving.CatalogBrowser {
			r := services.NewReconciler(catalog, catalog, cs)
			if historyEnabled {
				r.SetHistoryStore(history)
			}
			return r
		},
		Close: func() error {
			stopWatch()
			return store.Close()
		},
	}, nil
}

// newCatalog returns the offline fixture catalog or the REST client.
func newCatalog(opts cli.Options, api domain.APISettings) (driven.Catalog, error) {
	if opts.Offline {
		var c *memory.Catalog
		var err error
		if opts.CatalogFile != "" {
			c, err = memory.LoadCatalogFile(opts.CatalogFile)
			if err != nil {
				return nil, fmt.Errorf("loading catalog file: %w", err)
			}
			logger.Debug("offline catalog: %s", opts.CatalogFile)
		} else {
			c, err = memory.NewSampleCatalog()
			if err != nil {
				return nil, fmt.Errorf("loading sample catalog: %w", err)
			}
			logger.Debug("offline catalog: built-in sample")
		}
		if opts.Latency > 0 {
			c.SetLatency(opts.Latency)
			logger.Debug("offline catalog latency: %s", opts.Latency)
		}
		return c, nil
	}
	if opts.CatalogFile != "" {
		return nil, errors.New("--catalog-file requires --offline")
	}
	if opts.Latency != 0 {
		return nil, errors.New("--latency requires --offline")
	}

	client, err := rest.NewClient(rest.ConfigFromSettings(api))
	if err != nil {
		return nil, fmt.Errorf("creating catalog client: %w", err)
	}
	logger.Debug("catalog api: %s", client.BaseURL())
	return client, nil
}
