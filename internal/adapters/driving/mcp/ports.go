package mcp

import (
	"github.com/custodia-labs/storefront-cli/internal/core/domain"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// NewBrowser creates a reconciliation pipeline. Every tool call owns
	// a fresh one, so concurrent calls never share state.
	NewBrowser func(settings domain.CatalogSettings) driving.CatalogBrowser

	// Products looks up single products and categories.
	Products driving.ProductService

	// Settings supplies browsing defaults.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.NewBrowser == nil {
		return ErrMissingCatalog
	}
	// Products and Settings are optional
	return nil
}

// catalogSettings returns configured catalog settings, or defaults.
func (p *Ports) catalogSettings() domain.CatalogSettings {
	if p.Settings != nil {
		if s, err := p.Settings.Get(); err == nil {
			return s.Catalog
		}
	}
	return domain.DefaultAppSettings().Catalog
}
