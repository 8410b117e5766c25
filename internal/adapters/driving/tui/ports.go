// Package tui provides an interactive terminal user interface for browsing
// the storefront catalog. It implements a driving adapter following
// hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
type Ports struct {
	// Browser is the catalog reconciliation pipeline the TUI renders.
	Browser driving.CatalogBrowser

	// Products provides product details and categories. Optional.
	Products driving.ProductService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(browser driving.CatalogBrowser, products driving.ProductService) *Ports {
	return &Ports{
		Browser:  browser,
		Products: products,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Browser == nil {
		return ErrMissingCatalogBrowser
	}
	return nil
}
