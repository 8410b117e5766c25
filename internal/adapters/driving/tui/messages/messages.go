// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/storefront-cli/internal/core/domain"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driving"
)

// Operation names the catalog request a FetchCompleted belongs to.
type Operation string

// Catalog operations issued by the catalog view.
const (
	OpPage         Operation = "page"
	OpSearch       Operation = "search"
	OpCategory     Operation = "category"
	OpRefresh      Operation = "refresh"
	OpClearSearch  Operation = "clear_search"
	OpClearFilters Operation = "clear_filters"
)

// FetchCompleted reports that a catalog or search request finished.
// Completions may arrive in any order; views re-read the pipeline snapshot
// rather than trusting the message's position in the stream.
type FetchCompleted struct {
	Op      Operation
	Outcome driving.Outcome
	Err     error
}

// StateChanged is sent when the pipeline republishes its list.
type StateChanged struct {
	Mode  domain.Mode
	Count int
}

// CategoriesLoaded carries the category list.
type CategoriesLoaded struct {
	Categories []domain.Category
	Err        error
}

// ProductSelected is sent when a product in the list is opened.
type ProductSelected struct {
	Product domain.Product
}

// ProductLoaded carries freshly fetched product details.
type ProductLoaded struct {
	Product *domain.Product
	Err     error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewCatalog is the catalog and search results view.
	ViewCatalog ViewType = iota
	// ViewProduct shows details for a single product.
	ViewProduct
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewCatalog:
		return "catalog"
	case ViewProduct:
		return "product"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
