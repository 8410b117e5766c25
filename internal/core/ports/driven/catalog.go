package driven

import (
	"context"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

// CatalogFetcher retrieves server-paginated catalog pages.
type CatalogFetcher interface {
	// FetchCatalogPage returns one page. Sort and price fields of the query
	// are hints; callers re-filter and re-sort the items themselves.
	FetchCatalogPage(ctx context.Context, query domain.CatalogQuery) (*domain.CatalogPage, error)
}

// ProductSearcher runs text and price searches.
type ProductSearcher interface {
	// SearchProducts returns every match, unpaginated and unsorted.
	// No matches is an empty slice, never nil.
	SearchProducts(ctx context.Context, query string, filter domain.FilterCriteria) ([]domain.Product, error)
}

// ProductDirectory looks up individual products and categories.
type ProductDirectory interface {
	// GetProduct returns a product by ID or domain.ErrNotFound.
	GetProduct(ctx context.Context, id string) (*domain.Product, error)

	// GetProductBySKU returns a product by SKU or domain.ErrNotFound.
	GetProductBySKU(ctx context.Context, sku string) (*domain.Product, error)

	// ListCategories returns all categories.
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// Catalog bundles the collaborators a storefront backend provides.
type Catalog interface {
	CatalogFetcher
	ProductSearcher
	ProductDirectory
}
