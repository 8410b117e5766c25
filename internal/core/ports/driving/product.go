package driving

import (
	"context"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

// ProductService provides single-product lookup and category listing.
type ProductService interface {
	// Get returns a product by ID.
	Get(ctx context.Context, id string) (*domain.Product, error)

	// GetBySKU returns a product by SKU.
	GetBySKU(ctx context.Context, sku string) (*domain.Product, error)

	// Categories lists all categories.
	Categories(ctx context.Context) ([]domain.Category, error)
}

// HistoryService exposes recorded searches.
type HistoryService interface {
	// Recent returns the newest entries first. limit <= 0 uses the configured default.
	Recent(ctx context.Context, limit int) ([]domain.SearchHistoryEntry, error)

	// Clear removes all entries.
	Clear(ctx context.Context) error
}
