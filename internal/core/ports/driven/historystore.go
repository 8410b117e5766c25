package driven

import (
	"context"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

// SearchHistoryStore persists applied searches.
type SearchHistoryStore interface {
	// Save records an entry.
	Save(ctx context.Context, entry domain.SearchHistoryEntry) error

	// List returns the most recent entries first, at most limit.
	// A limit of zero or less returns all entries.
	List(ctx context.Context, limit int) ([]domain.SearchHistoryEntry, error)

	// Clear removes every entry.
	Clear(ctx context.Context) error
}
