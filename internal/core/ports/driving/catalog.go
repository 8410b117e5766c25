package driving

import (
	"context"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

// Outcome reports what became of a request once it completed.
type Outcome int

const (
	// OutcomeApplied means the response replaced the raw list.
	OutcomeApplied Outcome = iota

	// OutcomeStale means a newer request superseded this one and the
	// response was dropped.
	OutcomeStale

	// OutcomeSkipped means no request was issued, e.g. pagination in
	// Search mode.
	OutcomeSkipped

	// OutcomeFailed means the collaborator returned an error and the
	// pipeline was left untouched.
	OutcomeFailed
)

// String returns the string representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeStale:
		return "stale"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// StateListener is invoked every time the published list is recomputed.
// pageInfo is nil outside Catalog mode.
type StateListener func(published []domain.Product, mode domain.Mode, pageInfo *domain.PageInfo)

// CatalogBrowser is the view-facing surface of the reconciliation pipeline.
// Methods are safe for concurrent use; fetches run on the caller's goroutine
// and their completions are ordered by generation, not by arrival.
type CatalogBrowser interface {
	// Snapshot returns a copy of the current pipeline state.
	Snapshot() domain.PipelineState

	// OnStateChange registers a listener for published list changes.
	OnStateChange(listener StateListener)

	// RequestPage fetches catalog page n (1-based). It is a no-op in Search mode.
	RequestPage(ctx context.Context, page int) (Outcome, error)

	// NextPage and PrevPage move within the known page range.
	NextPage(ctx context.Context) (Outcome, error)
	PrevPage(ctx context.Context) (Outcome, error)

	// Refresh re-fetches the current page in Catalog mode or re-runs the
	// current query in Search mode.
	Refresh(ctx context.Context) (Outcome, error)

	// SetCategory scopes the catalog and fetches its first page.
	// In Search mode the category is stored for the next catalog fetch.
	SetCategory(ctx context.Context, categoryID string) (Outcome, error)

	// RunSearch replaces the raw list with search results.
	// An empty query behaves like ClearSearch.
	RunSearch(ctx context.Context, query string) (Outcome, error)

	// ClearSearch returns to Catalog mode with a fresh first page.
	ClearSearch(ctx context.Context) (Outcome, error)

	// ClearFilters resets the price range and returns to a fresh first catalog page.
	ClearFilters(ctx context.Context) (Outcome, error)

	// SetFilter changes the price range and re-derives without fetching.
	SetFilter(criteria domain.FilterCriteria)

	// SetSort changes the ordering and re-derives without fetching.
	SetSort(criteria domain.SortCriteria)
}
