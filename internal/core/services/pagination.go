package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driven"
)

// PaginationCoordinator builds and issues catalog page requests.
// It is inert in Search mode.
type PaginationCoordinator struct {
	fetcher  driven.CatalogFetcher
	pageSize int
}

// NewPaginationCoordinator creates a coordinator. A non-positive pageSize
// uses domain.DefaultPageSize.
func NewPaginationCoordinator(fetcher driven.CatalogFetcher, pageSize int) *PaginationCoordinator {
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}
	return &PaginationCoordinator{fetcher: fetcher, pageSize: pageSize}
}

// Active reports whether page requests are allowed in state.
func (c *PaginationCoordinator) Active(state *domain.PipelineState) bool {
	return state.Mode == domain.ModeCatalog
}

// CheckPage validates page against the known page range. Before the first
// page has been accepted only the lower bound is checked.
func (c *PaginationCoordinator) CheckPage(state *domain.PipelineState, page int) error {
	if page < 1 {
		return fmt.Errorf("page %d: %w", page, domain.ErrNoSuchPage)
	}
	if state.PageInfo != nil && !state.PageInfo.Contains(page) {
		return fmt.Errorf("page %d of %d: %w", page, state.PageInfo.TotalPages, domain.ErrNoSuchPage)
	}
	return nil
}

// Query builds the request for page. Sort, category and price are sent as
// server hints; the pipeline re-filters and re-sorts the response itself.
func (c *PaginationCoordinator) Query(state *domain.PipelineState, page int) domain.CatalogQuery {
	q := domain.CatalogQuery{
		Page:          page,
		Size:          c.pageSize,
		SortBy:        state.Sort.Field,
		SortDirection: state.Sort.Order,
		CategoryID:    state.CategoryID,
	}
	if !state.Filter.IsZero() {
		lo, hi := state.Filter.Bounds()
		q.MinPrice = &lo
		if state.Filter.MaxPrice != nil {
			q.MaxPrice = &hi
		}
	}
	return q
}

// Fetch issues the catalog request.
func (c *PaginationCoordinator) Fetch(ctx context.Context, q domain.CatalogQuery) (*domain.CatalogPage, error) {
	if c.fetcher == nil {
		return nil, domain.ErrCatalogUnavailable
	}
	page, err := c.fetcher.FetchCatalogPage(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog page %d: %w", q.Page, err)
	}
	if page == nil {
		return &domain.CatalogPage{PageInfo: domain.PageInfo{Page: q.Page, Size: q.Size}}, nil
	}
	return page, nil
}
