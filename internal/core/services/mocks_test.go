package services

import (
	"context"
	"errors"
	"sync"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

// --- Mock implementations ---

// fakeFetcher implements driven.CatalogFetcher. Pages listed in gates block
// until their channel is closed; started receives each page as it is fetched.
type fakeFetcher struct {
	mu      sync.Mutex
	pages   map[int]*domain.CatalogPage
	err     error
	nilPage bool
	gates   map[int]chan struct{}
	started chan int
	calls   []domain.CatalogQuery
}

func (f *fakeFetcher) FetchCatalogPage(ctx context.Context, q domain.CatalogQuery) (*domain.CatalogPage, error) {
	f.mu.Lock()
	f.calls = append(f.calls, q)
	gate := f.gates[q.Page]
	started := f.started
	err := f.err
	page := f.pages[q.Page]
	f.mu.Unlock()

	if started != nil {
		started <- q.Page
	}
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}
	if f.nilPage {
		return nil, nil
	}
	if page == nil {
		return &domain.CatalogPage{PageInfo: domain.PageInfo{Page: q.Page, Size: q.Size, TotalPages: 1}}, nil
	}
	cp := *page
	return &cp, nil
}

func (f *fakeFetcher) setErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func (f *fakeFetcher) queries() []domain.CatalogQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.CatalogQuery(nil), f.calls...)
}

// fakeSearcher implements driven.ProductSearcher.
type fakeSearcher struct {
	mu      sync.Mutex
	results map[string][]domain.Product
	err     error
	gates   map[string]chan struct{}
	filters []domain.FilterCriteria
}

func (s *fakeSearcher) SearchProducts(ctx context.Context, query string, filter domain.FilterCriteria) ([]domain.Product, error) {
	s.mu.Lock()
	s.filters = append(s.filters, filter)
	gate := s.gates[query]
	err := s.err
	results := s.results[query]
	s.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}
	return results, nil
}

// fakeHistory implements driven.SearchHistoryStore.
type fakeHistory struct {
	mu      sync.Mutex
	entries []domain.SearchHistoryEntry
	err     error
}

func (h *fakeHistory) Save(_ context.Context, entry domain.SearchHistoryEntry) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.err != nil {
		return h.err
	}
	h.entries = append(h.entries, entry)
	return nil
}

func (h *fakeHistory) List(_ context.Context, limit int) ([]domain.SearchHistoryEntry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.err != nil {
		return nil, h.err
	}
	out := append([]domain.SearchHistoryEntry(nil), h.entries...)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (h *fakeHistory) Clear(_ context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.err != nil {
		return h.err
	}
	h.entries = nil
	return nil
}

// fakeDirectory implements driven.ProductDirectory.
type fakeDirectory struct {
	products   map[string]domain.Product
	categories []domain.Category
	err        error
}

func (d *fakeDirectory) GetProduct(_ context.Context, id string) (*domain.Product, error) {
	if d.err != nil {
		return nil, d.err
	}
	p, ok := d.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (d *fakeDirectory) GetProductBySKU(_ context.Context, sku string) (*domain.Product, error) {
	if d.err != nil {
		return nil, d.err
	}
	for _, p := range d.products {
		if p.SKU == sku {
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (d *fakeDirectory) ListCategories(_ context.Context) ([]domain.Category, error) {
	if d.err != nil {
		return nil, d.err
	}
	return d.categories, nil
}

var errTransport = errors.New("transport: connection reset")

func catalogPage(page, totalPages int, items ...domain.Product) *domain.CatalogPage {
	return &domain.CatalogPage{
		Items: items,
		PageInfo: domain.PageInfo{
			Page:          page,
			Size:          domain.DefaultPageSize,
			TotalPages:    totalPages,
			TotalElements: int64(totalPages * domain.DefaultPageSize),
		},
	}
}
