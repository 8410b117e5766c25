package mcp

import (
	"context"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driving"
)

// mockBrowser is a mock implementation of driving.CatalogBrowser.
// It records the calls a tool makes and returns a canned snapshot.
type mockBrowser struct {
	settings domain.CatalogSettings
	state    domain.PipelineState
	err      error

	sort     *domain.SortCriteria
	filter   *domain.FilterCriteria
	pages    []int
	category string
	query    string
}

func (m *mockBrowser) Snapshot() domain.PipelineState { return m.state }

func (m *mockBrowser) OnStateChange(_ driving.StateListener) {}

func (m *mockBrowser) RequestPage(_ context.Context, page int) (driving.Outcome, error) {
	m.pages = append(m.pages, page)
	return m.outcome()
}

func (m *mockBrowser) NextPage(ctx context.Context) (driving.Outcome, error) {
	return m.RequestPage(ctx, 0)
}

func (m *mockBrowser) PrevPage(ctx context.Context) (driving.Outcome, error) {
	return m.RequestPage(ctx, 0)
}

func (m *mockBrowser) Refresh(_ context.Context) (driving.Outcome, error) {
	return m.outcome()
}

func (m *mockBrowser) SetCategory(_ context.Context, categoryID string) (driving.Outcome, error) {
	m.category = categoryID
	return m.outcome()
}

func (m *mockBrowser) RunSearch(_ context.Context, query string) (driving.Outcome, error) {
	m.query = query
	return m.outcome()
}

func (m *mockBrowser) ClearSearch(_ context.Context) (driving.Outcome, error) {
	return m.outcome()
}

func (m *mockBrowser) ClearFilters(_ context.Context) (driving.Outcome, error) {
	return m.outcome()
}

func (m *mockBrowser) SetFilter(criteria domain.FilterCriteria) { m.filter = &criteria }

func (m *mockBrowser) SetSort(criteria domain.SortCriteria) { m.sort = &criteria }

func (m *mockBrowser) outcome() (driving.Outcome, error) {
	if m.err != nil {
		return driving.OutcomeFailed, m.err
	}
	return driving.OutcomeApplied, nil
}

// factory returns a NewBrowser func that hands out m and records settings.
func (m *mockBrowser) factory() func(domain.CatalogSettings) driving.CatalogBrowser {
	return func(settings domain.CatalogSettings) driving.CatalogBrowser {
		m.settings = settings
		return m
	}
}

// mockProductService is a mock implementation of driving.ProductService.
type mockProductService struct {
	product    *domain.Product
	categories []domain.Category
	err        error
}

func (m *mockProductService) Get(_ context.Context, _ string) (*domain.Product, error) {
	return m.product, m.err
}

func (m *mockProductService) GetBySKU(_ context.Context, _ string) (*domain.Product, error) {
	return m.product, m.err
}

func (m *mockProductService) Categories(_ context.Context) ([]domain.Category, error) {
	return m.categories, m.err
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings domain.AppSettings
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	s := m.settings
	return &s, nil
}

func (m *mockSettingsService) Save(_ *domain.AppSettings) error { return nil }

func (m *mockSettingsService) Set(_, _ string) error { return nil }

func (m *mockSettingsService) Keys() []string { return nil }

func (m *mockSettingsService) GetDefaults() domain.AppSettings { return domain.DefaultAppSettings() }
