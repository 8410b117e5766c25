package memory

import (
	"cmp"
	"context"
	_ "embed"
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driven"
)

// Ensure Catalog implements the interface.
var _ driven.Catalog = (*Catalog)(nil)

//go:embed sample_catalog.yaml
var sampleCatalog []byte

// fixtureFile is the YAML layout of a catalog fixture.
type fixtureFile struct {
	Categories []fixtureCategory `yaml:"categories"`
	Products   []fixtureProduct  `yaml:"products"`
}

type fixtureCategory struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type fixtureProduct struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	// Price is kept verbatim; numbers and strings both decode into it.
	Price    string `yaml:"price"`
	Category string `yaml:"category"`
	SKU      string `yaml:"sku"`
	Brand    string `yaml:"brand"`
	Stock    int    `yaml:"stock"`
}

// Catalog is an in-memory catalog used for offline browsing and tests.
// It mimics the REST API: pages are 1-based, search is a case-insensitive
// substring match, and price bounds are applied as the server would.
type Catalog struct {
	mu         sync.RWMutex
	products   []domain.Product
	categories []domain.Category
	latency    time.Duration
}

// NewCatalog creates a catalog over the given records.
func NewCatalog(products []domain.Product, categories []domain.Category) *Catalog {
	return &Catalog{
		products:   slices.Clone(products),
		categories: slices.Clone(categories),
	}
}

// NewSampleCatalog loads the built-in sample catalog.
func NewSampleCatalog() (*Catalog, error) {
	return ParseCatalog(sampleCatalog)
}

// LoadCatalogFile loads a YAML fixture from path.
func LoadCatalogFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes a YAML fixture.
func ParseCatalog(data []byte) (*Catalog, error) {
	var f fixtureFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	names := make(map[string]string, len(f.Categories))
	categories := make([]domain.Category, 0, len(f.Categories))
	for _, c := range f.Categories {
		names[c.ID] = c.Name
		categories = append(categories, domain.Category{ID: c.ID, Name: c.Name, Description: c.Description})
	}

	products := make([]domain.Product, 0, len(f.Products))
	for i, p := range f.Products {
		if p.ID == "" {
			return nil, fmt.Errorf("parse catalog: product %d: %w: missing id", i, domain.ErrInvalidInput)
		}
		products = append(products, domain.Product{
			ID:           p.ID,
			Name:         p.Name,
			Description:  p.Description,
			Price:        domain.Price(p.Price),
			CategoryID:   p.Category,
			CategoryName: names[p.Category],
			SKU:          p.SKU,
			Brand:        p.Brand,
			Stock:        p.Stock,
		})
	}

	return NewCatalog(products, categories), nil
}

// SetLatency delays every call by d, honouring context cancellation.
// Useful for exercising out-of-order completion.
func (c *Catalog) SetLatency(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.latency = d
}

func (c *Catalog) wait(ctx context.Context) error {
	c.mu.RLock()
	d := c.latency
	c.mu.RUnlock()
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// FetchCatalogPage returns one page of the catalog.
func (c *Catalog) FetchCatalogPage(ctx context.Context, q domain.CatalogQuery) (*domain.CatalogPage, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	if q.Page < 1 {
		return nil, fmt.Errorf("page %d: %w", q.Page, domain.ErrInvalidInput)
	}
	size := q.Size
	if size <= 0 {
		size = domain.DefaultPageSize
	}

	c.mu.RLock()
	matched := make([]domain.Product, 0, len(c.products))
	for _, p := range c.products {
		if q.CategoryID != "" && p.CategoryID != q.CategoryID {
			continue
		}
		if !withinHints(p, q.MinPrice, q.MaxPrice) {
			continue
		}
		matched = append(matched, p)
	}
	c.mu.RUnlock()

	sortHint(matched, q.SortBy, q.SortDirection)

	total := int64(len(matched))
	start := min((q.Page-1)*size, len(matched))
	end := min(start+size, len(matched))

	return &domain.CatalogPage{
		Items: slices.Clone(matched[start:end]),
		PageInfo: domain.PageInfo{
			Page:          q.Page,
			Size:          size,
			TotalPages:    domain.TotalPagesFor(total, size),
			TotalElements: total,
		},
	}, nil
}

// SearchProducts matches query against name, description, brand and SKU.
func (c *Catalog) SearchProducts(ctx context.Context, query string, filter domain.FilterCriteria) ([]domain.Product, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	needle := strings.ToLower(strings.TrimSpace(query))
	results := []domain.Product{}
	if needle == "" {
		return results, nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.products {
		haystack := strings.ToLower(strings.Join([]string{p.Name, p.Description, p.Brand, p.SKU}, " "))
		if !strings.Contains(haystack, needle) {
			continue
		}
		if !withinHints(p, filter.MinPrice, filter.MaxPrice) {
			continue
		}
		results = append(results, p)
	}
	return results, nil
}

// GetProduct returns a product by ID.
func (c *Catalog) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return c.find(ctx, func(p domain.Product) bool { return p.ID == id })
}

// GetProductBySKU returns a product by SKU.
func (c *Catalog) GetProductBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	return c.find(ctx, func(p domain.Product) bool { return strings.EqualFold(p.SKU, sku) })
}

// ListCategories returns all categories.
func (c *Catalog) ListCategories(ctx context.Context) ([]domain.Category, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.categories), nil
}

func (c *Catalog) find(ctx context.Context, match func(domain.Product) bool) (*domain.Product, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.products {
		if match(p) {
			found := p
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

// withinHints applies server-side price bounds. Unlike the client filter,
// the server keeps products without a usable price when no bound is given.
func withinHints(p domain.Product, minPrice, maxPrice *float64) bool {
	if minPrice == nil && maxPrice == nil {
		return true
	}
	v, ok := p.Price.Float()
	if !ok {
		return false
	}
	if minPrice != nil && v < *minPrice {
		return false
	}
	if maxPrice != nil && v > *maxPrice {
		return false
	}
	return true
}

// sortHint orders products the way the server would for a sort hint.
func sortHint(products []domain.Product, field domain.SortField, order domain.SortOrder) {
	if field == "" {
		return
	}
	slices.SortStableFunc(products, func(a, b domain.Product) int {
		var c int
		if field == domain.SortByPrice {
			pa, _ := a.Price.Float()
			pb, _ := b.Price.Float()
			c = cmp.Compare(pa, pb)
		} else {
			c = cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		}
		if order == domain.SortDesc {
			return -c
		}
		return c
	})
}
