package rest

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.Catalog = (*Client)(nil)

// FetchCatalogPage fetches one catalog page. q.Page is 1-based.
func (c *Client) FetchCatalogPage(ctx context.Context, q domain.CatalogQuery) (*domain.CatalogPage, error) {
	if q.Page < 1 {
		return nil, fmt.Errorf("%w: page %d", domain.ErrInvalidInput, q.Page)
	}
	if q.Size <= 0 {
		q.Size = domain.DefaultPageSize
	}

	params := url.Values{}
	params.Set("page", strconv.Itoa(q.Page-1))
	params.Set("size", strconv.Itoa(q.Size))
	if q.SortBy != "" {
		params.Set("sortBy", q.SortBy.String())
	}
	if q.SortDirection != "" {
		params.Set("sortDirection", q.SortDirection.String())
	}
	if q.CategoryID != "" {
		params.Set("categoryId", q.CategoryID)
	}
	setPrice(params, "minPrice", q.MinPrice)
	setPrice(params, "maxPrice", q.MaxPrice)

	body, err := c.get(ctx, "products", params)
	if err != nil {
		return nil, err
	}
	return decodePage(body, q)
}

// SearchProducts runs a full-text search. A blank query returns an empty
// list without calling the API.
func (c *Client) SearchProducts(ctx context.Context, query string, filter domain.FilterCriteria) ([]domain.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.Product{}, nil
	}

	params := url.Values{}
	params.Set("q", query)
	setPrice(params, "minPrice", filter.MinPrice)
	setPrice(params, "maxPrice", filter.MaxPrice)

	body, err := c.get(ctx, "productssearch/item", params)
	if err != nil {
		return nil, err
	}
	return decodeProducts(body)
}

// GetProduct fetches a product by ID.
func (c *Client) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return c.getProduct(ctx, "products", id)
}

// GetProductBySKU fetches a product by SKU.
func (c *Client) GetProductBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	return c.getProduct(ctx, "products/sku", sku)
}

func (c *Client) getProduct(ctx context.Context, prefix, key string) (*domain.Product, error) {
	body, err := c.get(ctx, prefix+"/"+url.PathEscape(key), nil)
	if err != nil {
		return nil, err
	}
	if !body.IsObject() {
		return nil, fmt.Errorf("%w: expected product object, got %s", ErrDecode, body.Type)
	}
	p := decodeProduct(body)
	return &p, nil
}

// ListCategories fetches all categories.
func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	body, err := c.get(ctx, "categories", nil)
	if err != nil {
		return nil, err
	}
	return decodeCategories(body)
}

func setPrice(params url.Values, key string, v *float64) {
	if v != nil {
		params.Set(key, strconv.FormatFloat(*v, 'f', -1, 64))
	}
}
