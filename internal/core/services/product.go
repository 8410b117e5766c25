package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driven"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driving"
)

// Ensure ProductService implements the interface.
var _ driving.ProductService = (*ProductService)(nil)

// ProductService provides single-product lookups outside the pipeline.
type ProductService struct {
	directory driven.ProductDirectory
}

// NewProductService creates a new product service.
func NewProductService(directory driven.ProductDirectory) *ProductService {
	return &ProductService{directory: directory}
}

// Get returns a product by ID.
func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: product id is required", domain.ErrInvalidInput)
	}
	p, err := s.directory.GetProduct(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product %s: %w", id, err)
	}
	return p, nil
}

// GetBySKU returns a product by SKU.
func (s *ProductService) GetBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return nil, fmt.Errorf("%w: sku is required", domain.ErrInvalidInput)
	}
	p, err := s.directory.GetProductBySKU(ctx, sku)
	if err != nil {
		return nil, fmt.Errorf("get product by sku %s: %w", sku, err)
	}
	return p, nil
}

// Categories lists all categories.
func (s *ProductService) Categories(ctx context.Context) ([]domain.Category, error) {
	cats, err := s.directory.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cats, nil
}
