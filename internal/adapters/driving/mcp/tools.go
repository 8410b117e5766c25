package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driving"
)

// BrowseInput is the input schema for the browse_catalog tool.
type BrowseInput struct {
	Page       int      `json:"page,omitempty" jsonschema:"catalog page, 1-based (default 1)"`
	Size       int      `json:"size,omitempty" jsonschema:"products per page (default from settings)"`
	CategoryID string   `json:"category_id,omitempty" jsonschema:"restrict to one category"`
	MinPrice   *float64 `json:"min_price,omitempty" jsonschema:"minimum price, requires max_price"`
	MaxPrice   *float64 `json:"max_price,omitempty" jsonschema:"maximum price, requires min_price"`
	SortField  string   `json:"sort_field,omitempty" jsonschema:"name or price"`
	SortOrder  string   `json:"sort_order,omitempty" jsonschema:"asc or desc"`
}

// SearchInput is the input schema for the search_products tool.
type SearchInput struct {
	Query     string   `json:"query" jsonschema:"text to match against product names, descriptions, brands and SKUs"`
	MinPrice  *float64 `json:"min_price,omitempty" jsonschema:"minimum price, requires max_price"`
	MaxPrice  *float64 `json:"max_price,omitempty" jsonschema:"maximum price, requires min_price"`
	SortField string   `json:"sort_field,omitempty" jsonschema:"name or price"`
	SortOrder string   `json:"sort_order,omitempty" jsonschema:"asc or desc"`
}

// ListingOutput is the output schema for both tools.
type ListingOutput struct {
	Mode     string          `json:"mode"`
	Query    string          `json:"query,omitempty"`
	Page     *PageOutput     `json:"page,omitempty"`
	Sort     string          `json:"sort"`
	Filter   string          `json:"filter"`
	Count    int             `json:"count"`
	Products []ProductOutput `json:"products"`
}

// PageOutput describes the catalog page returned.
type PageOutput struct {
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalPages    int   `json:"total_pages"`
	TotalElements int64 `json:"total_elements"`
}

// ProductOutput represents a single product.
type ProductOutput struct {
	ProductID   string `json:"product_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price"`
	Category    string `json:"category,omitempty"`
	SKU         string `json:"sku,omitempty"`
	Brand       string `json:"brand,omitempty"`
	Stock       int    `json:"stock"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "browse_catalog",
		Description: "Fetch one page of the product catalog, filtered by price and sorted by name or price",
	}, s.handleBrowse)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_products",
		Description: "Search all products by text, filtered by price and sorted by name or price",
	}, s.handleSearch)
}

// handleBrowse handles the browse_catalog tool invocation.
func (s *Server) handleBrowse(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input BrowseInput,
) (*mcp.CallToolResult, ListingOutput, error) {
	page := input.Page
	if page <= 0 {
		page = 1
	}

	browser, err := s.newBrowser(input.Size, input.MinPrice, input.MaxPrice, input.SortField, input.SortOrder)
	if err != nil {
		return nil, ListingOutput{}, err
	}

	if input.CategoryID != "" {
		if _, err := browser.SetCategory(ctx, input.CategoryID); err != nil {
			return nil, ListingOutput{}, fmt.Errorf("loading catalog: %w", err)
		}
	}
	if input.CategoryID == "" || page != 1 {
		if _, err := browser.RequestPage(ctx, page); err != nil {
			return nil, ListingOutput{}, fmt.Errorf("loading catalog: %w", err)
		}
	}

	return nil, toListing(browser.Snapshot()), nil
}

// handleSearch handles the search_products tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, ListingOutput, error) {
	browser, err := s.newBrowser(0, input.MinPrice, input.MaxPrice, input.SortField, input.SortOrder)
	if err != nil {
		return nil, ListingOutput{}, err
	}

	if _, err := browser.RunSearch(ctx, input.Query); err != nil {
		return nil, ListingOutput{}, fmt.Errorf("searching products: %w", err)
	}

	return nil, toListing(browser.Snapshot()), nil
}

// newBrowser validates tool arguments and builds a configured pipeline.
func (s *Server) newBrowser(size int, minPrice, maxPrice *float64, field, order string) (driving.CatalogBrowser, error) {
	filter := domain.FilterCriteria{MinPrice: minPrice, MaxPrice: maxPrice}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	settings := s.ports.catalogSettings()
	if field == "" {
		field = settings.DefaultSort.Field.String()
	}
	if order == "" {
		order = settings.DefaultSort.Order.String()
	}
	sortCriteria, err := domain.ParseSortCriteria(field, order)
	if err != nil {
		return nil, err
	}
	if size > 0 {
		settings.PageSize = size
	}

	browser := s.ports.NewBrowser(settings)
	browser.SetSort(sortCriteria)
	browser.SetFilter(filter)
	return browser, nil
}

func toListing(state domain.PipelineState) ListingOutput {
	out := ListingOutput{
		Mode:     state.Mode.String(),
		Query:    state.Query,
		Sort:     state.Sort.String(),
		Filter:   state.Filter.String(),
		Count:    len(state.PublishedList),
		Products: make([]ProductOutput, len(state.PublishedList)),
	}
	if info := state.PageInfo; info != nil {
		out.Page = &PageOutput{
			Page:          info.Page,
			Size:          info.Size,
			TotalPages:    info.TotalPages,
			TotalElements: info.TotalElements,
		}
	}
	for i := range state.PublishedList {
		out.Products[i] = toProductOutput(&state.PublishedList[i])
	}
	return out
}

func toProductOutput(p *domain.Product) ProductOutput {
	return ProductOutput{
		ProductID:   p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.String(),
		Category:    p.CategoryName,
		SKU:         p.SKU,
		Brand:       p.Brand,
		Stock:       p.Stock,
	}
}
