package rest

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

// firstOf returns the first existing, non-null field among paths.
func firstOf(r gjson.Result, paths ...string) gjson.Result {
	for _, p := range paths {
		if v := r.Get(p); v.Exists() && v.Type != gjson.Null {
			return v
		}
	}
	return gjson.Result{}
}

// decodePrice keeps the wire text so the pipeline can decide validity.
func decodePrice(v gjson.Result) domain.Price {
	switch v.Type {
	case gjson.Number:
		return domain.Price(v.Raw)
	case gjson.String:
		return domain.Price(v.String())
	default:
		return ""
	}
}

// decodeProduct maps one product object. Both the flat DTO
// (categoryName) and a nested category object are accepted.
func decodeProduct(r gjson.Result) domain.Product {
	return domain.Product{
		ID:           firstOf(r, "productId", "id").String(),
		Name:         r.Get("name").String(),
		Description:  r.Get("description").String(),
		Price:        decodePrice(r.Get("price")),
		CategoryID:   firstOf(r, "categoryId", "category.categoryId", "category.id").String(),
		CategoryName: firstOf(r, "categoryName", "category.name").String(),
		SKU:          r.Get("sku").String(),
		Brand:        r.Get("brand").String(),
		Stock:        int(firstOf(r, "stockQuantity", "stock").Int()),
	}
}

// decodeProducts maps an array of products, or a single product object.
// null decodes to an empty list.
func decodeProducts(r gjson.Result) ([]domain.Product, error) {
	out := []domain.Product{}
	switch {
	case r.IsArray():
		var err error
		r.ForEach(func(_, v gjson.Result) bool {
			if !v.IsObject() {
				err = fmt.Errorf("%w: expected product object, got %s", ErrDecode, v.Type)
				return false
			}
			out = append(out, decodeProduct(v))
			return true
		})
		return out, err
	case r.IsObject():
		return append(out, decodeProduct(r)), nil
	case r.Type == gjson.Null || !r.Exists():
		return out, nil
	default:
		return nil, fmt.Errorf("%w: expected products, got %s", ErrDecode, r.Type)
	}
}

// decodePage maps a catalog response. A page object carries zero-based
// "number"; a bare array is treated as a single complete page.
func decodePage(r gjson.Result, q domain.CatalogQuery) (*domain.CatalogPage, error) {
	if r.IsArray() {
		items, err := decodeProducts(r)
		if err != nil {
			return nil, err
		}
		return &domain.CatalogPage{
			Items: items,
			PageInfo: domain.PageInfo{
				Page:          q.Page,
				Size:          q.Size,
				TotalPages:    1,
				TotalElements: int64(len(items)),
			},
		}, nil
	}
	if !r.IsObject() {
		return nil, fmt.Errorf("%w: expected catalog page, got %s", ErrDecode, r.Type)
	}

	items, err := decodeProducts(firstOf(r, "content", "items"))
	if err != nil {
		return nil, err
	}

	info := domain.PageInfo{
		Page:          q.Page,
		Size:          q.Size,
		TotalPages:    int(r.Get("totalPages").Int()),
		TotalElements: r.Get("totalElements").Int(),
	}
	if n := r.Get("number"); n.Exists() {
		info.Page = int(n.Int()) + 1
	}
	if s := r.Get("size"); s.Exists() && s.Int() > 0 {
		info.Size = int(s.Int())
	}
	if !r.Get("totalElements").Exists() {
		info.TotalElements = int64(len(items))
	}
	if !r.Get("totalPages").Exists() {
		info.TotalPages = domain.TotalPagesFor(info.TotalElements, info.Size)
	}

	return &domain.CatalogPage{Items: items, PageInfo: info}, nil
}

// decodeCategories maps an array of categories or a page of them.
func decodeCategories(r gjson.Result) ([]domain.Category, error) {
	if r.IsObject() {
		r = firstOf(r, "content", "items")
	}
	if !r.IsArray() {
		return nil, fmt.Errorf("%w: expected categories, got %s", ErrDecode, r.Type)
	}

	out := []domain.Category{}
	r.ForEach(func(_, v gjson.Result) bool {
		out = append(out, domain.Category{
			ID:          firstOf(v, "categoryId", "id").String(),
			Name:        v.Get("name").String(),
			Description: v.Get("description").String(),
		})
		return true
	})
	return out, nil
}
