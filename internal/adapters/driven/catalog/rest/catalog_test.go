package rest

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

func ptr(v float64) *float64 { return &v }

func TestFetchCatalogPage_QueryAndPageMapping(t *testing.T) {
	var got url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products", r.URL.Path)
		got = r.URL.Query()
		_, _ = w.Write([]byte(`{
			"content": [
				{"productId": 7, "name": "Lamp", "price": 19.5, "categoryId": 3, "categoryName": "Home", "sku": "L-7", "stockQuantity": 4},
				{"id": "8", "name": "Rug", "price": "call us", "category": {"categoryId": "3", "name": "Home"}, "stock": 1}
			],
			"totalPages": 4,
			"totalElements": 38,
			"number": 1,
			"size": 10
		}`))
	}, 0)

	page, err := client.FetchCatalogPage(context.Background(), domain.CatalogQuery{
		Page:          2,
		Size:          10,
		SortBy:        domain.SortByPrice,
		SortDirection: domain.SortDesc,
		CategoryID:    "3",
		MinPrice:      ptr(5),
		MaxPrice:      ptr(99.99),
	})
	require.NoError(t, err)

	assert.Equal(t, "1", got.Get("page"))
	assert.Equal(t, "10", got.Get("size"))
	assert.Equal(t, "price", got.Get("sortBy"))
	assert.Equal(t, "desc", got.Get("sortDirection"))
	assert.Equal(t, "3", got.Get("categoryId"))
	assert.Equal(t, "5", got.Get("minPrice"))
	assert.Equal(t, "99.99", got.Get("maxPrice"))

	assert.Equal(t, domain.PageInfo{Page: 2, Size: 10, TotalPages: 4, TotalElements: 38}, page.PageInfo)
	require.Len(t, page.Items, 2)

	lamp := page.Items[0]
	assert.Equal(t, "7", lamp.ID)
	assert.Equal(t, domain.Price("19.5"), lamp.Price)
	assert.Equal(t, "3", lamp.CategoryID)
	assert.Equal(t, "Home", lamp.CategoryName)
	assert.Equal(t, "L-7", lamp.SKU)
	assert.Equal(t, 4, lamp.Stock)

	rug := page.Items[1]
	assert.Equal(t, "8", rug.ID)
	assert.Equal(t, domain.Price("call us"), rug.Price)
	_, ok := rug.Price.Float()
	assert.False(t, ok)
	assert.Equal(t, "3", rug.CategoryID)
	assert.Equal(t, "Home", rug.CategoryName)
	assert.Equal(t, 1, rug.Stock)
}

func TestFetchCatalogPage_OmitsUnsetHints(t *testing.T) {
	var got url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		_, _ = w.Write([]byte(`{"content": [], "totalPages": 0, "totalElements": 0, "number": 0}`))
	}, 0)

	page, err := client.FetchCatalogPage(context.Background(), domain.CatalogQuery{Page: 1})
	require.NoError(t, err)

	assert.Equal(t, "0", got.Get("page"))
	assert.Equal(t, "12", got.Get("size"))
	for _, key := range []string{"sortBy", "sortDirection", "categoryId", "minPrice", "maxPrice"} {
		assert.False(t, got.Has(key), key)
	}
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.PageInfo.Page)
}

func TestFetchCatalogPage_BareArray(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"1","name":"A","price":1},{"id":"2","name":"B","price":null}]`))
	}, 0)

	page, err := client.FetchCatalogPage(context.Background(), domain.CatalogQuery{Page: 1, Size: 5})
	require.NoError(t, err)
	assert.Equal(t, domain.PageInfo{Page: 1, Size: 5, TotalPages: 1, TotalElements: 2}, page.PageInfo)
	assert.Equal(t, domain.Price(""), page.Items[1].Price)
}

func TestFetchCatalogPage_DerivesMissingTotals(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"items":[{"id":"1"},{"id":"2"},{"id":"3"}],"size":2}`))
	}, 0)

	page, err := client.FetchCatalogPage(context.Background(), domain.CatalogQuery{Page: 1, Size: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.PageInfo.TotalElements)
	assert.Equal(t, 2, page.PageInfo.TotalPages)
}

func TestFetchCatalogPage_RejectsInvalidPage(t *testing.T) {
	client := newTestClient(t, func(_ http.ResponseWriter, _ *http.Request) {
		t.Error("no request expected")
	}, 0)

	_, err := client.FetchCatalogPage(context.Background(), domain.CatalogQuery{Page: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFetchCatalogPage_UnexpectedShape(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`"maintenance"`))
	}, 0)

	_, err := client.FetchCatalogPage(context.Background(), domain.CatalogQuery{Page: 1})
	assert.ErrorIs(t, err, ErrDecode)
}

func TestSearchProducts(t *testing.T) {
	var got url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/productssearch/item", r.URL.Path)
		got = r.URL.Query()
		_, _ = w.Write([]byte(`[{"productId":"5","name":"Red Mug","price":"7.25"}]`))
	}, 0)

	results, err := client.SearchProducts(context.Background(), "  red mug ", domain.FilterCriteria{MaxPrice: ptr(10)})
	require.NoError(t, err)

	assert.Equal(t, "red mug", got.Get("q"))
	assert.False(t, got.Has("minPrice"))
	assert.Equal(t, "10", got.Get("maxPrice"))
	require.Len(t, results, 1)
	assert.Equal(t, domain.Price("7.25"), results[0].Price)
}

func TestSearchProducts_ResponseShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"null", `null`, 0},
		{"empty array", `[]`, 0},
		{"single object", `{"id":"1","name":"Solo"}`, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}, 0)

			results, err := client.SearchProducts(context.Background(), "x", domain.FilterCriteria{})
			require.NoError(t, err)
			assert.NotNil(t, results)
			assert.Len(t, results, tt.want)
		})
	}
}

func TestSearchProducts_BlankQuerySkipsRequest(t *testing.T) {
	client := newTestClient(t, func(_ http.ResponseWriter, _ *http.Request) {
		t.Error("no request expected")
	}, 0)

	results, err := client.SearchProducts(context.Background(), "   ", domain.FilterCriteria{})
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestSearchProducts_RejectsNonObjectItems(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"1"}, 42]`))
	}, 0)

	_, err := client.SearchProducts(context.Background(), "x", domain.FilterCriteria{})
	assert.ErrorIs(t, err, ErrDecode)
}

func TestGetProduct(t *testing.T) {
	var path string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.EscapedPath()
		_, _ = w.Write([]byte(`{"productId":"a/b","name":"Slash","price":3}`))
	}, 0)

	p, err := client.GetProduct(context.Background(), "a/b")
	require.NoError(t, err)
	assert.Equal(t, "/api/products/a%2Fb", path)
	assert.Equal(t, "Slash", p.Name)
}

func TestGetProductBySKU(t *testing.T) {
	var path string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_, _ = w.Write([]byte(`{"id":"9","sku":"MUG-1"}`))
	}, 0)

	p, err := client.GetProductBySKU(context.Background(), "MUG-1")
	require.NoError(t, err)
	assert.Equal(t, "/api/products/sku/MUG-1", path)
	assert.Equal(t, "9", p.ID)
}

func TestGetProduct_NonObject(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}, 0)

	_, err := client.GetProduct(context.Background(), "1")
	assert.ErrorIs(t, err, ErrDecode)
}

func TestListCategories_PageShape(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"content":[{"id":2,"name":"Garden","description":"Outdoor"}]}`))
	}, 0)

	cats, err := client.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Category{{ID: "2", Name: "Garden", Description: "Outdoor"}}, cats)
}

func TestListCategories_UnexpectedShape(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"error":"none"}`))
	}, 0)

	_, err := client.ListCategories(context.Background())
	assert.ErrorIs(t, err, ErrDecode)
}
