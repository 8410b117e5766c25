package domain

// DefaultPageSize is the catalog page size used when none is configured.
const DefaultPageSize = 12

// PageInfo describes the catalog page currently held. Page is 1-based.
type PageInfo struct {
	Page          int
	Size          int
	TotalPages    int
	TotalElements int64
}

// HasNext reports whether a page follows this one.
func (p PageInfo) HasNext() bool {
	return p.Page < p.TotalPages
}

// HasPrev reports whether a page precedes this one.
func (p PageInfo) HasPrev() bool {
	return p.Page > 1
}

// Contains reports whether page lies within [1, TotalPages].
// An empty catalog still has a first page.
func (p PageInfo) Contains(page int) bool {
	if page < 1 {
		return false
	}
	if p.TotalPages <= 0 {
		return page == 1
	}
	return page <= p.TotalPages
}

// TotalPagesFor computes the page count for total elements at size per page.
func TotalPagesFor(total int64, size int) int {
	if size <= 0 {
		return 1
	}
	pages := total / int64(size)
	if total%int64(size) != 0 {
		pages++
	}
	return int(pages)
}

// CatalogQuery is a request for one catalog page.
// Sort and price fields are pass-through hints for the server; the
// pipeline re-filters and re-sorts client-side regardless.
type CatalogQuery struct {
	Page          int
	Size          int
	SortBy        SortField
	SortDirection SortOrder
	CategoryID    string
	MinPrice      *float64
	MaxPrice      *float64
}

// CatalogPage is one page returned by the catalog API.
type CatalogPage struct {
	Items    []Product
	PageInfo PageInfo
}
