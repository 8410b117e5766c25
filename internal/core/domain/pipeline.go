package domain

// Mode selects which raw list is authoritative.
type Mode int

const (
	// ModeCatalog holds a server-paginated catalog page.
	ModeCatalog Mode = iota

	// ModeSearch holds an unpaginated search result set.
	ModeSearch
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeCatalog:
		return "catalog"
	case ModeSearch:
		return "search"
	default:
		return "unknown"
	}
}

// PipelineState is the reconciliation state owned by one controller.
type PipelineState struct {
	// Mode is Catalog or Search.
	Mode Mode

	// RawList is the most recently accepted raw list for Mode.
	RawList []Product

	// Generation increases on every raw-list-replacing event.
	Generation uint64

	// PublishedList is RawList after filtering then sorting.
	PublishedList []Product

	// PageInfo is set only in Catalog mode once a page has been accepted.
	PageInfo *PageInfo

	// Query is the search text that produced RawList in Search mode.
	Query string

	// Filter and Sort are the criteria PublishedList was derived with.
	Filter FilterCriteria
	Sort   SortCriteria

	// CategoryID scopes catalog fetches.
	CategoryID string
}

// Clone returns a deep copy safe to hand to another goroutine.
func (s PipelineState) Clone() PipelineState {
	c := s
	c.RawList = append([]Product(nil), s.RawList...)
	c.PublishedList = append([]Product(nil), s.PublishedList...)
	if s.PageInfo != nil {
		info := *s.PageInfo
		c.PageInfo = &info
	}
	c.Filter = FilterCriteria{MinPrice: copyBound(s.Filter.MinPrice), MaxPrice: copyBound(s.Filter.MaxPrice)}
	return c
}

func copyBound(b *float64) *float64 {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}
