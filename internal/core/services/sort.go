package services

import (
	"cmp"
	"slices"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
	"github.com/custodia-labs/storefront-cli/internal/logger"
)

// SortStage orders products by name or price.
// Name comparison is case-insensitive and follows the collation rules of
// the configured locale.
type SortStage struct {
	// collate.Collator is not safe for concurrent use.
	mu       sync.Mutex
	collator *collate.Collator
}

// NewSortStage creates a sort stage for a BCP 47 locale tag.
// An unknown tag falls back to English collation.
func NewSortStage(locale string) *SortStage {
	tag, err := language.Parse(locale)
	if err != nil {
		logger.Warn("sort: unknown locale %q, using en: %v", locale, err)
		tag = language.English
	}
	return &SortStage{collator: collate.New(tag, collate.IgnoreCase)}
}

// sortKey pairs a product with its coerced price so each price is parsed once.
type sortKey struct {
	product domain.Product
	price   float64
	valid   bool
}

// Apply returns a new slice ordered by criteria. The sort is stable:
// products that compare equal keep their input order in both directions.
// Products with an unparseable price sort last when ordering by price,
// whatever the direction.
func (s *SortStage) Apply(products []domain.Product, criteria domain.SortCriteria) []domain.Product {
	keys := make([]sortKey, len(products))
	for i, p := range products {
		price, ok := p.Price.Float()
		keys[i] = sortKey{product: p, price: price, valid: ok}
	}

	desc := criteria.Order == domain.SortDesc
	switch criteria.Field {
	case domain.SortByPrice:
		slices.SortStableFunc(keys, func(a, b sortKey) int {
			return comparePrice(a, b, desc)
		})
	default:
		s.mu.Lock()
		slices.SortStableFunc(keys, func(a, b sortKey) int {
			c := s.collator.CompareString(a.product.Name, b.product.Name)
			if desc {
				return -c
			}
			return c
		})
		s.mu.Unlock()
	}

	out := make([]domain.Product, len(keys))
	for i, k := range keys {
		out[i] = k.product
	}
	return out
}

func comparePrice(a, b sortKey, desc bool) int {
	switch {
	case !a.valid && !b.valid:
		return 0
	case !a.valid:
		return 1
	case !b.valid:
		return -1
	}
	c := cmp.Compare(a.price, b.price)
	if desc {
		return -c
	}
	return c
}
