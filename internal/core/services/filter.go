package services

import "github.com/custodia-labs/storefront-cli/internal/core/domain"

// FilterStage applies a price range to a list of products.
type FilterStage struct{}

// Apply returns the products whose price lies within the effective bounds
// of criteria. Products with an unparseable price are dropped whenever a
// bound is set. Zero criteria is the identity transform.
// The input slice is never modified.
func (FilterStage) Apply(products []domain.Product, criteria domain.FilterCriteria) []domain.Product {
	if criteria.IsZero() {
		return append([]domain.Product(nil), products...)
	}

	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		price, ok := p.Price.Float()
		if !ok || !criteria.Contains(price) {
			continue
		}
		out = append(out, p)
	}
	return out
}
