package domain

import (
	"fmt"
	"math"
	"strings"
)

// FilterCriteria is the client-side price range.
// A nil bound is absent. Both absent means no filtering.
type FilterCriteria struct {
	MinPrice *float64
	MaxPrice *float64
}

// PriceRange builds criteria with both bounds set.
func PriceRange(minPrice, maxPrice float64) FilterCriteria {
	return FilterCriteria{MinPrice: &minPrice, MaxPrice: &maxPrice}
}

// IsZero reports whether no bound is set.
func (f FilterCriteria) IsZero() bool {
	return f.MinPrice == nil && f.MaxPrice == nil
}

// Bounds returns the effective bounds, substituting 0 for a missing
// minimum and +Inf for a missing maximum.
func (f FilterCriteria) Bounds() (lo, hi float64) {
	lo, hi = 0, math.Inf(1)
	if f.MinPrice != nil {
		lo = *f.MinPrice
	}
	if f.MaxPrice != nil {
		hi = *f.MaxPrice
	}
	return lo, hi
}

// Contains reports whether v lies within the effective bounds.
func (f FilterCriteria) Contains(v float64) bool {
	lo, hi := f.Bounds()
	return v >= lo && v <= hi
}

// Equal compares two criteria by bound values.
func (f FilterCriteria) Equal(other FilterCriteria) bool {
	return equalBound(f.MinPrice, other.MinPrice) && equalBound(f.MaxPrice, other.MaxPrice)
}

func equalBound(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// Validate applies the input-boundary rules: both bounds or neither,
// no negative bounds, and min not above max.
// The pipeline itself tolerates criteria that fail validation.
func (f FilterCriteria) Validate() error {
	if f.IsZero() {
		return nil
	}
	if f.MinPrice == nil || f.MaxPrice == nil {
		return fmt.Errorf("%w: both minimum and maximum price are required", ErrInvalidPriceRange)
	}
	if *f.MinPrice < 0 || *f.MaxPrice < 0 {
		return fmt.Errorf("%w: prices cannot be negative", ErrInvalidPriceRange)
	}
	if *f.MinPrice > *f.MaxPrice {
		return fmt.Errorf("%w: minimum %.2f exceeds maximum %.2f", ErrInvalidPriceRange, *f.MinPrice, *f.MaxPrice)
	}
	return nil
}

// String renders the range for status lines.
func (f FilterCriteria) String() string {
	if f.IsZero() {
		return "any price"
	}
	lo, hi := f.Bounds()
	if math.IsInf(hi, 1) {
		return fmt.Sprintf("%.2f+", lo)
	}
	return fmt.Sprintf("%.2f-%.2f", lo, hi)
}

// SortField names the attribute products are ordered by.
type SortField string

// Available sort fields.
const (
	SortByName  SortField = "name"
	SortByPrice SortField = "price"
)

// IsValid returns true if the field is recognised.
func (f SortField) IsValid() bool {
	return f == SortByName || f == SortByPrice
}

// String returns the string representation.
func (f SortField) String() string {
	return string(f)
}

// SortOrder is the ordering direction.
type SortOrder string

// Available sort orders.
const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// IsValid returns true if the order is recognised.
func (o SortOrder) IsValid() bool {
	return o == SortAsc || o == SortDesc
}

// String returns the string representation.
func (o SortOrder) String() string {
	return string(o)
}

// Reverse returns the opposite direction.
func (o SortOrder) Reverse() SortOrder {
	if o == SortDesc {
		return SortAsc
	}
	return SortDesc
}

// SortCriteria is the active comparator.
type SortCriteria struct {
	Field SortField
	Order SortOrder
}

// DefaultSortCriteria orders by name ascending.
func DefaultSortCriteria() SortCriteria {
	return SortCriteria{Field: SortByName, Order: SortAsc}
}

// ParseSortCriteria parses a field and order, case-insensitively.
// Empty values fall back to the defaults.
func ParseSortCriteria(field, order string) (SortCriteria, error) {
	c := DefaultSortCriteria()
	if field = strings.ToLower(strings.TrimSpace(field)); field != "" {
		c.Field = SortField(field)
	}
	if order = strings.ToLower(strings.TrimSpace(order)); order != "" {
		c.Order = SortOrder(order)
	}
	if !c.Field.IsValid() {
		return SortCriteria{}, fmt.Errorf("%w: unknown sort field %q", ErrInvalidInput, field)
	}
	if !c.Order.IsValid() {
		return SortCriteria{}, fmt.Errorf("%w: unknown sort order %q", ErrInvalidInput, order)
	}
	return c, nil
}

// String renders the criteria as "field:order".
func (c SortCriteria) String() string {
	return c.Field.String() + ":" + c.Order.String()
}
