package domain

import (
	"math"
	"strconv"
	"strings"
)

// Price is a product price as delivered by the transport layer.
// The catalog API sends prices as JSON numbers or strings, so the raw
// text is kept and coerced on demand.
type Price string

// NewPrice creates a Price from a float.
func NewPrice(v float64) Price {
	return Price(strconv.FormatFloat(v, 'f', -1, 64))
}

// Float coerces the price to a float64.
// ok is false for blank, non-numeric, hexadecimal, NaN or infinite values.
func (p Price) Float() (value float64, ok bool) {
	s := strings.TrimSpace(string(p))
	if s == "" {
		return 0, false
	}
	digits := strings.TrimLeft(s, "+-")
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// String returns the raw price text.
func (p Price) String() string {
	return string(p)
}

// Product is a catalog entry flowing through the reconciliation pipeline.
// Products are value objects: filtered and sorted views are new slices
// that copy the same records, never in-place mutations.
type Product struct {
	// ID is the stable unique identifier.
	ID string

	// Name is the display name, used for name ordering.
	Name string

	// Description is free text shown in detail views.
	Description string

	// Price is the raw price; see Price.Float.
	Price Price

	// CategoryID, CategoryName, SKU, Brand and Stock are passed through untouched.
	CategoryID   string
	CategoryName string
	SKU          string
	Brand        string
	Stock        int
}

// DisplayName returns the name, falling back to the SKU and then the ID.
func (p *Product) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	if p.SKU != "" {
		return p.SKU
	}
	return p.ID
}

// Category is a product category as listed by the catalog API.
type Category struct {
	ID          string
	Name        string
	Description string
}
