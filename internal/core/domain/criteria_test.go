package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestFilterCriteria_Bounds(t *testing.T) {
	t.Run("no bounds", func(t *testing.T) {
		lo, hi := FilterCriteria{}.Bounds()
		assert.Equal(t, 0.0, lo)
		assert.True(t, math.IsInf(hi, 1))
	})

	t.Run("only min substitutes infinity", func(t *testing.T) {
		lo, hi := FilterCriteria{MinPrice: ptr(5)}.Bounds()
		assert.Equal(t, 5.0, lo)
		assert.True(t, math.IsInf(hi, 1))
	})

	t.Run("only max substitutes zero", func(t *testing.T) {
		lo, hi := FilterCriteria{MaxPrice: ptr(50)}.Bounds()
		assert.Equal(t, 0.0, lo)
		assert.Equal(t, 50.0, hi)
	})
}

func TestFilterCriteria_Contains(t *testing.T) {
	f := PriceRange(10, 20)
	assert.True(t, f.Contains(10))
	assert.True(t, f.Contains(20))
	assert.True(t, f.Contains(15))
	assert.False(t, f.Contains(9.99))
	assert.False(t, f.Contains(20.01))

	exact := PriceRange(7, 7)
	assert.True(t, exact.Contains(7))
	assert.False(t, exact.Contains(7.01))
}

func TestFilterCriteria_Validate(t *testing.T) {
	tests := []struct {
		name    string
		filter  FilterCriteria
		wantErr bool
	}{
		{name: "empty is valid", filter: FilterCriteria{}},
		{name: "both bounds", filter: PriceRange(1, 2)},
		{name: "equal bounds", filter: PriceRange(3, 3)},
		{name: "only min", filter: FilterCriteria{MinPrice: ptr(1)}, wantErr: true},
		{name: "only max", filter: FilterCriteria{MaxPrice: ptr(1)}, wantErr: true},
		{name: "negative min", filter: PriceRange(-1, 5), wantErr: true},
		{name: "min above max", filter: PriceRange(9, 5), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.filter.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPriceRange)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFilterCriteria_Equal(t *testing.T) {
	assert.True(t, FilterCriteria{}.Equal(FilterCriteria{}))
	assert.True(t, PriceRange(1, 2).Equal(PriceRange(1, 2)))
	assert.False(t, PriceRange(1, 2).Equal(PriceRange(1, 3)))
	assert.False(t, PriceRange(1, 2).Equal(FilterCriteria{MinPrice: ptr(1)}))
}

func TestFilterCriteria_String(t *testing.T) {
	assert.Equal(t, "any price", FilterCriteria{}.String())
	assert.Equal(t, "5.00-100.00", PriceRange(5, 100).String())
	assert.Equal(t, "5.00+", FilterCriteria{MinPrice: ptr(5)}.String())
}

func TestParseSortCriteria(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c, err := ParseSortCriteria("", "")
		require.NoError(t, err)
		assert.Equal(t, DefaultSortCriteria(), c)
	})

	t.Run("case insensitive", func(t *testing.T) {
		c, err := ParseSortCriteria("PRICE", "Desc")
		require.NoError(t, err)
		assert.Equal(t, SortCriteria{Field: SortByPrice, Order: SortDesc}, c)
		assert.Equal(t, "price:desc", c.String())
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := ParseSortCriteria("rating", "asc")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown order", func(t *testing.T) {
		_, err := ParseSortCriteria("name", "up")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestSortOrder_Reverse(t *testing.T) {
	assert.Equal(t, SortDesc, SortAsc.Reverse())
	assert.Equal(t, SortAsc, SortDesc.Reverse())
}
