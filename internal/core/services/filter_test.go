package services

import (
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

func prod(id, name, price string) domain.Product {
	return domain.Product{ID: id, Name: name, Price: domain.Price(price)}
}

func ids(products []domain.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func ptr(v float64) *float64 { return &v }

func TestFilterStage_Apply(t *testing.T) {
	input := []domain.Product{
		prod("b", "B", "20"),
		prod("a", "A", "10"),
		prod("c", "C", "bad"),
		prod("d", "D", ""),
		prod("e", "E", " 100 "),
		prod("f", "F", "0"),
	}

	tests := []struct {
		name     string
		criteria domain.FilterCriteria
		want     []string
	}{
		{"no bounds is identity", domain.FilterCriteria{}, []string{"b", "a", "c", "d", "e", "f"}},
		{"both bounds", domain.PriceRange(5, 100), []string{"b", "a", "e"}},
		{"min equals max", domain.PriceRange(10, 10), []string{"a"}},
		{"min only", domain.FilterCriteria{MinPrice: ptr(15)}, []string{"b", "e"}},
		{"max only", domain.FilterCriteria{MaxPrice: ptr(10)}, []string{"a", "f"}},
		{"negative max", domain.PriceRange(-10, -1), []string{}},
		{"min above max", domain.PriceRange(50, 5), []string{}},
	}

	var stage FilterStage
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stage.Apply(input, tt.criteria)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterStage_DoesNotMutateInput(t *testing.T) {
	input := []domain.Product{prod("a", "A", "10"), prod("b", "B", "x")}
	before := append([]domain.Product(nil), input...)

	out := FilterStage{}.Apply(input, domain.FilterCriteria{})
	out[0].Name = "changed"
	_ = FilterStage{}.Apply(input, domain.PriceRange(0, 5))

	assert.Equal(t, before, input)
}

func TestFilterStage_EveryRecordRespectsBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	prices := []string{"", "n/a", "NaN", "Inf"}

	for round := range 200 {
		var input []domain.Product
		for i := range 30 {
			price := strconv.FormatFloat(rng.Float64()*200-20, 'f', 2, 64)
			if rng.IntN(5) == 0 {
				price = prices[rng.IntN(len(prices))]
			}
			input = append(input, prod(strconv.Itoa(i), "p", price))
		}
		lo := rng.Float64() * 100
		hi := lo + rng.Float64()*100
		criteria := domain.PriceRange(lo, hi)

		out := FilterStage{}.Apply(input, criteria)

		kept := make(map[string]bool, len(out))
		for _, p := range out {
			v, ok := p.Price.Float()
			assert.True(t, ok, "round %d: kept unparseable price %q", round, p.Price)
			assert.True(t, v >= lo && v <= hi, "round %d: %v outside [%v, %v]", round, v, lo, hi)
			kept[p.ID] = true
		}
		for _, p := range input {
			if kept[p.ID] {
				continue
			}
			v, ok := p.Price.Float()
			assert.False(t, ok && v >= lo && v <= hi, "round %d: dropped %q inside range", round, p.Price)
		}
	}
}
