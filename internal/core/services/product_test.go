package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

func newTestDirectory() *fakeDirectory {
	return &fakeDirectory{
		products: map[string]domain.Product{
			"1": {ID: "1", Name: "MX Master 3S", SKU: "PER-MXM3S", Price: "99.99"},
		},
		categories: []domain.Category{{ID: "3", Name: "Peripherals"}},
	}
}

func TestProductService_Get(t *testing.T) {
	s := NewProductService(newTestDirectory())
	ctx := context.Background()

	p, err := s.Get(ctx, " 1 ")
	require.NoError(t, err)
	assert.Equal(t, "MX Master 3S", p.Name)

	_, err = s.Get(ctx, "2")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = s.Get(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductService_GetBySKU(t *testing.T) {
	s := NewProductService(newTestDirectory())
	ctx := context.Background()

	p, err := s.GetBySKU(ctx, "PER-MXM3S")
	require.NoError(t, err)
	assert.Equal(t, "1", p.ID)

	_, err = s.GetBySKU(ctx, "NOPE")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = s.GetBySKU(ctx, " ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductService_Categories(t *testing.T) {
	dir := newTestDirectory()
	s := NewProductService(dir)

	cats, err := s.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Category{{ID: "3", Name: "Peripherals"}}, cats)

	dir.err = errTransport
	_, err = s.Categories(context.Background())
	assert.ErrorIs(t, err, errTransport)
}
