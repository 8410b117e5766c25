package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrInvalidPriceRange", ErrInvalidPriceRange},
		{"ErrNoSuchPage", ErrNoSuchPage},
		{"ErrSearchModeActive", ErrSearchModeActive},
		{"ErrCatalogUnavailable", ErrCatalogUnavailable},
		{"ErrSearchUnavailable", ErrSearchUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrNotFound(t *testing.T) {
	assert.Equal(t, "not found", ErrNotFound.Error())
	assert.True(t, errors.Is(ErrNotFound, ErrNotFound))
	assert.False(t, errors.Is(ErrNotFound, ErrInvalidInput))
}

func TestErrors_Wrapped(t *testing.T) {
	err := fmt.Errorf("page 9: %w", ErrNoSuchPage)
	assert.ErrorIs(t, err, ErrNoSuchPage)
	assert.NotErrorIs(t, err, ErrNotFound)
}
