package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/storefront-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings(), *settings)
	assert.Equal(t, domain.DefaultAppSettings(), service.GetDefaults())
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore(map[string]any{
		"api.base_url":            "https://shop.example.com/api",
		"api.timeout_seconds":     int64(30),
		"api.requests_per_second": 0.5,
		"api.max_retries":         int64(0),
		"catalog.page_size":       int64(24),
		"catalog.sort_field":      "price",
		"catalog.sort_order":      "DESC",
		"catalog.locale":          "de",
		"history.enabled":         false,
		"history.limit":           int64(5),
	})
	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, "https://shop.example.com/api", settings.API.BaseURL)
	assert.Equal(t, 30*time.Second, settings.API.Timeout)
	assert.InDelta(t, 0.5, settings.API.RequestsPerSecond, 0)
	assert.Equal(t, 0, settings.API.MaxRetries)
	assert.Equal(t, 24, settings.Catalog.PageSize)
	assert.Equal(t, domain.SortCriteria{Field: domain.SortByPrice, Order: domain.SortDesc}, settings.Catalog.DefaultSort)
	assert.Equal(t, "de", settings.Catalog.Locale)
	assert.False(t, settings.History.Enabled)
	assert.Equal(t, 5, settings.History.Limit)
}

func TestSettingsService_Get_InvalidValuesReturnDefaults(t *testing.T) {
	store := memory.NewConfigStore(map[string]any{
		"catalog.sort_field":      "rating",
		"catalog.page_size":       int64(-3),
		"api.requests_per_second": -1.0,
	})
	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	defaults := domain.DefaultAppSettings()
	assert.Equal(t, defaults.Catalog.DefaultSort, settings.Catalog.DefaultSort)
	assert.Equal(t, defaults.Catalog.PageSize, settings.Catalog.PageSize)
	assert.InDelta(t, defaults.API.RequestsPerSecond, settings.API.RequestsPerSecond, 0)
}

func TestSettingsService_SaveRoundTrip(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	want := domain.DefaultAppSettings()
	want.API.BaseURL = "http://10.0.0.2:8080/api"
	want.API.Timeout = 3 * time.Second
	want.Catalog.PageSize = 48
	want.Catalog.DefaultSort = domain.SortCriteria{Field: domain.SortByPrice, Order: domain.SortAsc}
	want.History.Enabled = false

	require.NoError(t, service.Save(&want))
	got, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, want, *got)
}

func TestSettingsService_Set(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		wantErr bool
		check   func(t *testing.T, s *domain.AppSettings)
	}{
		{key: "api.base_url", value: "https://shop.test/api/", check: func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, "https://shop.test/api", s.API.BaseURL)
		}},
		{key: "api.base_url", value: "not a url", wantErr: true},
		{key: "api.timeout_seconds", value: "15", check: func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, 15*time.Second, s.API.Timeout)
		}},
		{key: "api.timeout_seconds", value: "0", wantErr: true},
		{key: "api.max_retries", value: "0", check: func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, 0, s.API.MaxRetries)
		}},
		{key: "api.requests_per_second", value: "2.5", check: func(t *testing.T, s *domain.AppSettings) {
			assert.InDelta(t, 2.5, s.API.RequestsPerSecond, 0)
		}},
		{key: "api.requests_per_second", value: "-1", wantErr: true},
		{key: "catalog.page_size", value: "abc", wantErr: true},
		{key: "catalog.sort_field", value: "Price", check: func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, domain.SortByPrice, s.Catalog.DefaultSort.Field)
		}},
		{key: "catalog.sort_field", value: "rating", wantErr: true},
		{key: "catalog.sort_order", value: "desc", check: func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, domain.SortDesc, s.Catalog.DefaultSort.Order)
		}},
		{key: "catalog.sort_order", value: "sideways", wantErr: true},
		{key: "catalog.locale", value: "fr-CA", check: func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, "fr-CA", s.Catalog.Locale)
		}},
		{key: "catalog.locale", value: "!!", wantErr: true},
		{key: "history.enabled", value: "false", check: func(t *testing.T, s *domain.AppSettings) {
			assert.False(t, s.History.Enabled)
		}},
		{key: "history.enabled", value: "maybe", wantErr: true},
		{key: "no.such.key", value: "1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			service := NewSettingsService(memory.NewConfigStore())

			err := service.Set(tt.key, tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			settings, err := service.Get()
			require.NoError(t, err)
			tt.check(t, settings)
		})
	}
}

func TestSettingsService_Keys(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	keys := service.Keys()
	assert.Contains(t, keys, "catalog.page_size")
	assert.Len(t, keys, 10)

	keys[0] = "mutated"
	assert.NotContains(t, service.Keys(), "mutated")
}
