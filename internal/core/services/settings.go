package services

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driven"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyAPIBaseURL     = "api.base_url"
	keyAPITimeout     = "api.timeout_seconds"
	keyAPIRate        = "api.requests_per_second"
	keyAPIMaxRetries  = "api.max_retries"
	keyPageSize       = "catalog.page_size"
	keySortField      = "catalog.sort_field"
	keySortOrder      = "catalog.sort_order"
	keyLocale         = "catalog.locale"
	keyHistoryEnabled = "history.enabled"
	keyHistoryLimit   = "history.limit"
)

var settingKeys = []string{
	keyAPIBaseURL,
	keyAPITimeout,
	keyAPIRate,
	keyAPIMaxRetries,
	keyPageSize,
	keySortField,
	keySortOrder,
	keyLocale,
	keyHistoryEnabled,
	keyHistoryLimit,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings. Missing or invalid values
// fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	sortCriteria, err := domain.ParseSortCriteria(
		s.configStore.GetString(keySortField),
		s.configStore.GetString(keySortOrder),
	)
	if err != nil {
		sortCriteria = defaults.Catalog.DefaultSort
	}

	settings := &domain.AppSettings{
		API: domain.APISettings{
			BaseURL:           s.getString(keyAPIBaseURL, defaults.API.BaseURL),
			Timeout:           time.Duration(s.getInt(keyAPITimeout, int(defaults.API.Timeout/time.Second))) * time.Second,
			RequestsPerSecond: s.getFloat(keyAPIRate, defaults.API.RequestsPerSecond),
			MaxRetries:        s.getInt(keyAPIMaxRetries, defaults.API.MaxRetries),
		},
		Catalog: domain.CatalogSettings{
			PageSize:    s.getInt(keyPageSize, defaults.Catalog.PageSize),
			DefaultSort: sortCriteria,
			Locale:      s.getString(keyLocale, defaults.Catalog.Locale),
		},
		History: domain.HistorySettings{
			Enabled: s.getBool(keyHistoryEnabled, defaults.History.Enabled),
			Limit:   s.getInt(keyHistoryLimit, defaults.History.Limit),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	values := []struct {
		key   string
		value any
	}{
		{keyAPIBaseURL, settings.API.BaseURL},
		{keyAPITimeout, int64(settings.API.Timeout / time.Second)},
		{keyAPIRate, settings.API.RequestsPerSecond},
		{keyAPIMaxRetries, int64(settings.API.MaxRetries)},
		{keyPageSize, int64(settings.Catalog.PageSize)},
		{keySortField, settings.Catalog.DefaultSort.Field.String()},
		{keySortOrder, settings.Catalog.DefaultSort.Order.String()},
		{keyLocale, settings.Catalog.Locale},
		{keyHistoryEnabled, settings.History.Enabled},
		{keyHistoryLimit, int64(settings.History.Limit)},
	}

	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// Set parses value according to key and stores it.
func (s *SettingsService) Set(key, value string) error {
	value = strings.TrimSpace(value)

	var parsed any
	switch key {
	case keyAPIBaseURL:
		u, err := url.Parse(value)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: %s must be an absolute URL", domain.ErrInvalidInput, key)
		}
		parsed = strings.TrimRight(value, "/")
	case keyAPITimeout, keyAPIMaxRetries, keyPageSize, keyHistoryLimit:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidInput, key)
		}
		if n < 0 || (n == 0 && key != keyAPIMaxRetries) {
			return fmt.Errorf("%w: %s must be positive", domain.ErrInvalidInput, key)
		}
		parsed = int64(n)
	case keyAPIRate:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f < 0 {
			return fmt.Errorf("%w: %s must be a non-negative number", domain.ErrInvalidInput, key)
		}
		parsed = f
	case keySortField:
		field := domain.SortField(strings.ToLower(value))
		if !field.IsValid() {
			return fmt.Errorf("%w: %s must be name or price", domain.ErrInvalidInput, key)
		}
		parsed = field.String()
	case keySortOrder:
		order := domain.SortOrder(strings.ToLower(value))
		if !order.IsValid() {
			return fmt.Errorf("%w: %s must be asc or desc", domain.ErrInvalidInput, key)
		}
		parsed = order.String()
	case keyLocale:
		if _, err := language.Parse(value); err != nil {
			return fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, key, err)
		}
		parsed = value
	case keyHistoryEnabled:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidInput, key)
		}
		parsed = b
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	return s.configStore.Set(key, parsed)
}

// Keys lists the settable keys.
func (s *SettingsService) Keys() []string {
	return slices.Clone(settingKeys)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	val := s.configStore.GetInt(key)
	if val < 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	val := s.configStore.GetFloat(key)
	if val < 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}
