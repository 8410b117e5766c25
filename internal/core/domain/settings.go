package domain

import "time"

// Default settings values.
const (
	DefaultAPIBaseURL        = "http://localhost:8080/api"
	DefaultAPITimeout        = 10 * time.Second
	DefaultRequestsPerSecond = 5.0
	DefaultMaxRetries        = 3
	DefaultLocale            = "en"
	DefaultHistoryLimit      = 20
)

// APISettings configures the catalog REST collaborator.
type APISettings struct {
	// BaseURL is the API root, e.g. http://localhost:8080/api.
	BaseURL string

	// Timeout bounds each HTTP request.
	Timeout time.Duration

	// RequestsPerSecond throttles outgoing calls. Zero disables throttling.
	RequestsPerSecond float64

	// MaxRetries is the number of retries for transient failures.
	MaxRetries int
}

// CatalogSettings configures catalog browsing.
type CatalogSettings struct {
	// PageSize is the number of products per catalog page.
	PageSize int

	// DefaultSort is the ordering applied when a view starts.
	DefaultSort SortCriteria

	// Locale drives name collation (BCP 47 tag).
	Locale string
}

// HistorySettings configures search history recording.
type HistorySettings struct {
	// Enabled turns recording on.
	Enabled bool

	// Limit is the number of entries shown by default.
	Limit int
}

// AppSettings holds all application settings.
type AppSettings struct {
	// API holds REST client settings.
	API APISettings

	// Catalog holds browsing settings.
	Catalog CatalogSettings

	// History holds search history settings.
	History HistorySettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		API: APISettings{
			BaseURL:           DefaultAPIBaseURL,
			Timeout:           DefaultAPITimeout,
			RequestsPerSecond: DefaultRequestsPerSecond,
			MaxRetries:        DefaultMaxRetries,
		},
		Catalog: CatalogSettings{
			PageSize:    DefaultPageSize,
			DefaultSort: DefaultSortCriteria(),
			Locale:      DefaultLocale,
		},
		History: HistorySettings{
			Enabled: true,
			Limit:   DefaultHistoryLimit,
		},
	}
}
