package rest

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

// ErrDecode indicates a response body that could not be interpreted.
var ErrDecode = errors.New("catalog api: malformed response")

// APIError represents a non-2xx response from the catalog API.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
	RequestID  string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("catalog api: status %d (URL: %s)", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("catalog api: status %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

// Unwrap maps 404 to domain.ErrNotFound.
func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusNotFound {
		return domain.ErrNotFound
	}
	return nil
}

// Retryable reports whether the request may succeed if repeated.
func (e *APIError) Retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

// IsNotFound checks if the error indicates a resource was not found.
func IsNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}

// IsRateLimited checks if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests
	}
	return false
}
