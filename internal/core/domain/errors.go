package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidPriceRange indicates inconsistent price bounds at the input boundary.
	ErrInvalidPriceRange = errors.New("invalid price range")

	// ErrNoSuchPage indicates a page outside the known catalog range.
	ErrNoSuchPage = errors.New("no such page")

	// ErrSearchModeActive indicates a catalog-only operation was attempted
	// while search results are held.
	ErrSearchModeActive = errors.New("search results are active")

	// ErrCatalogUnavailable indicates no catalog collaborator is configured.
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	// ErrSearchUnavailable indicates no search collaborator is configured.
	ErrSearchUnavailable = errors.New("product search unavailable")
)
