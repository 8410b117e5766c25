package catalog

import "errors"

// Error definitions for the catalog view.
var (
	// ErrNoCatalogBrowser indicates that no catalog browser was provided.
	ErrNoCatalogBrowser = errors.New("catalog browser is required")

	// ErrInvalidPrice indicates a price bound that is not a number.
	ErrInvalidPrice = errors.New("price must be a number")
)
