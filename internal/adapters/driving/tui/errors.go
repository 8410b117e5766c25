package tui

import "errors"

// ErrMissingCatalogBrowser is returned when the catalog browser is not provided.
var ErrMissingCatalogBrowser = errors.New("tui: catalog browser is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
