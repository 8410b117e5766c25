// Package mcp provides an MCP (Model Context Protocol) server adapter for the
// storefront catalog. It lets AI assistants browse and search products.
package mcp

import "errors"

// ErrMissingCatalog is returned when no catalog browser factory is provided.
var ErrMissingCatalog = errors.New("mcp: catalog browser is required")
