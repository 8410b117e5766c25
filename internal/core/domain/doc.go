// Package domain defines the core business entities for the storefront client.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Product: A catalog record with a lazily coerced Price
//   - FilterCriteria / SortCriteria: Client-side price range and ordering
//   - CatalogQuery / CatalogPage / PageInfo: Server pagination
//   - PipelineState: The reconciliation state (mode, generation, lists)
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
