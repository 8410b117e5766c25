package services

import "github.com/custodia-labs/storefront-cli/internal/core/domain"

// ModeSelector decides which raw list is authoritative.
// It mutates the PipelineState it was created over; callers serialise access.
type ModeSelector struct {
	state *domain.PipelineState
}

// NewModeSelector creates a selector over state.
func NewModeSelector(state *domain.PipelineState) *ModeSelector {
	return &ModeSelector{state: state}
}

// SetCatalogPage replaces the raw list with a catalog page and enters
// Catalog mode. Any held search results are discarded.
func (m *ModeSelector) SetCatalogPage(products []domain.Product, info domain.PageInfo) {
	m.state.Mode = domain.ModeCatalog
	m.state.RawList = append([]domain.Product(nil), products...)
	m.state.PageInfo = &info
	m.state.Query = ""
	m.state.Generation++
}

// SetSearchResults replaces the raw list with search results and enters
// Search mode. Any held catalog page and its page info are discarded.
func (m *ModeSelector) SetSearchResults(query string, products []domain.Product) {
	m.state.Mode = domain.ModeSearch
	m.state.RawList = append([]domain.Product(nil), products...)
	m.state.PageInfo = nil
	m.state.Query = query
	m.state.Generation++
}

// Mode returns the active mode.
func (m *ModeSelector) Mode() domain.Mode {
	return m.state.Mode
}

// RawList returns the raw list for the active mode.
func (m *ModeSelector) RawList() []domain.Product {
	return m.state.RawList
}
