package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driven"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService reads and clears recorded searches.
type HistoryService struct {
	store        driven.SearchHistoryStore
	defaultLimit int
}

// NewHistoryService creates a new history service.
func NewHistoryService(store driven.SearchHistoryStore, defaultLimit int) *HistoryService {
	if defaultLimit <= 0 {
		defaultLimit = domain.DefaultHistoryLimit
	}
	return &HistoryService{store: store, defaultLimit: defaultLimit}
}

// Recent returns the newest entries first.
func (s *HistoryService) Recent(ctx context.Context, limit int) ([]domain.SearchHistoryEntry, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	entries, err := s.store.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list search history: %w", err)
	}
	return entries, nil
}

// Clear removes all entries.
func (s *HistoryService) Clear(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear search history: %w", err)
	}
	return nil
}
