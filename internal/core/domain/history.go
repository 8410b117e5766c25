package domain

import "time"

// SearchHistoryEntry records one applied search.
type SearchHistoryEntry struct {
	ID          string
	Query       string
	Filter      FilterCriteria
	ResultCount int
	CreatedAt   time.Time
}
