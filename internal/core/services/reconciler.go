package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driven"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driving"
	"github.com/custodia-labs/storefront-cli/internal/logger"
)

// Ensure Reconciler implements the interface.
var _ driving.CatalogBrowser = (*Reconciler)(nil)

// Event is an input to the reconciliation pipeline.
type Event interface {
	event()
}

// PageLoaded carries a catalog page fetched under Generation for the
// category it was requested with.
type PageLoaded struct {
	Generation uint64
	CategoryID string
	Page       *domain.CatalogPage
}

// SearchLoaded carries search results fetched under Generation.
type SearchLoaded struct {
	Generation uint64
	Query      string
	Results    []domain.Product
}

// FilterChanged replaces the price range.
type FilterChanged struct {
	Criteria domain.FilterCriteria
}

// SortChanged replaces the ordering.
type SortChanged struct {
	Criteria domain.SortCriteria
}

func (PageLoaded) event()    {}
func (SearchLoaded) event()  {}
func (FilterChanged) event() {}
func (SortChanged) event()   {}

// ticket stamps an in-flight request with the generation it was issued under.
type ticket struct {
	generation uint64
	query      domain.CatalogQuery
	search     string
	filter     domain.FilterCriteria
}

// Reconciler owns one PipelineState and is the only writer of its
// published list. Fetches run without holding the lock; each completion is
// compared against the generation captured when it was issued and dropped
// if anything newer has been issued or applied since.
type Reconciler struct {
	mu    sync.Mutex
	state domain.PipelineState
	modes *ModeSelector
	pager *PaginationCoordinator

	filter FilterStage
	sorter *SortStage

	searcher driven.ProductSearcher
	history  driven.SearchHistoryStore

	// published numbers derivations under mu. Listener delivery takes
	// turns in that order under notifyMu; mu is never held while waiting
	// for notifyMu.
	published  uint64
	delivered  uint64
	notifyMu   sync.Mutex
	notifyTurn *sync.Cond
	listeners  []driving.StateListener
}

// NewReconciler creates a reconciler in Catalog mode with an empty list.
// fetcher and searcher may be nil; the corresponding operations then fail
// with ErrCatalogUnavailable or ErrSearchUnavailable.
func NewReconciler(
	fetcher driven.CatalogFetcher,
	searcher driven.ProductSearcher,
	settings domain.CatalogSettings,
) *Reconciler {
	sortCriteria := settings.DefaultSort
	if !sortCriteria.Field.IsValid() || !sortCriteria.Order.IsValid() {
		sortCriteria = domain.DefaultSortCriteria()
	}
	r := &Reconciler{
		state: domain.PipelineState{
			Mode: domain.ModeCatalog,
			Sort: sortCriteria,
		},
		pager:    NewPaginationCoordinator(fetcher, settings.PageSize),
		sorter:   NewSortStage(settings.Locale),
		searcher: searcher,
	}
	r.modes = NewModeSelector(&r.state)
	r.notifyTurn = sync.NewCond(&r.notifyMu)
	return r
}

// SetHistoryStore enables recording of applied searches.
func (r *Reconciler) SetHistoryStore(store driven.SearchHistoryStore) {
	r.history = store
}

// OnStateChange registers a listener. Listeners run after the state lock
// is released, one derivation at a time and in derivation order. They may
// call Snapshot but must not call mutating methods synchronously.
func (r *Reconciler) OnStateChange(listener driving.StateListener) {
	r.notifyMu.Lock()
	defer r.notifyMu.Unlock()
	r.listeners = append(r.listeners, listener)
}

// Snapshot returns a copy of the current state.
func (r *Reconciler) Snapshot() domain.PipelineState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.Clone()
}

// Dispatch feeds one event through the pipeline and reports whether it was
// applied. Loaded events carrying an outdated generation are dropped
// without touching any state.
func (r *Reconciler) Dispatch(ev Event) driving.Outcome {
	r.mu.Lock()

	switch e := ev.(type) {
	case PageLoaded:
		if e.Generation != r.state.Generation {
			logger.Debug("catalog: dropping stale page (issued at generation %d, now %d)",
				e.Generation, r.state.Generation)
			r.mu.Unlock()
			return driving.OutcomeStale
		}
		var items []domain.Product
		var info domain.PageInfo
		if e.Page != nil {
			items, info = e.Page.Items, e.Page.PageInfo
		}
		r.modes.SetCatalogPage(items, info)
		r.state.CategoryID = e.CategoryID
		logger.Debug("catalog: applied page %d/%d (%d items, generation %d)",
			info.Page, info.TotalPages, len(items), r.state.Generation)
	case SearchLoaded:
		if e.Generation != r.state.Generation {
			logger.Debug("search: dropping stale results for %q (issued at generation %d, now %d)",
				e.Query, e.Generation, r.state.Generation)
			r.mu.Unlock()
			return driving.OutcomeStale
		}
		r.modes.SetSearchResults(e.Query, e.Results)
		logger.Debug("search: applied %d results for %q (generation %d)",
			len(e.Results), e.Query, r.state.Generation)
	case FilterChanged:
		r.state.Filter = e.Criteria
	case SortChanged:
		r.state.Sort = e.Criteria
	default:
		r.mu.Unlock()
		panic(fmt.Sprintf("services: unknown pipeline event %T", ev))
	}

	r.derive()
	r.publish()
	return driving.OutcomeApplied
}

// derive recomputes the published list. Caller must hold mu.
func (r *Reconciler) derive() {
	filtered := r.filter.Apply(r.modes.RawList(), r.state.Filter)
	r.state.PublishedList = r.sorter.Apply(filtered, r.state.Sort)
}

// publish hands the freshly derived state to listeners. Caller must hold
// mu; publish releases it before waiting for its delivery turn.
func (r *Reconciler) publish() {
	r.published++
	seq := r.published
	snap := r.state.Clone()
	r.mu.Unlock()

	r.notifyMu.Lock()
	for r.delivered+1 != seq {
		r.notifyTurn.Wait()
	}
	listeners := slices.Clone(r.listeners)
	r.notifyMu.Unlock()

	defer func() {
		r.notifyMu.Lock()
		r.delivered = seq
		r.notifyTurn.Broadcast()
		r.notifyMu.Unlock()
	}()
	for _, l := range listeners {
		l(snap.PublishedList, snap.Mode, snap.PageInfo)
	}
}

// beginPage stamps a catalog request for page. Unless force is set, it is
// refused in Search mode and for pages outside the known range.
func (r *Reconciler) beginPage(page int, force bool) (ticket, driving.Outcome, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !force {
		if !r.pager.Active(&r.state) {
			logger.Debug("catalog: page %d ignored in search mode", page)
			return ticket{}, driving.OutcomeSkipped, nil
		}
		if err := r.pager.CheckPage(&r.state, page); err != nil {
			return ticket{}, driving.OutcomeSkipped, err
		}
	}

	r.state.Generation++
	return ticket{
		generation: r.state.Generation,
		query:      r.pager.Query(&r.state, page),
	}, driving.OutcomeApplied, nil
}

// completePage fetches a stamped page and dispatches the result.
func (r *Reconciler) completePage(ctx context.Context, t ticket) (driving.Outcome, error) {
	defer logger.Timed(fmt.Sprintf("catalog: page %d", t.query.Page))()

	page, err := r.pager.Fetch(ctx, t.query)
	if err != nil {
		logger.Warn("catalog: %v", err)
		return driving.OutcomeFailed, err
	}
	if page.PageInfo.Page == 0 {
		page.PageInfo.Page = t.query.Page
	}
	if page.PageInfo.Size == 0 {
		page.PageInfo.Size = t.query.Size
	}
	return r.Dispatch(PageLoaded{Generation: t.generation, CategoryID: t.query.CategoryID, Page: page}), nil
}

func (r *Reconciler) requestPage(ctx context.Context, page int, force bool) (driving.Outcome, error) {
	t, outcome, err := r.beginPage(page, force)
	if err != nil || outcome != driving.OutcomeApplied {
		return outcome, err
	}
	return r.completePage(ctx, t)
}

// RequestPage fetches catalog page n. It does nothing in Search mode.
func (r *Reconciler) RequestPage(ctx context.Context, page int) (driving.Outcome, error) {
	return r.requestPage(ctx, page, false)
}

// NextPage requests the page after the current one.
func (r *Reconciler) NextPage(ctx context.Context) (driving.Outcome, error) {
	return r.step(ctx, 1)
}

// PrevPage requests the page before the current one.
func (r *Reconciler) PrevPage(ctx context.Context) (driving.Outcome, error) {
	return r.step(ctx, -1)
}

func (r *Reconciler) step(ctx context.Context, delta int) (driving.Outcome, error) {
	r.mu.Lock()
	current := 0
	if r.state.PageInfo != nil {
		current = r.state.PageInfo.Page
	}
	r.mu.Unlock()

	if current == 0 {
		return r.RequestPage(ctx, 1)
	}
	return r.RequestPage(ctx, current+delta)
}

// Refresh re-fetches the current page or re-runs the current search.
func (r *Reconciler) Refresh(ctx context.Context) (driving.Outcome, error) {
	r.mu.Lock()
	mode, query := r.modes.Mode(), r.state.Query
	page := 1
	if r.state.PageInfo != nil && r.state.PageInfo.Page > 0 {
		page = r.state.PageInfo.Page
	}
	r.mu.Unlock()

	if mode == domain.ModeSearch {
		return r.RunSearch(ctx, query)
	}
	return r.requestPage(ctx, page, true)
}

// SetCategory scopes catalog fetches to categoryID ("" for all categories).
// In Catalog mode the category takes effect only once its first page is
// applied; a failed or superseded fetch leaves the current category. In
// Search mode it is stored for the next catalog fetch.
func (r *Reconciler) SetCategory(ctx context.Context, categoryID string) (driving.Outcome, error) {
	r.mu.Lock()
	searching := r.modes.Mode() == domain.ModeSearch
	if searching {
		r.state.CategoryID = categoryID
	}
	r.mu.Unlock()

	if searching {
		logger.Debug("catalog: category %q stored for next catalog fetch", categoryID)
		return driving.OutcomeSkipped, nil
	}

	t, outcome, err := r.beginPage(1, true)
	if err != nil || outcome != driving.OutcomeApplied {
		return outcome, err
	}
	t.query.CategoryID = categoryID
	return r.completePage(ctx, t)
}

// ClearSearch returns to Catalog mode with a freshly fetched first page.
// Mode only flips once that page arrives.
func (r *Reconciler) ClearSearch(ctx context.Context) (driving.Outcome, error) {
	return r.requestPage(ctx, 1, true)
}

// ClearFilters drops the price range and returns to a freshly fetched
// first catalog page.
func (r *Reconciler) ClearFilters(ctx context.Context) (driving.Outcome, error) {
	r.Dispatch(FilterChanged{})
	return r.ClearSearch(ctx)
}

// SetFilter replaces the price range and re-derives the published list.
func (r *Reconciler) SetFilter(criteria domain.FilterCriteria) {
	r.Dispatch(FilterChanged{Criteria: criteria})
}

// SetSort replaces the ordering and re-derives the published list.
func (r *Reconciler) SetSort(criteria domain.SortCriteria) {
	r.Dispatch(SortChanged{Criteria: criteria})
}

// beginSearch stamps a search request.
func (r *Reconciler) beginSearch(query string) ticket {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.state.Generation++
	return ticket{
		generation: r.state.Generation,
		search:     query,
		filter:     r.state.Filter,
	}
}

// completeSearch runs a stamped search and dispatches the result.
func (r *Reconciler) completeSearch(ctx context.Context, t ticket) (driving.Outcome, error) {
	defer logger.Timed(fmt.Sprintf("search: %q", t.search))()

	results, err := r.searcher.SearchProducts(ctx, t.search, t.filter)
	if err != nil {
		err = fmt.Errorf("search %q: %w", t.search, err)
		logger.Warn("search: %v", err)
		return driving.OutcomeFailed, err
	}
	if results == nil {
		results = []domain.Product{}
	}

	outcome := r.Dispatch(SearchLoaded{Generation: t.generation, Query: t.search, Results: results})
	if outcome == driving.OutcomeApplied {
		r.record(ctx, t, len(results))
	}
	return outcome, nil
}

// RunSearch replaces the raw list with the results for query.
// A blank query clears the search instead.
func (r *Reconciler) RunSearch(ctx context.Context, query string) (driving.Outcome, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return r.ClearSearch(ctx)
	}
	if r.searcher == nil {
		return driving.OutcomeFailed, domain.ErrSearchUnavailable
	}
	return r.completeSearch(ctx, r.beginSearch(query))
}

// record saves an applied search. Failures are logged and otherwise ignored.
func (r *Reconciler) record(ctx context.Context, t ticket, count int) {
	if r.history == nil {
		return
	}
	entry := domain.SearchHistoryEntry{
		ID:          uuid.NewString(),
		Query:       t.search,
		Filter:      t.filter,
		ResultCount: count,
		CreatedAt:   time.Now().UTC(),
	}
	if err := r.history.Save(ctx, entry); err != nil {
		logger.Warn("search: failed to record history: %v", err)
	}
}
