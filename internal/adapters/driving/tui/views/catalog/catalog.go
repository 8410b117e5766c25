// Package catalog provides the catalog and search results view for the TUI.
package catalog

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/storefront-cli/internal/core/domain"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driving"
)

// focus identifies which input, if any, receives keystrokes.
type focus int

const (
	focusList focus = iota
	focusSearch
	focusMin
	focusMax
)

// View renders the published product list of a CatalogBrowser.
// It never keeps its own copy of pipeline state: every completion, stale
// or not, is followed by a re-read of the browser snapshot.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	list      *list.ProductList
	statusbar *status.Bar
	search    *input.Field
	minPrice  *input.Field
	maxPrice  *input.Field

	browser  driving.CatalogBrowser
	products driving.ProductService
	ctx      context.Context

	snapshot   domain.PipelineState
	categories []domain.Category
	pending    int

	focus  focus
	width  int
	height int
	ready  bool
	err    error
}

// NewView creates a new catalog view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	browser driving.CatalogBrowser,
	products driving.ProductService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:    s,
		keymap:    km,
		list:      list.NewProductList(s),
		statusbar: status.NewBar(s, km),
		search:    input.NewSearchField(s),
		minPrice:  input.NewPriceField(s, "Min"),
		maxPrice:  input.NewPriceField(s, "Max"),
		browser:   browser,
		products:  products,
		ctx:       context.Background(),
		width:     80,
		height:    24,
	}
	v.sync()
	return v
}

// WithContext sets the context used for fetches.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the first catalog page and the category list.
func (v *View) Init() tea.Cmd {
	return tea.Batch(
		v.fetch(messages.OpPage, func(ctx context.Context, b driving.CatalogBrowser) (driving.Outcome, error) {
			return b.RequestPage(ctx, 1)
		}),
		v.loadCategories(),
	)
}

// Update handles messages for the catalog view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		if v.focus != focusList {
			return v.handleInputKey(msg)
		}
		return v.handleKeyMsg(msg)

	case messages.FetchCompleted:
		v.handleFetchCompleted(msg)
		return v, nil

	case messages.StateChanged:
		v.sync()
		return v, nil

	case messages.CategoriesLoaded:
		if msg.Err == nil {
			v.categories = msg.Categories
		}
		return v, nil

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	return v, nil
}

// handleKeyMsg processes keys while the list has focus.
//
//nolint:gocyclo // key dispatch table
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.Up), keymap.Matches(key, v.keymap.Down):
		v.list, _ = v.list.Update(msg)
		return v, nil

	case keymap.Matches(key, v.keymap.Select):
		p := v.list.SelectedProduct()
		if p == nil {
			return v, nil
		}
		selected := *p
		return v, func() tea.Msg {
			return messages.ProductSelected{Product: selected}
		}

	case keymap.Matches(key, v.keymap.Search):
		v.focus = focusSearch
		v.search.SetValue(v.snapshot.Query)
		return v, v.search.Focus()

	case keymap.Matches(key, v.keymap.Filter):
		v.focus = focusMin
		return v, v.minPrice.Focus()

	case keymap.Matches(key, v.keymap.SortField):
		next := v.snapshot.Sort
		if next.Field == domain.SortByName {
			next.Field = domain.SortByPrice
		} else {
			next.Field = domain.SortByName
		}
		v.browser.SetSort(next)
		v.sync()
		return v, nil

	case keymap.Matches(key, v.keymap.SortOrder):
		next := v.snapshot.Sort
		next.Order = next.Order.Reverse()
		v.browser.SetSort(next)
		v.sync()
		return v, nil

	case keymap.Matches(key, v.keymap.PrevPage):
		if v.snapshot.Mode != domain.ModeCatalog {
			return v, nil
		}
		return v, v.fetch(messages.OpPage, func(ctx context.Context, b driving.CatalogBrowser) (driving.Outcome, error) {
			return b.PrevPage(ctx)
		})

	case keymap.Matches(key, v.keymap.NextPage):
		if v.snapshot.Mode != domain.ModeCatalog {
			return v, nil
		}
		return v, v.fetch(messages.OpPage, func(ctx context.Context, b driving.CatalogBrowser) (driving.Outcome, error) {
			return b.NextPage(ctx)
		})

	case keymap.Matches(key, v.keymap.Category):
		return v, v.cycleCategory()

	case keymap.Matches(key, v.keymap.ClearFilters):
		v.minPrice.Reset()
		v.maxPrice.Reset()
		v.list.ResetCursor()
		return v, v.fetch(messages.OpClearFilters, func(ctx context.Context, b driving.CatalogBrowser) (driving.Outcome, error) {
			return b.ClearFilters(ctx)
		})

	case keymap.Matches(key, v.keymap.ClearSearch), keymap.Matches(key, v.keymap.Back):
		if v.snapshot.Mode != domain.ModeSearch {
			return v, nil
		}
		return v, v.clearSearch()

	case keymap.Matches(key, v.keymap.Refresh):
		return v, v.fetch(messages.OpRefresh, func(ctx context.Context, b driving.CatalogBrowser) (driving.Outcome, error) {
			return b.Refresh(ctx)
		})
	}

	return v, nil
}

// handleInputKey processes keys while an input has focus.
func (v *View) handleInputKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyEsc:
		v.blurInputs()
		return v, nil

	case tea.KeyTab:
		switch v.focus {
		case focusMin:
			v.minPrice.Blur()
			v.focus = focusMax
			return v, v.maxPrice.Focus()
		case focusMax:
			v.maxPrice.Blur()
			v.focus = focusMin
			return v, v.minPrice.Focus()
		}
		return v, nil

	case tea.KeyEnter:
		if v.focus == focusSearch {
			return v, v.submitSearch()
		}
		v.submitFilter()
		return v, nil
	}

	var cmd tea.Cmd
	switch v.focus {
	case focusSearch:
		v.search, cmd = v.search.Update(msg)
	case focusMin:
		v.minPrice, cmd = v.minPrice.Update(msg)
	case focusMax:
		v.maxPrice, cmd = v.maxPrice.Update(msg)
	case focusList:
	}
	return v, cmd
}

// submitSearch runs the typed query. A blank query returns to the catalog.
func (v *View) submitSearch() tea.Cmd {
	query := strings.TrimSpace(v.search.Value())
	v.blurInputs()
	v.list.ResetCursor()
	if query == "" {
		return v.clearSearch()
	}
	return v.fetch(messages.OpSearch, func(ctx context.Context, b driving.CatalogBrowser) (driving.Outcome, error) {
		return b.RunSearch(ctx, query)
	})
}

// submitFilter applies the typed price range without fetching.
func (v *View) submitFilter() {
	criteria, err := parseRange(v.minPrice.Value(), v.maxPrice.Value())
	if err == nil {
		err = criteria.Validate()
	}
	if err != nil {
		v.setError(err)
		return
	}

	v.blurInputs()
	v.err = nil
	if criteria.Equal(v.snapshot.Filter) {
		return
	}
	v.browser.SetFilter(criteria)
	v.list.ResetCursor()
	v.sync()
}

// parseRange builds filter criteria from two optional bounds.
// Validation of the pair is left to FilterCriteria.Validate.
func parseRange(minText, maxText string) (domain.FilterCriteria, error) {
	var c domain.FilterCriteria
	minText, maxText = strings.TrimSpace(minText), strings.TrimSpace(maxText)
	if minText != "" {
		lo, err := strconv.ParseFloat(minText, 64)
		if err != nil {
			return c, fmt.Errorf("min: %w", ErrInvalidPrice)
		}
		c.MinPrice = &lo
	}
	if maxText != "" {
		hi, err := strconv.ParseFloat(maxText, 64)
		if err != nil {
			return c, fmt.Errorf("max: %w", ErrInvalidPrice)
		}
		c.MaxPrice = &hi
	}
	return c, nil
}

func (v *View) clearSearch() tea.Cmd {
	v.search.Reset()
	v.list.ResetCursor()
	return v.fetch(messages.OpClearSearch, func(ctx context.Context, b driving.CatalogBrowser) (driving.Outcome, error) {
		return b.ClearSearch(ctx)
	})
}

// cycleCategory requests the category after the applied one, wrapping
// through "all". A failed fetch leaves the applied category in place.
func (v *View) cycleCategory() tea.Cmd {
	if len(v.categories) == 0 {
		return nil
	}
	next := slices.IndexFunc(v.categories, func(c domain.Category) bool {
		return c.ID == v.snapshot.CategoryID
	}) + 1
	id := ""
	if next < len(v.categories) {
		id = v.categories[next].ID
	}
	v.list.ResetCursor()
	return v.fetch(messages.OpCategory, func(ctx context.Context, b driving.CatalogBrowser) (driving.Outcome, error) {
		return b.SetCategory(ctx, id)
	})
}

func (v *View) blurInputs() {
	v.search.Blur()
	v.minPrice.Blur()
	v.maxPrice.Blur()
	v.focus = focusList
}

// fetch wraps a browser call as a command reporting FetchCompleted.
func (v *View) fetch(
	op messages.Operation,
	call func(context.Context, driving.CatalogBrowser) (driving.Outcome, error),
) tea.Cmd {
	if v.browser == nil {
		return func() tea.Msg {
			return messages.ErrorOccurred{Err: ErrNoCatalogBrowser}
		}
	}
	v.pending++
	v.statusbar.SetState(status.StateLoading)
	ctx, browser := v.ctx, v.browser
	return func() tea.Msg {
		outcome, err := call(ctx, browser)
		return messages.FetchCompleted{Op: op, Outcome: outcome, Err: err}
	}
}

func (v *View) loadCategories() tea.Cmd {
	if v.products == nil {
		return nil
	}
	ctx, products := v.ctx, v.products
	return func() tea.Msg {
		categories, err := products.Categories(ctx)
		return messages.CategoriesLoaded{Categories: categories, Err: err}
	}
}

// handleFetchCompleted re-reads the snapshot. Stale completions leave the
// list as the newer request published it.
func (v *View) handleFetchCompleted(msg messages.FetchCompleted) {
	if v.pending > 0 {
		v.pending--
	}

	//nolint:exhaustive // applied, stale and skipped all just resync
	switch msg.Outcome {
	case driving.OutcomeFailed:
		v.sync()
		v.setError(msg.Err)
		return
	case driving.OutcomeStale:
		v.sync()
		return
	}

	v.err = nil
	v.sync()
}

// sync copies the browser snapshot into the list and status bar.
func (v *View) sync() {
	if v.browser == nil {
		return
	}
	v.snapshot = v.browser.Snapshot()
	v.list.SetProducts(v.snapshot.PublishedList)
	v.statusbar.SetMode(v.snapshot.Mode)
	v.statusbar.SetResultCount(len(v.snapshot.PublishedList))

	switch {
	case v.err != nil:
		v.statusbar.SetState(status.StateError)
	case v.pending > 0:
		v.statusbar.SetState(status.StateLoading)
	default:
		v.statusbar.SetState(status.StateResults)
		v.statusbar.SetMessage("")
	}
}

func (v *View) setError(err error) {
	if err == nil {
		return
	}
	v.err = err
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(err.Error())
}

// View renders the catalog view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 12)
	sections = append(sections, v.renderHeader(), "")

	switch v.focus {
	case focusSearch:
		sections = append(sections, v.search.View(), "")
	case focusMin, focusMax:
		//nolint:misspell // lipgloss.Center is the correct constant from the library
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Center,
			v.minPrice.View(), "  ", v.maxPrice.View()), "")
	case focusList:
	}

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	if v.snapshot.Mode == domain.ModeSearch && v.list.IsEmpty() {
		sections = append(sections, v.styles.Muted.Render("No results found."))
	} else {
		sections = append(sections, v.list.View())
	}

	if footer := v.renderPageInfo(); footer != "" {
		sections = append(sections, "", footer)
	}

	sections = append(sections, "", v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader shows the mode badge and the active criteria.
func (v *View) renderHeader() string {
	parts := []string{v.styles.Title.Render("Storefront")}

	if v.snapshot.Mode == domain.ModeSearch {
		parts = append(parts, v.styles.Badge.Render(fmt.Sprintf("SEARCH %q", v.snapshot.Query)))
	} else {
		parts = append(parts, v.styles.Badge.Render("CATALOG"))
		if name := v.categoryName(); name != "" {
			parts = append(parts, v.styles.Subtitle.Render(name))
		}
	}

	parts = append(parts, v.styles.Muted.Render("sort "+v.snapshot.Sort.String()))
	if !v.snapshot.Filter.IsZero() {
		parts = append(parts, v.styles.Price.Render("price "+v.snapshot.Filter.String()))
	}
	return strings.Join(parts, "  ")
}

// renderPageInfo is empty outside Catalog mode.
func (v *View) renderPageInfo() string {
	info := v.snapshot.PageInfo
	if v.snapshot.Mode != domain.ModeCatalog || info == nil {
		return ""
	}
	return v.styles.Muted.Render(fmt.Sprintf("Page %d of %d (%d products)",
		info.Page, max(info.TotalPages, 1), info.TotalElements))
}

func (v *View) categoryName() string {
	id := v.snapshot.CategoryID
	if id == "" {
		return ""
	}
	for _, c := range v.categories {
		if c.ID == id {
			return c.Name
		}
	}
	return id
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.search.SetWidth(width)
	v.minPrice.SetWidth(width / 2)
	v.maxPrice.SetWidth(width / 2)
	// Reserve space for header, inputs, page info and status
	v.list.SetDimensions(width, height-10)
	v.statusbar.SetWidth(width)
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Snapshot returns the last pipeline state the view rendered.
func (v *View) Snapshot() domain.PipelineState {
	return v.snapshot
}

// SelectedProduct returns the product under the cursor.
func (v *View) SelectedProduct() *domain.Product {
	return v.list.SelectedProduct()
}

// Categories returns the loaded categories.
func (v *View) Categories() []domain.Category {
	return v.categories
}

// Pending returns the number of fetches still in flight.
func (v *View) Pending() int {
	return v.pending
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// InputFocused returns whether an input has focus.
func (v *View) InputFocused() bool {
	return v.focus != focusList
}
