package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/views/catalog"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/views/product"
	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	keymap *keymap.KeyMap

	// catalogView renders the pipeline's published list.
	catalogView *catalog.View

	// productView shows a single product.
	productView *product.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// previousView is restored when leaving help.
	previousView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if ports == nil {
		return nil, ErrInvalidPorts
	}
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		catalogView: catalog.NewView(s, km, ports.Browser, ports.Products),
		productView: product.NewView(s),
		currentView: messages.ViewCatalog,
	}, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.catalogView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It sets up the screen and loads the first catalog page.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("storefront"),
		a.catalogView.Init(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case messages.FetchCompleted, messages.StateChanged, messages.CategoriesLoaded:
		// Pipeline completions land in the catalog view whichever view is active.
		a.catalogView, cmd = a.catalogView.Update(msg)
		a.err = a.catalogView.Err()
		return a, cmd

	case messages.ProductSelected:
		a.productView.SetLoading(msg.Product)
		a.currentView = messages.ViewProduct
		return a, a.loadProduct(msg.Product.ID)

	case messages.ProductLoaded:
		a.productView, cmd = a.productView.Update(msg)
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		switch a.currentView {
		case messages.ViewCatalog:
			a.catalogView, cmd = a.catalogView.Update(msg)
		case messages.ViewProduct:
			a.productView, cmd = a.productView.Update(msg)
		case messages.ViewHelp:
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	return a, nil
}

// handleKeyMsg applies global keys, then forwards to the active view.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Global quit with ctrl+c
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	// Typed characters belong to the focused input.
	if a.currentView == messages.ViewCatalog && a.catalogView.InputFocused() {
		a.catalogView, cmd = a.catalogView.Update(msg)
		return a, cmd
	}

	switch {
	case keymap.Matches(msg.String(), a.keymap.Quit):
		return a, tea.Quit
	case keymap.Matches(msg.String(), a.keymap.Help):
		if a.currentView == messages.ViewHelp {
			a.currentView = a.previousView
		} else {
			a.previousView = a.currentView
			a.currentView = messages.ViewHelp
		}
		return a, nil
	}

	switch a.currentView {
	case messages.ViewCatalog:
		a.catalogView, cmd = a.catalogView.Update(msg)
		a.err = a.catalogView.Err()
	case messages.ViewProduct:
		a.productView, cmd = a.productView.Update(msg)
	case messages.ViewHelp:
		if msg.Type == tea.KeyEsc {
			a.currentView = a.previousView
		}
	}
	return a, cmd
}

// loadProduct fetches full details for the product view.
func (a *App) loadProduct(id string) tea.Cmd {
	if a.ports.Products == nil {
		return nil
	}
	ctx, products := a.ctx, a.ports.Products
	return func() tea.Msg {
		p, err := products.Get(ctx, id)
		return messages.ProductLoaded{Product: p, Err: err}
	}
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewProduct:
		return a.productView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	case messages.ViewCatalog:
		return a.catalogView.View()
	default:
		return a.catalogView.View()
	}
}

// viewHelp renders the help view from the key map.
func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")
	for _, group := range a.keymap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			fmt.Fprintf(&b, "  %-10s %s\n", h.Key, h.Desc)
		}
		b.WriteString("\n")
	}
	b.WriteString(a.styles.Muted.Render("Paging keys apply to catalog pages only; search shows every match."))
	b.WriteString("\n\n")
	b.WriteString(a.styles.Help.Render("[esc] back"))
	return b.String()
}

// Run starts the TUI application. Pipeline republishes are forwarded to
// the program so listeners outside the TUI's own fetches are reflected.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	a.ports.Browser.OnStateChange(func(published []domain.Product, mode domain.Mode, _ *domain.PageInfo) {
		go p.Send(messages.StateChanged{Mode: mode, Count: len(published)})
	})
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// CatalogView returns the catalog view.
func (a *App) CatalogView() *catalog.View {
	return a.catalogView
}

// ProductView returns the product view.
func (a *App) ProductView() *product.View {
	return a.productView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.catalogView.SetDimensions(width, height)
	a.productView.SetDimensions(width, height)
}
