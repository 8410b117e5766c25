// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help shows the help view.
	Help key.Binding

	// Back returns to the previous view.
	Back key.Binding

	// Search focuses the query input.
	Search key.Binding

	// Filter focuses the price inputs.
	Filter key.Binding

	// Up navigates up in a list.
	Up key.Binding

	// Down navigates down in a list.
	Down key.Binding

	// Select confirms a selection or submits an input.
	Select key.Binding

	// NextField moves between inputs.
	NextField key.Binding

	// SortField cycles the sort attribute.
	SortField key.Binding

	// SortOrder toggles ascending and descending.
	SortOrder key.Binding

	// PrevPage and NextPage move between catalog pages.
	PrevPage key.Binding
	NextPage key.Binding

	// Category cycles the category scope.
	Category key.Binding

	// ClearFilters drops the price range and returns to the first catalog page.
	ClearFilters key.Binding

	// ClearSearch leaves search results.
	ClearSearch key.Binding

	// Refresh re-fetches the current page or search.
	Refresh key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Filter: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "price"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		SortField: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort by"),
		),
		SortOrder: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "order"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next page"),
		),
		Category: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "category"),
		),
		ClearFilters: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear filters"),
		),
		ClearSearch: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear search"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Filter, k.Help, k.Quit}
}

// CatalogHelp returns keybindings for browsing catalog pages.
func (k *KeyMap) CatalogHelp() []key.Binding {
	return []key.Binding{k.PrevPage, k.NextPage, k.SortField, k.SortOrder, k.Help}
}

// SearchHelp returns keybindings while search results are shown.
func (k *KeyMap) SearchHelp() []key.Binding {
	return []key.Binding{k.ClearSearch, k.SortField, k.SortOrder, k.Help}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Back},
		{k.Search, k.Filter, k.NextField, k.Category},
		{k.SortField, k.SortOrder, k.PrevPage, k.NextPage},
		{k.ClearFilters, k.ClearSearch, k.Refresh},
		{k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
