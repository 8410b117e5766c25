// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

// ProductList displays the published product list with a cursor.
type ProductList struct {
	products []domain.Product
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewProductList creates a new product list component.
func NewProductList(s *styles.Styles) *ProductList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ProductList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the product list.
func (l *ProductList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *ProductList) Update(msg tea.Msg) (*ProductList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		}
	}
	return l, nil
}

// View renders the visible window of products.
func (l *ProductList) View() string {
	if len(l.products) == 0 {
		return l.styles.Muted.Render("No products")
	}

	// Each product takes two lines.
	visibleCount := (l.height - 2) / 2
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if l.selected >= visibleCount {
		start = l.selected - visibleCount + 1
	}
	end := min(start+visibleCount, len(l.products))

	lines := make([]string, 0, (end-start)*2)
	for i := start; i < end; i++ {
		lines = append(lines, l.renderProduct(i, &l.products[i]))
	}
	return strings.Join(lines, "\n")
}

// renderProduct formats a name/price line and a category line.
func (l *ProductList) renderProduct(index int, p *domain.Product) string {
	indicator := "  "
	if index == l.selected {
		indicator = "> "
	}

	price := "-"
	if v, ok := p.Price.Float(); ok {
		price = fmt.Sprintf("%.2f", v)
	}

	nameWidth := l.width - 16
	if nameWidth < 10 {
		nameWidth = 10
	}
	name := truncate(p.DisplayName(), nameWidth)

	var nameLine string
	if index == l.selected {
		nameLine = l.styles.Selected.Render(fmt.Sprintf("%s%-*s  %10s", indicator, nameWidth, name, price))
	} else {
		nameLine = l.styles.Normal.Render(fmt.Sprintf("%s%-*s  ", indicator, nameWidth, name)) +
			l.styles.Price.Render(fmt.Sprintf("%10s", price))
	}

	detail := p.CategoryName
	if detail == "" {
		detail = p.CategoryID
	}
	if p.Brand != "" {
		if detail != "" {
			detail += " · "
		}
		detail += p.Brand
	}
	return nameLine + "\n" + l.styles.Muted.Render("    "+truncate(detail, l.width-6))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n < 4 || len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// SetProducts replaces the list, keeping the cursor in range.
func (l *ProductList) SetProducts(products []domain.Product) {
	l.products = products
	if l.selected >= len(products) {
		l.selected = max(len(products)-1, 0)
	}
}

// Products returns the current products.
func (l *ProductList) Products() []domain.Product {
	return l.products
}

// Selected returns the cursor index.
func (l *ProductList) Selected() int {
	return l.selected
}

// SetSelected sets the cursor index.
func (l *ProductList) SetSelected(index int) {
	if index >= 0 && index < len(l.products) {
		l.selected = index
	}
}

// SelectedProduct returns the product under the cursor, or nil if none.
func (l *ProductList) SelectedProduct() *domain.Product {
	if l.selected < 0 || l.selected >= len(l.products) {
		return nil
	}
	return &l.products[l.selected]
}

// MoveUp moves selection up.
func (l *ProductList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *ProductList) MoveDown() {
	if l.selected < len(l.products)-1 {
		l.selected++
	}
}

// ResetCursor moves the cursor to the top.
func (l *ProductList) ResetCursor() {
	l.selected = 0
}

// SetDimensions sets the component dimensions.
func (l *ProductList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Width returns the current width.
func (l *ProductList) Width() int {
	return l.width
}

// Height returns the current height.
func (l *ProductList) Height() int {
	return l.height
}

// Count returns the number of products.
func (l *ProductList) Count() int {
	return len(l.products)
}

// IsEmpty returns whether the list is empty.
func (l *ProductList) IsEmpty() bool {
	return len(l.products) == 0
}
