// Package product provides the product details view for the TUI.
package product

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

// View is the product details view.
type View struct {
	styles *styles.Styles

	product      *domain.Product
	loading      bool
	scrollOffset int
	width        int
	height       int
	ready        bool
	err          error
}

// NewView creates a new product details view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles: s,
		width:  80,
		height: 24,
	}
}

// SetLoading shows the list entry while full details are fetched.
func (v *View) SetLoading(p domain.Product) {
	v.product = &p
	v.loading = true
	v.scrollOffset = 0
	v.err = nil
}

// SetProduct sets the product to display.
func (v *View) SetProduct(p *domain.Product) {
	v.product = p
	v.loading = false
	v.scrollOffset = 0
	v.err = nil
}

// SetError sets an error to display.
func (v *View) SetError(err error) {
	v.loading = false
	v.err = err
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the product view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.ProductLoaded:
		if msg.Err != nil {
			v.SetError(msg.Err)
		} else if msg.Product != nil {
			v.SetProduct(msg.Product)
		}
		return v, nil

	case messages.ErrorOccurred:
		v.SetError(msg.Err)
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.scrollOffset > 0 {
			v.scrollOffset--
		}
	case "down", "j":
		if v.scrollOffset < v.maxScrollOffset() {
			v.scrollOffset++
		}
	case "esc", "backspace":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewCatalog}
		}
	}

	return v, nil
}

// visibleLines returns the number of lines that can be displayed.
func (v *View) visibleLines() int {
	// Reserve lines for title, separator, help, and padding
	return max(v.height-6, 1)
}

// maxScrollOffset returns the maximum scroll offset.
func (v *View) maxScrollOffset() int {
	return max(len(v.buildContent())-v.visibleLines(), 0)
}

// buildContent builds the content lines for display.
func (v *View) buildContent() []string {
	p := v.product
	if p == nil {
		return nil
	}

	price := "-"
	if f, ok := p.Price.Float(); ok {
		price = fmt.Sprintf("%.2f", f)
	} else if p.Price != "" {
		price = p.Price.String()
	}

	category := p.CategoryName
	if category == "" {
		category = p.CategoryID
	} else if p.CategoryID != "" {
		category = fmt.Sprintf("%s (%s)", p.CategoryName, p.CategoryID)
	}

	lines := []string{
		formatField("ID", p.ID),
		formatField("Name", p.DisplayName()),
		formatField("Price", price),
	}
	if p.SKU != "" {
		lines = append(lines, formatField("SKU", p.SKU))
	}
	if p.Brand != "" {
		lines = append(lines, formatField("Brand", p.Brand))
	}
	if category != "" {
		lines = append(lines, formatField("Category", category))
	}
	lines = append(lines, formatField("Stock", v.styles.Stock(p.Stock)))

	if p.Description != "" {
		lines = append(lines, "", "Description:")
		for _, l := range wrap(p.Description, max(v.width-6, 20)) {
			lines = append(lines, "  "+l)
		}
	}

	return lines
}

// formatField formats a field for display.
func formatField(label, value string) string {
	return fmt.Sprintf("%-10s %s", label+":", value)
}

// wrap splits text into lines no wider than width, breaking on spaces.
func wrap(text string, width int) []string {
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// View renders the product details view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Product Details"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", min(max(v.width-4, 1), 60)))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	if v.product == nil {
		b.WriteString(v.styles.Muted.Render("No product selected"))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	lines := v.buildContent()
	visible := v.visibleLines()
	for i := v.scrollOffset; i < len(lines) && i < v.scrollOffset+visible; i++ {
		b.WriteString(v.renderLine(lines[i]))
		b.WriteString("\n")
	}

	if len(lines) > visible {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [Line %d-%d of %d]",
			v.scrollOffset+1,
			min(v.scrollOffset+visible, len(lines)),
			len(lines))))
	}

	if v.loading {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render("Loading details..."))
	}

	b.WriteString("\n\n")
	b.WriteString(v.renderHelp())
	return b.String()
}

// renderLine styles a content line by its shape.
func (v *View) renderLine(line string) string {
	switch {
	case line == "Description:":
		return v.styles.Subtitle.Render(line)
	case strings.HasPrefix(line, "  "):
		return v.styles.Normal.Render(line)
	case strings.HasPrefix(line, "Price:"):
		return v.styles.Subtitle.Render("Price:") + v.styles.Price.Render(strings.TrimPrefix(line, "Price:"))
	}
	if label, value, ok := strings.Cut(line, ":"); ok {
		return v.styles.Subtitle.Render(label+":") + v.styles.Normal.Render(value)
	}
	return v.styles.Normal.Render(line)
}

// renderHelp renders the help footer.
func (v *View) renderHelp() string {
	return v.styles.Help.Render("[↑/↓] scroll  [esc] back")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Product returns the displayed product.
func (v *View) Product() *domain.Product {
	return v.product
}

// Loading reports whether details are still being fetched.
func (v *View) Loading() bool {
	return v.loading
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
