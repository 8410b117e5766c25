package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

const (
	defaultTableWidth = 100
	minNameWidth      = 16
)

// productView is the JSON shape of a product.
type productView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Category string `json:"category,omitempty"`
	SKU      string `json:"sku,omitempty"`
	Brand    string `json:"brand,omitempty"`
	Stock    int    `json:"stock"`
}

// pageView is the JSON shape of page info.
type pageView struct {
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalPages    int   `json:"total_pages"`
	TotalElements int64 `json:"total_elements"`
}

// listingView is the JSON shape of a published list.
type listingView struct {
	Mode     string        `json:"mode"`
	Query    string        `json:"query,omitempty"`
	Page     *pageView     `json:"page,omitempty"`
	Category string        `json:"category,omitempty"`
	Filter   string        `json:"filter"`
	Sort     string        `json:"sort"`
	Products []productView `json:"products"`
}

func toProductView(p *domain.Product) productView {
	return productView{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price.String(),
		Category: p.CategoryName,
		SKU:      p.SKU,
		Brand:    p.Brand,
		Stock:    p.Stock,
	}
}

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputListingJSON(cmd *cobra.Command, state *domain.PipelineState) error {
	view := listingView{
		Mode:     state.Mode.String(),
		Query:    state.Query,
		Category: state.CategoryID,
		Filter:   state.Filter.String(),
		Sort:     state.Sort.String(),
		Products: make([]productView, 0, len(state.PublishedList)),
	}
	if info := state.PageInfo; info != nil {
		view.Page = &pageView{
			Page:          info.Page,
			Size:          info.Size,
			TotalPages:    info.TotalPages,
			TotalElements: info.TotalElements,
		}
	}
	for i := range state.PublishedList {
		view.Products = append(view.Products, toProductView(&state.PublishedList[i]))
	}
	return outputJSON(cmd, view)
}

// outputListing prints the published list as a table followed by a
// mode-specific footer.
func outputListing(cmd *cobra.Command, state *domain.PipelineState) {
	if len(state.PublishedList) == 0 {
		cmd.Println("No products found.")
	} else {
		nameWidth := max(terminalWidth(cmd)-48, minNameWidth)
		cmd.Printf("  %-8s  %-*s  %10s  %-20s\n", "ID", nameWidth, "NAME", "PRICE", "CATEGORY")
		for i := range state.PublishedList {
			p := &state.PublishedList[i]
			cmd.Printf("  %-8s  %-*s  %10s  %-20s\n",
				truncate(p.ID, 8),
				nameWidth, truncate(p.DisplayName(), nameWidth),
				formatPrice(p.Price),
				truncate(p.CategoryName, 20),
			)
		}
	}
	cmd.Println()

	switch state.Mode {
	case domain.ModeSearch:
		cmd.Printf("%d results for %q\n", len(state.PublishedList), state.Query)
	case domain.ModeCatalog:
		if state.PageInfo != nil {
			cmd.Printf("Page %d of %d (%d products)\n",
				state.PageInfo.Page, max(state.PageInfo.TotalPages, 1), state.PageInfo.TotalElements)
		}
	}
	if !state.Filter.IsZero() {
		cmd.Printf("Price: %s\n", state.Filter)
	}
	cmd.Printf("Sort: %s\n", state.Sort)
}

func formatPrice(p domain.Price) string {
	if v, ok := p.Float(); ok {
		return fmt.Sprintf("%.2f", v)
	}
	if p == "" {
		return "-"
	}
	return truncate(p.String(), 10)
}

// terminalWidth returns the output width, or a default when output is not
// a terminal.
func terminalWidth(cmd *cobra.Command) int {
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultTableWidth
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return defaultTableWidth
	}
	return w
}

func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	if width <= 3 {
		return strings.Repeat(".", width)
	}
	runes := []rune(s)
	return string(runes[:width-3]) + "..."
}
