package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

var (
	productBySKU bool
	productJSON  bool
)

var productCmd = &cobra.Command{
	Use:   "product [id]",
	Short: "Show product details",
	Long:  `Looks up a single product by ID, or by SKU with --sku.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runProduct,
}

func init() {
	productCmd.Flags().BoolVar(&productBySKU, "sku", false, "treat the argument as a SKU")
	productCmd.Flags().BoolVar(&productJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(productCmd)
}

func runProduct(cmd *cobra.Command, args []string) error {
	if productService == nil {
		return errors.New("product service not configured")
	}

	var (
		p   *domain.Product
		err error
	)
	if productBySKU {
		p, err = productService.GetBySKU(cmd.Context(), args[0])
	} else {
		p, err = productService.Get(cmd.Context(), args[0])
	}
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("product %q not found", args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to get product: %w", err)
	}

	if productJSON {
		return outputJSON(cmd, toProductView(p))
	}

	cmd.Printf("Product: %s\n\n", p.ID)
	cmd.Printf("  Name:     %s\n", p.DisplayName())
	cmd.Printf("  Price:    %s\n", formatPrice(p.Price))
	if p.CategoryName != "" || p.CategoryID != "" {
		cmd.Printf("  Category: %s\n", firstNonEmpty(p.CategoryName, p.CategoryID))
	}
	if p.Brand != "" {
		cmd.Printf("  Brand:    %s\n", p.Brand)
	}
	if p.SKU != "" {
		cmd.Printf("  SKU:      %s\n", p.SKU)
	}
	cmd.Printf("  Stock:    %d\n", p.Stock)
	if p.Description != "" {
		cmd.Println()
		cmd.Printf("  %s\n", p.Description)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
