package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var categoriesJSON bool

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List product categories",
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

func init() {
	categoriesCmd.Flags().BoolVar(&categoriesJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, _ []string) error {
	if productService == nil {
		return errors.New("product service not configured")
	}

	categories, err := productService.Categories(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list categories: %w", err)
	}

	if categoriesJSON {
		type categoryView struct {
			ID          string `json:"id"`
			Name        string `json:"name"`
			Description string `json:"description,omitempty"`
		}
		views := make([]categoryView, 0, len(categories))
		for _, c := range categories {
			views = append(views, categoryView{ID: c.ID, Name: c.Name, Description: c.Description})
		}
		return outputJSON(cmd, views)
	}

	if len(categories) == 0 {
		cmd.Println("No categories found.")
		return nil
	}

	cmd.Println("Categories:")
	cmd.Println()
	for _, c := range categories {
		cmd.Printf("  %-8s %s\n", c.ID, c.Name)
		if c.Description != "" {
			cmd.Printf("           %s\n", c.Description)
		}
	}
	cmd.Println()
	cmd.Printf("Total: %d categories\n", len(categories))
	return nil
}
