package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

// addPriceFlags registers --min and --max on cmd.
func addPriceFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("min", 0, "minimum price (requires --max)")
	cmd.Flags().Float64("max", 0, "maximum price (requires --min)")
}

// addSortFlags registers --sort and --order on cmd.
func addSortFlags(cmd *cobra.Command) {
	cmd.Flags().String("sort", "", "sort field: name or price")
	cmd.Flags().String("order", "", "sort order: asc or desc")
}

// filterFromFlags builds validated price criteria from --min and --max.
func filterFromFlags(cmd *cobra.Command) (domain.FilterCriteria, error) {
	var criteria domain.FilterCriteria
	for _, name := range []string{"min", "max"} {
		if !cmd.Flags().Changed(name) {
			continue
		}
		v, err := cmd.Flags().GetFloat64(name)
		if err != nil {
			return domain.FilterCriteria{}, fmt.Errorf("getting %s flag: %w", name, err)
		}
		if name == "min" {
			criteria.MinPrice = &v
		} else {
			criteria.MaxPrice = &v
		}
	}
	if err := criteria.Validate(); err != nil {
		return domain.FilterCriteria{}, err
	}
	return criteria, nil
}

// sortFromFlags merges --sort and --order over base.
func sortFromFlags(cmd *cobra.Command, base domain.SortCriteria) (domain.SortCriteria, error) {
	field, err := cmd.Flags().GetString("sort")
	if err != nil {
		return base, fmt.Errorf("getting sort flag: %w", err)
	}
	order, err := cmd.Flags().GetString("order")
	if err != nil {
		return base, fmt.Errorf("getting order flag: %w", err)
	}
	if strings.TrimSpace(field) == "" {
		field = base.Field.String()
	}
	if strings.TrimSpace(order) == "" {
		order = base.Order.String()
	}
	return domain.ParseSortCriteria(field, order)
}
