package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyClear bool
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent searches",
	Long:  `Lists recently applied searches, newest first. Use --clear to forget them.`,
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "maximum number of entries (default from settings)")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "delete all search history")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	ctx := cmd.Context()
	if historyClear {
		if err := historyService.Clear(ctx); err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		cmd.Println("Search history cleared.")
		return nil
	}

	entries, err := historyService.Recent(ctx, historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if historyJSON {
		type entryView struct {
			ID          string `json:"id"`
			Query       string `json:"query"`
			Filter      string `json:"filter"`
			ResultCount int    `json:"result_count"`
			CreatedAt   string `json:"created_at"`
		}
		views := make([]entryView, 0, len(entries))
		for i := range entries {
			views = append(views, entryView{
				ID:          entries[i].ID,
				Query:       entries[i].Query,
				Filter:      entries[i].Filter.String(),
				ResultCount: entries[i].ResultCount,
				CreatedAt:   entries[i].CreatedAt.Format(time.RFC3339),
			})
		}
		return outputJSON(cmd, views)
	}

	if len(entries) == 0 {
		cmd.Println("No search history.")
		return nil
	}

	cmd.Println("Recent searches:")
	cmd.Println()
	for i := range entries {
		e := &entries[i]
		cmd.Printf("  %s  %-30q %4d results", e.CreatedAt.Local().Format("2006-01-02 15:04"), e.Query, e.ResultCount)
		if !e.Filter.IsZero() {
			cmd.Printf("  (%s)", e.Filter)
		}
		cmd.Println()
	}
	return nil
}
