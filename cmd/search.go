package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/azkar/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search item text, ignoring diacritics",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadStore()
		if err != nil {
			return err
		}
		index, err := buildIndex(cmd.Context(), store)
		if err != nil {
			return err
		}
		defer index.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		query := strings.Join(args, " ")
		hits, err := index.Search(cmd.Context(), query, limit)
		if err != nil {
			return fmt.Errorf("searching: %w", err)
		}

		if len(hits) == 0 {
			fmt.Println("No results found.")
			return nil
		}
		for _, h := range hits {
			fmt.Printf("[%s] %s\n    %s\n\n", h.ID, h.Path, h.Text)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().Int("limit", search.DefaultLimit, "maximum number of results")
	rootCmd.AddCommand(searchCmd)
}
