package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/azkar/internal/actions"
)

var shareCmd = &cobra.Command{
	Use:   "share <item-id>",
	Short: "Print (or open) the share link for an item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadStore()
		if err != nil {
			return err
		}
		ref, err := lookupItem(store, args[0])
		if err != nil {
			return err
		}
		sharer, err := newSharer()
		if err != nil {
			return err
		}

		link := sharer.Link(ref.Text)
		fmt.Println(link)

		if open, _ := cmd.Flags().GetBool("open"); open {
			return actions.Open(link)
		}
		return nil
	},
}

func init() {
	shareCmd.Flags().Bool("open", false, "open the link in the default browser")
	rootCmd.AddCommand(shareCmd)
}
