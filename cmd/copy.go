package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/azkar/internal/actions"
)

var copyCmd = &cobra.Command{
	Use:   "copy <item-id>",
	Short: "Copy an item's text to the clipboard",
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
		if err := actions.Copy(actions.SystemClipboard{}, ref.Text); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Copied %s to the clipboard\n", ref.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(copyCmd)
}
