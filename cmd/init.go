package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/azkar/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize azkar configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure sharing, the web server and the static site, and writes the result to the config file.`,
	// The config file may not exist or be valid yet.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
