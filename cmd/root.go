package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/azkar/internal/config"
	"github.com/ziadkadry99/azkar/internal/logging"
)

var (
	cfgFile string
	verbose bool

	// appConfig and logger are set up before every command runs.
	appConfig *config.Config
	logger    = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "azkar",
	Short: "Browse, read aloud, copy and share azkar and adiyah",
	Long: `azkar is a browser for a fixed collection of Islamic remembrances (azkar)
and supplications (adiyah). Content is grouped into sections and categories
and can be browsed in the terminal, served as a website, or generated as a
static site. Any item can be read aloud, copied, or shared as a link.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		appConfig = cfg

		l, err := logging.New(cfg.LogLevel, verbose)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".azkar.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
