package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/azkar/internal/progress"
	"github.com/ziadkadry99/azkar/internal/site"
)

var siteCmd = &cobra.Command{
	Use:   "site",
	Short: "Generate a static website",
	Long:  `Generates a self-contained static HTML site with every section and category page. The pages work straight from disk or on any static host.`,
	RunE:  runSite,
}

func init() {
	siteCmd.Flags().Bool("serve", false, "start a local HTTP server after generating")
	siteCmd.Flags().Int("port", 8080, "port for the local dev server")
	siteCmd.Flags().Bool("open", false, "open browser automatically when serving")
	siteCmd.Flags().String("output", "", "override output directory (defaults to site.output_dir)")
	rootCmd.AddCommand(siteCmd)
}

func runSite(cmd *cobra.Command, args []string) error {
	store, err := loadStore()
	if err != nil {
		return err
	}
	sharer, err := newSharer()
	if err != nil {
		return err
	}
	renderer, err := newRenderer(sharer)
	if err != nil {
		return err
	}

	// Determine output directory.
	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = appConfig.Site.OutputDir
	}

	generator := site.NewGenerator(store, renderer, outputDir)
	generator.Reporter = progress.NewReporter()
	pageCount, err := generator.Generate()
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}

	fmt.Printf("Static site generated: %s (%d pages)\n", outputDir, pageCount)

	// Optionally serve the site.
	serve, _ := cmd.Flags().GetBool("serve")
	if serve {
		port, _ := cmd.Flags().GetInt("port")
		openBrowser, _ := cmd.Flags().GetBool("open")

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := site.Serve(ctx, outputDir, port, openBrowser, logger); err != nil {
			return fmt.Errorf("serving site: %w", err)
		}
	}

	return nil
}
