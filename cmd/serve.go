package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/azkar/internal/server"
	"github.com/ziadkadry99/azkar/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the content browser over HTTP",
	Long:  `Starts the web server: the browsable site, a JSON API under /api, and in-browser playback over /ws/playback.`,
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

		sharer, err := newSharer()
		if err != nil {
			return err
		}
		renderer, err := newRenderer(sharer)
		if err != nil {
			return err
		}

		port := appConfig.Server.Port
		if cmd.Flags().Changed("port") {
			port, _ = cmd.Flags().GetInt("port")
		}

		srv := server.New(server.Config{
			Port:     port,
			AllowAll: appConfig.Server.AllowAllOrigins,
		}, logger)

		web.New(store, index, renderer, sharer, web.Options{
			Lang:   appConfig.Speech.Lang,
			Logger: logger,
		}).RegisterRoutes(srv.Router())

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Warn("shutdown", zap.Error(err))
			}
		}()

		fmt.Fprintf(os.Stderr, "azkar server v%s starting on http://localhost:%d\n", Version, port)
		fmt.Fprintf(os.Stderr, "  Items: %d\n", store.Len())

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().Int("port", 8080, "port to listen on (overrides server.port)")
	rootCmd.AddCommand(serveCmd)
}
