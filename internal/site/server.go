package site

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/ziadkadry99/azkar/internal/actions"
	"github.com/ziadkadry99/azkar/internal/server"
)

// Serve starts a local HTTP file server for the static site until ctx is
// done. Missing files get the site's 404 page.
func Serve(ctx context.Context, dir string, port int, open bool, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	addr := fmt.Sprintf(":%d", port)
	url := fmt.Sprintf("http://localhost:%d", port)

	srv := &http.Server{
		Addr:              addr,
		Handler:           server.RequestLogger(logger)(Handler(dir)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	if open {
		go func() {
			if err := actions.Open(url); err != nil {
				logger.Warn("opening browser", zap.Error(err))
			}
		}()
	}

	fmt.Printf("Serving site at %s\n", url)
	fmt.Println("Press Ctrl+C to stop.")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Handler serves dir, answering unknown paths with 404.html.
func Handler(dir string) http.Handler {
	files := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := filepath.Join(dir, filepath.FromSlash(filepath.Clean("/"+r.URL.Path)))
		if _, err := os.Stat(name); errors.Is(err, os.ErrNotExist) {
			body, err := os.ReadFile(filepath.Join(dir, NotFoundPage))
			if err != nil {
				http.NotFound(w, r)
				return
			}
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusNotFound)
			w.Write(body)
			return
		}
		files.ServeHTTP(w, r)
	})
}
