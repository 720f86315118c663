// Package web serves the content browser over HTTP: server-rendered views,
// a JSON API, and websocket playback sessions.
package web

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/ziadkadry99/azkar/internal/actions"
	"github.com/ziadkadry99/azkar/internal/content"
	"github.com/ziadkadry99/azkar/internal/render"
	"github.com/ziadkadry99/azkar/internal/search"
)

// Handler holds the dependencies of every route.
type Handler struct {
	store    *content.Store
	index    *search.Index
	renderer *render.Renderer
	sharer   *actions.Sharer
	lang     string
	logger   *zap.Logger
}

// Options configure a Handler.
type Options struct {
	// Lang is the speech language sent to browsers.
	Lang   string
	Logger *zap.Logger
}

// New creates a Handler. index may be nil, in which case search returns no hits.
func New(store *content.Store, index *search.Index, renderer *render.Renderer, sharer *actions.Sharer, opts Options) *Handler {
	h := &Handler{
		store:    store,
		index:    index,
		renderer: renderer,
		sharer:   sharer,
		lang:     opts.Lang,
		logger:   opts.Logger,
	}
	if h.lang == "" {
		h.lang = "ar"
	}
	if h.logger == nil {
		h.logger = zap.NewNop()
	}
	return h
}

// RegisterRoutes mounts all routes on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/ws/playback", h.handlePlayback)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		r.Route("/api", func(r chi.Router) {
			r.Get("/sections", h.handleListSections)
			r.Get("/sections/{section}", h.handleGetSection)
			r.Get("/sections/{section}/{category}", h.handleGetCategory)
			r.Get("/items/{id}", h.handleGetItem)
			r.Get("/items/{id}/text", h.handleItemText)
			r.Get("/items/{id}/share", h.handleItemShare)
			r.Get("/search", h.handleSearchAPI)
			r.NotFound(func(w http.ResponseWriter, r *http.Request) {
				writeError(w, http.StatusNotFound, "not found")
			})
		})

		r.Get("/assets/style.css", serveAsset("text/css; charset=utf-8", render.CSS()))
		r.Get("/assets/app.js", serveAsset("text/javascript; charset=utf-8", render.JS()))

		r.Get("/search", h.handleSearchPage)
		r.Get("/", h.handlePage)
		r.Get("/{section}", h.handlePage)
		r.Get("/{section}/{category}", h.handlePage)
		r.NotFound(h.handlePage)
	})
}

func serveAsset(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Write([]byte(body))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
