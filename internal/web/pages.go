package web

import (
	"bytes"
	"net/http"

	"go.uber.org/zap"

	"github.com/ziadkadry99/azkar/internal/navigation"
	"github.com/ziadkadry99/azkar/internal/render"
	"github.com/ziadkadry99/azkar/internal/search"
)

// handlePage renders the home, section, and category views. Unknown ids and
// unmatched paths get the not-found page with a 404.
func (h *Handler) handlePage(w http.ResponseWriter, r *http.Request) {
	page := navigation.Resolve(h.store, navigation.Parse(r.URL.Path))

	var buf bytes.Buffer
	if err := h.renderer.Page(&buf, page, render.Options{}); err != nil {
		h.logger.Error("rendering page", zap.String("path", r.URL.Path), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	if page.NotFound {
		status = http.StatusNotFound
	}
	writeHTML(w, status, buf.Bytes())
}

func (h *Handler) handleSearchPage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	hits, err := h.search(r, query, search.DefaultLimit)
	if err != nil {
		h.logger.Error("searching", zap.String("query", query), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := h.renderer.Search(&buf, query, hits, render.Options{}); err != nil {
		h.logger.Error("rendering search", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeHTML(w, http.StatusOK, buf.Bytes())
}

func (h *Handler) search(r *http.Request, query string, limit int) ([]search.Hit, error) {
	if h.index == nil {
		return nil, nil
	}
	return h.index.Search(r.Context(), query, limit)
}

func writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(body)
}
