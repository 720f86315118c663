package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ziadkadry99/azkar/internal/content"
	"github.com/ziadkadry99/azkar/internal/icons"
	"github.com/ziadkadry99/azkar/internal/navigation"
	"github.com/ziadkadry99/azkar/internal/search"
)

// categorySummary is a category without its items.
type categorySummary struct {
	ID    content.CategoryID `json:"id"`
	Title string             `json:"title"`
	Icon  string             `json:"icon"`
	Count int                `json:"count"`
	Path  string             `json:"path"`
}

type sectionResponse struct {
	ID          content.SectionID `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Path        string            `json:"path"`
	Categories  []categorySummary `json:"categories"`
}

type categoryResponse struct {
	Section content.SectionID  `json:"section"`
	ID      content.CategoryID `json:"id"`
	Title   string             `json:"title"`
	Icon    string             `json:"icon"`
	Path    string             `json:"path"`
	Items   []content.Item     `json:"items"`
}

type itemResponse struct {
	content.ItemRef
	Path  string `json:"path"`
	Share string `json:"share"`
}

type shareResponse struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}

type searchResponse struct {
	Query string       `json:"query"`
	Hits  []search.Hit `json:"hits"`
}

func summarize(sec content.Section) sectionResponse {
	resp := sectionResponse{
		ID:          sec.ID,
		Title:       sec.Title,
		Description: sec.Description,
		Path:        navigation.SectionRoute(sec.ID).Path(),
		Categories:  []categorySummary{},
	}
	for _, cat := range sec.Categories {
		resp.Categories = append(resp.Categories, categorySummary{
			ID:    cat.ID,
			Title: cat.Title,
			Icon:  icons.For(cat),
			Count: len(cat.Items),
			Path:  navigation.CategoryRoute(sec.ID, cat.ID).Path(),
		})
	}
	return resp
}

func (h *Handler) handleListSections(w http.ResponseWriter, r *http.Request) {
	sections := h.store.Sections()
	out := make([]sectionResponse, 0, len(sections))
	for _, sec := range sections {
		out = append(out, summarize(sec))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleGetSection(w http.ResponseWriter, r *http.Request) {
	sec, err := h.store.Section(content.SectionID(chi.URLParam(r, "section")))
	if err != nil {
		h.lookupError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summarize(sec))
}

func (h *Handler) handleGetCategory(w http.ResponseWriter, r *http.Request) {
	secID := content.SectionID(chi.URLParam(r, "section"))
	cat, err := h.store.Category(secID, content.CategoryID(chi.URLParam(r, "category")))
	if err != nil {
		h.lookupError(w, err)
		return
	}
	items := cat.Items
	if items == nil {
		items = []content.Item{}
	}
	writeJSON(w, http.StatusOK, categoryResponse{
		Section: secID,
		ID:      cat.ID,
		Title:   cat.Title,
		Icon:    icons.For(cat),
		Path:    navigation.CategoryRoute(secID, cat.ID).Path(),
		Items:   items,
	})
}

func (h *Handler) handleGetItem(w http.ResponseWriter, r *http.Request) {
	ref, err := h.store.Item(chi.URLParam(r, "id"))
	if err != nil {
		h.lookupError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, itemResponse{
		ItemRef: ref,
		Path:    navigation.CategoryRoute(ref.Section, ref.Category).Path(),
		Share:   h.sharer.Link(ref.Text),
	})
}

// handleItemText returns the raw item text, exactly what copy places on
// the clipboard.
func (h *Handler) handleItemText(w http.ResponseWriter, r *http.Request) {
	ref, err := h.store.Item(chi.URLParam(r, "id"))
	if err != nil {
		h.lookupError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(ref.Text))
}

func (h *Handler) handleItemShare(w http.ResponseWriter, r *http.Request) {
	ref, err := h.store.Item(chi.URLParam(r, "id"))
	if err != nil {
		h.lookupError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, shareResponse{
		Message: h.sharer.Message(ref.Text),
		URL:     h.sharer.Link(ref.Text),
	})
}

func (h *Handler) handleSearchAPI(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	limit := search.DefaultLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	hits, err := h.search(r, query, limit)
	if err != nil {
		h.logger.Error("searching", zap.String("query", query), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "search failed")
		return
	}
	if hits == nil {
		hits = []search.Hit{}
	}
	writeJSON(w, http.StatusOK, searchResponse{Query: query, Hits: hits})
}

func (h *Handler) lookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, content.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	h.logger.Error("content lookup", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal error")
}
