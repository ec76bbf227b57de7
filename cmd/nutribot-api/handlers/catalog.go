package handlers

import (
	"net/http"
	"strconv"

	"github.com/aishuu11/hackathon-2025/internal/catalog"
	"github.com/aishuu11/hackathon-2025/internal/observability"
)

// CatalogHandler exposes the loaded catalogs read-only.
type CatalogHandler struct {
	logger *observability.Logger
	set    *catalog.Set
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(logger *observability.Logger, set *catalog.Set) *CatalogHandler {
	return &CatalogHandler{logger: logger, set: set}
}

// Foods handles GET /api/catalog/foods.
func (h *CatalogHandler) Foods(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, http.StatusOK, h.set.Foods)
}

// Myths handles GET /api/catalog/myths.
func (h *CatalogHandler) Myths(w http.ResponseWriter, r *http.Request) {
	myths := h.set.Myths.All()
	if myths == nil {
		myths = []catalog.MythEntry{}
	}
	writeJSON(h.logger, w, http.StatusOK, myths)
}

// Search handles GET /api/catalog/search?q=...&limit=n.
func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeError(h.logger, w, http.StatusBadRequest, "q is required", "")
		return
	}

	limit := 5
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(h.logger, w, http.StatusBadRequest, "invalid limit", v)
			return
		}
		limit = n
	}

	results := h.set.Suggest(q, limit)
	if results == nil {
		results = []catalog.Suggestion{}
	}
	writeJSON(h.logger, w, http.StatusOK, map[string]interface{}{"query": q, "results": results})
}
