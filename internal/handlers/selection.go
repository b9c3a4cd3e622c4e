package handlers

import (
	"net/http"
	"strings"

	"github.com/foliohq/folio-portal/internal/cache"
	"github.com/foliohq/folio-portal/internal/common"
	"github.com/foliohq/folio-portal/internal/portfolio"
	"github.com/foliohq/folio-portal/internal/refresh"
)

// SelectionHandler manages the focused symbol driving the news panel.
type SelectionHandler struct {
	selection *portfolio.Selection
	cache     *cache.SnapshotCache
	logger    *common.Logger
}

// NewSelectionHandler creates a selection handler.
func NewSelectionHandler(selection *portfolio.Selection, c *cache.SnapshotCache, logger *common.Logger) *SelectionHandler {
	return &SelectionHandler{
		selection: selection,
		cache:     c,
		logger:    logger,
	}
}

// Select handles POST /api/select/{symbol}.
func (h *SelectionHandler) Select(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	symbol := strings.TrimPrefix(r.URL.Path, "/api/select/")
	if symbol == "" || strings.Contains(symbol, "/") {
		WriteError(w, http.StatusBadRequest, "symbol is required")
		return
	}

	h.selection.Select(symbol)
	h.cache.InvalidatePrefix(refresh.KeyPortfolio)
	WriteJSON(w, http.StatusOK, map[string]string{
		"status":   "ok",
		"selected": h.selection.Current(),
	})
}

// Clear handles DELETE /api/select.
func (h *SelectionHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodDelete) {
		return
	}

	h.selection.Clear()
	h.cache.InvalidatePrefix(refresh.KeyPortfolio)
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
