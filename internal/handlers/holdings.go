package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/foliohq/folio-portal/internal/cache"
	"github.com/foliohq/folio-portal/internal/client"
	"github.com/foliohq/folio-portal/internal/common"
	"github.com/foliohq/folio-portal/internal/portfolio"
	"github.com/foliohq/folio-portal/internal/refresh"
)

// HoldingsHandler serves the holding mutation endpoints. Validation
// failures reject with 400 before any backend call; backend rejections
// on the server variant are surfaced with the server's detail.
type HoldingsHandler struct {
	service *portfolio.Service
	cache   *cache.SnapshotCache
	logger  *common.Logger
}

// NewHoldingsHandler creates a holdings handler.
func NewHoldingsHandler(service *portfolio.Service, c *cache.SnapshotCache, logger *common.Logger) *HoldingsHandler {
	return &HoldingsHandler{
		service: service,
		cache:   c,
		logger:  logger,
	}
}

// Add handles POST /api/holdings/add with symbol, shares, cost_average
// parameters. Zero or missing shares default to 1.
func (h *HoldingsHandler) Add(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	symbol := strings.TrimSpace(r.FormValue("symbol"))
	if symbol == "" {
		WriteError(w, http.StatusBadRequest, "symbol is required")
		return
	}

	shares, ok := parseNumber(r.FormValue("shares"), 0)
	if !ok {
		WriteError(w, http.StatusBadRequest, "shares must be a number")
		return
	}
	if shares < 0 {
		WriteError(w, http.StatusBadRequest, "shares must be positive")
		return
	}

	costAverage, ok := parseNumber(r.FormValue("cost_average"), 0)
	if !ok {
		WriteError(w, http.StatusBadRequest, "cost_average must be a number")
		return
	}
	if costAverage < 0 {
		WriteError(w, http.StatusBadRequest, "cost_average must not be negative")
		return
	}

	if err := h.service.Add(r.Context(), symbol, shares, costAverage); err != nil {
		h.writeMutationError(w, err, "Failed to add holding")
		return
	}

	h.cache.InvalidatePrefix(refresh.KeyPortfolio)
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Update handles PUT /api/holdings/update/{symbol}.
func (h *HoldingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPut) {
		return
	}

	symbol := strings.TrimPrefix(r.URL.Path, "/api/holdings/update/")
	if symbol == "" || strings.Contains(symbol, "/") {
		WriteError(w, http.StatusBadRequest, "symbol is required")
		return
	}

	shares, ok := parseNumber(r.FormValue("shares"), 0)
	if !ok || shares <= 0 {
		WriteError(w, http.StatusBadRequest, "shares must be a positive number")
		return
	}

	costAverage, ok := parseNumber(r.FormValue("cost_average"), 0)
	if !ok || costAverage < 0 {
		WriteError(w, http.StatusBadRequest, "cost_average must be a non-negative number")
		return
	}

	if err := h.service.Update(r.Context(), symbol, shares, costAverage); err != nil {
		h.writeMutationError(w, err, "Failed to update holding")
		return
	}

	h.cache.InvalidatePrefix(refresh.KeyPortfolio)
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Remove handles DELETE /api/holdings/remove/{symbol}. Removing the
// selected symbol also clears the selection.
func (h *HoldingsHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodDelete) {
		return
	}

	symbol := strings.TrimPrefix(r.URL.Path, "/api/holdings/remove/")
	if symbol == "" || strings.Contains(symbol, "/") {
		WriteError(w, http.StatusBadRequest, "symbol is required")
		return
	}

	if err := h.service.Remove(r.Context(), symbol); err != nil {
		h.writeMutationError(w, err, "Failed to remove holding")
		return
	}

	h.cache.InvalidatePrefix(refresh.KeyPortfolio)
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HoldingsHandler) writeMutationError(w http.ResponseWriter, err error, logMsg string) {
	h.logger.Warn().Err(err).Msg(logMsg)

	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		detail := apiErr.Detail
		if detail == "" {
			detail = "request failed"
		}
		WriteError(w, apiErr.StatusCode, detail)
		return
	}
	WriteError(w, http.StatusBadRequest, err.Error())
}

// parseNumber parses a numeric form value. An empty value yields the
// fallback; a non-numeric value fails.
func parseNumber(raw string, fallback float64) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
