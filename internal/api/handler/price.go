// internal/api/handler/price.go
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"goldvault/internal/service"
)

// PriceHandler handles HTTP requests related to gold prices.
type PriceHandler struct {
	service service.PriceService
	logger  *slog.Logger
}

// NewPriceHandler creates a new PriceHandler.
func NewPriceHandler(svc service.PriceService, logger *slog.Logger) *PriceHandler {
	return &PriceHandler{
		service: svc,
		logger:  logger,
	}
}

// Current handles the cached price request. Fail-soft: always 200.
// GET /api/gold/prices/current
func (h *PriceHandler) Current(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(h.logger, w, http.StatusOK, h.service.CurrentPrice(r.Context()))
}

// Live handles the live converted price request. Fail-hard: upstream
// failures surface as 502.
// GET /api/gold/qar
func (h *PriceHandler) Live(w http.ResponseWriter, r *http.Request) {
	price, err := h.service.LivePrice(r.Context())
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, price)
}

// Historical handles the price history request.
// GET /api/gold/prices/historical?days=N
func (h *PriceHandler) Historical(w http.ResponseWriter, r *http.Request) {
	days, err := strconv.Atoi(r.URL.Query().Get("days"))
	if err != nil || days <= 0 {
		days = 7 // Default window
	}

	prices, err := h.service.HistoricalPrices(r.Context(), days)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, prices)
}
