// internal/api/handler/portfolio.go
package handler

import (
	"log/slog"
	"net/http"

	"goldvault/internal/service"
	"goldvault/internal/util"
)

// PortfolioHandler handles HTTP requests related to portfolio valuation.
type PortfolioHandler struct {
	service service.PortfolioService
	logger  *slog.Logger
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(svc service.PortfolioService, logger *slog.Logger) *PortfolioHandler {
	return &PortfolioHandler{
		service: svc,
		logger:  logger,
	}
}

// Get handles the portfolio request, recomputing the current value.
// GET /api/portfolio
func (h *PortfolioHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		respondWithError(h.logger, w, util.ErrUnauthorized)
		return
	}

	portfolio, err := h.service.GetPortfolio(r.Context(), user.UserID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, portfolio)
}
