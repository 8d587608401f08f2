// internal/api/handler/order.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"goldvault/internal/domain"
	"goldvault/internal/service"
	"goldvault/internal/util"
)

// OrderHandler handles HTTP requests related to orders.
type OrderHandler struct {
	service service.OrderService
	logger  *slog.Logger
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(svc service.OrderService, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		service: svc,
		logger:  logger,
	}
}

// CreateOrderRequest represents the request body for order creation.
// Items and total are stored as submitted.
type CreateOrderRequest struct {
	Items       []domain.OrderItem `json:"items"`
	TotalAmount decimal.Decimal    `json:"total_amount"`
}

// Create handles the order creation request.
// POST /api/orders
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		respondWithError(h.logger, w, util.ErrUnauthorized)
		return
	}

	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	order, err := h.service.CreateOrder(r.Context(), user.UserID, req.Items, req.TotalAmount)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, order)
}

// List handles the order listing request.
// GET /api/orders
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		respondWithError(h.logger, w, util.ErrUnauthorized)
		return
	}

	orders, err := h.service.ListOrders(r.Context(), user.UserID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, orders)
}

// Get handles the single order request, scoped to the caller.
// GET /api/orders/{orderID}
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		respondWithError(h.logger, w, util.ErrUnauthorized)
		return
	}

	order, err := h.service.GetOrder(r.Context(), user.UserID, chi.URLParam(r, "orderID"))
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, order)
}
