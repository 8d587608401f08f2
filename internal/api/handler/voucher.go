// internal/api/handler/voucher.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"goldvault/internal/service"
	"goldvault/internal/util"
)

// VoucherHandler handles HTTP requests related to gift vouchers.
type VoucherHandler struct {
	service service.VoucherService
	logger  *slog.Logger
}

// NewVoucherHandler creates a new VoucherHandler.
func NewVoucherHandler(svc service.VoucherService, logger *slog.Logger) *VoucherHandler {
	return &VoucherHandler{
		service: svc,
		logger:  logger,
	}
}

// CreateVoucherRequest represents the request body for voucher creation.
// Fields are stored as submitted.
type CreateVoucherRequest struct {
	Amount         decimal.Decimal `json:"amount"`
	RecipientName  string          `json:"recipient_name"`
	RecipientPhone string          `json:"recipient_phone"`
}

// Create handles the voucher creation request.
// POST /api/vouchers
func (h *VoucherHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		respondWithError(h.logger, w, util.ErrUnauthorized)
		return
	}

	var req CreateVoucherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	voucher, err := h.service.CreateVoucher(r.Context(), user.UserID, req.Amount, req.RecipientName, req.RecipientPhone)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, voucher)
}

// List handles the voucher listing request.
// GET /api/vouchers
func (h *VoucherHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		respondWithError(h.logger, w, util.ErrUnauthorized)
		return
	}

	vouchers, err := h.service.ListVouchers(r.Context(), user.UserID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, vouchers)
}
