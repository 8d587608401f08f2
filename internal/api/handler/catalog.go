// internal/api/handler/catalog.go
package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"goldvault/internal/service"
)

// CatalogHandler handles HTTP requests for jewelry and store browsing.
type CatalogHandler struct {
	service service.CatalogService
	logger  *slog.Logger
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(svc service.CatalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: svc,
		logger:  logger,
	}
}

// Jewelry handles the shared catalog listing.
// GET /api/jewelry
func (h *CatalogHandler) Jewelry(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListJewelry(r.Context())
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, items)
}

// Stores handles the store listing.
// GET /api/stores
func (h *CatalogHandler) Stores(w http.ResponseWriter, r *http.Request) {
	stores, err := h.service.ListStores(r.Context())
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, stores)
}

// Store handles the single store request.
// GET /api/stores/{storeID}
func (h *CatalogHandler) Store(w http.ResponseWriter, r *http.Request) {
	store, err := h.service.GetStore(r.Context(), chi.URLParam(r, "storeID"))
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, store)
}

// StoreProducts handles the store product listing.
// GET /api/stores/{storeID}/products
func (h *CatalogHandler) StoreProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListStoreProducts(r.Context(), chi.URLParam(r, "storeID"))
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, products)
}
