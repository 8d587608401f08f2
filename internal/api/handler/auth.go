// internal/api/handler/auth.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"goldvault/internal/domain"
	"goldvault/internal/service"
	"goldvault/internal/util"
)

// AuthHandler handles HTTP requests related to authentication.
type AuthHandler struct {
	service service.AuthService
	logger  *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		service: svc,
		logger:  logger,
	}
}

// ExchangeSessionRequest represents the request body for session exchange.
type ExchangeSessionRequest struct {
	SessionID string `json:"session_id"`
}

// SessionResponse is returned after a successful session exchange.
type SessionResponse struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	Name         string  `json:"name"`
	Picture      *string `json:"picture"`
	SessionToken string  `json:"session_token"`
}

// ExchangeSession handles the session exchange request.
// POST /api/auth/session
func (h *AuthHandler) ExchangeSession(w http.ResponseWriter, r *http.Request) {
	var req ExchangeSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}
	if req.SessionID == "" {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	user, token, err := h.service.ExchangeSession(r.Context(), req.SessionID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	// The token is usable as a cross-site cookie or a bearer header.
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(domain.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})

	respondWithJSON(h.logger, w, http.StatusOK, SessionResponse{
		ID:           user.UserID,
		Email:        user.Email,
		Name:         user.Name,
		Picture:      user.Picture,
		SessionToken: token,
	})
}

// Me handles the current-user request.
// GET /api/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		respondWithError(h.logger, w, util.ErrUnauthorized)
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, user)
}

// Logout handles the logout request.
// POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if token := TokenFromRequest(r); token != "" {
		if err := h.service.Logout(r.Context(), token); err != nil {
			respondWithError(h.logger, w, err)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})

	respondWithJSON(h.logger, w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}
