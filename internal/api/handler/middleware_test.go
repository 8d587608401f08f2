// internal/api/handler/middleware_test.go
package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"goldvault/internal/domain"
	"goldvault/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestTokenFromRequest(t *testing.T) {
	t.Run("FromCookie", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "tok_cookie"})

		assert.Equal(t, "tok_cookie", TokenFromRequest(r))
	})

	t.Run("FromBearerHeader", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer tok_header")

		assert.Equal(t, "tok_header", TokenFromRequest(r))
	})

	t.Run("BearerIsCaseInsensitive", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "bearer tok_header")

		assert.Equal(t, "tok_header", TokenFromRequest(r))
	})

	t.Run("CookieWinsOverHeader", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "tok_cookie"})
		r.Header.Set("Authorization", "Bearer tok_header")

		assert.Equal(t, "tok_cookie", TokenFromRequest(r))
	})

	t.Run("NonBearerSchemeIgnored", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

		assert.Empty(t, TokenFromRequest(r))
	})

	t.Run("NoCredentials", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		assert.Empty(t, TokenFromRequest(r))
	})
}

func TestRequireAuth(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("X-User-ID", user.UserID)
		w.WriteHeader(http.StatusOK)
	})

	t.Run("MissingToken", func(t *testing.T) {
		auth := new(MockAuthService)
		h := RequireAuth(auth, testLogger())(next)

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Authentication required")
		auth.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
	})

	t.Run("InvalidToken", func(t *testing.T) {
		auth := new(MockAuthService)
		h := RequireAuth(auth, testLogger())(next)

		auth.On("Authenticate", mock.Anything, "bad_token").Return(nil, util.ErrUnauthorized).Once()

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer bad_token")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		auth.AssertExpectations(t)
	})

	t.Run("ValidTokenStoresUser", func(t *testing.T) {
		auth := new(MockAuthService)
		h := RequireAuth(auth, testLogger())(next)

		user := &domain.User{UserID: "user_abc", Email: "a@example.com"}
		auth.On("Authenticate", mock.Anything, "good_token").Return(user, nil).Once()

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "good_token"})
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "user_abc", w.Header().Get("X-User-ID"))
		auth.AssertExpectations(t)
	})
}
