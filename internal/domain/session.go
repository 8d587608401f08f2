// internal/domain/session.go
package domain

import "time"

// SessionTTL is how long an exchanged session stays valid.
const SessionTTL = 7 * 24 * time.Hour

// Session binds an opaque provider-issued token to a user. Expired sessions
// are removed lazily on first use; creating a new session does not invalidate
// older ones for the same user.
type Session struct {
	SessionToken string    `db:"session_token" json:"session_token"`
	UserID       string    `db:"user_id" json:"user_id"`
	ExpiresAt    time.Time `db:"expires_at" json:"expires_at"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// NewSession creates a session for userID valid for SessionTTL from now.
func NewSession(userID, token string, now time.Time) *Session {
	return &Session{
		SessionToken: token,
		UserID:       userID,
		ExpiresAt:    now.Add(SessionTTL),
		CreatedAt:    now,
	}
}

// Expired reports whether the session has passed its expiry at the given time.
// Stored expiries are normalized to UTC before comparison.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.UTC().After(now.UTC())
}
