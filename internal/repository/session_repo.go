// internal/repository/session_repo.go
package repository

import (
	"context"

	"goldvault/internal/domain"
)

// SessionRepository defines the interface for session data operations.
type SessionRepository interface {
	// CreateSession inserts a new session row.
	CreateSession(ctx context.Context, q DBExecutor, session *domain.Session) error
	// GetSessionByToken retrieves a session by its opaque token.
	GetSessionByToken(ctx context.Context, q DBExecutor, token string) (*domain.Session, error)
	// DeleteSessionByToken removes a session. Deleting an absent token is not an error.
	DeleteSessionByToken(ctx context.Context, q DBExecutor, token string) error
}
