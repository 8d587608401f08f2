// internal/repository/postgres/session_pg.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"goldvault/internal/domain"
	"goldvault/internal/repository"
	"goldvault/internal/util"

	"github.com/jmoiron/sqlx"
)

// SessionRepository implements repository.SessionRepository for PostgreSQL.
type SessionRepository struct{}

// NewSessionRepository creates a new SessionRepository.
func NewSessionRepository(db *sqlx.DB) repository.SessionRepository {
	return &SessionRepository{}
}

// CreateSession inserts a new session using the provided DBExecutor.
func (r *SessionRepository) CreateSession(ctx context.Context, q repository.DBExecutor, session *domain.Session) error {
	query := `INSERT INTO sessions (session_token, user_id, expires_at, created_at)
              VALUES ($1, $2, $3, $4)`
	_, err := q.ExecContext(ctx, query, session.SessionToken, session.UserID, session.ExpiresAt, session.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// GetSessionByToken retrieves a session by token using the provided DBExecutor.
func (r *SessionRepository) GetSessionByToken(ctx context.Context, q repository.DBExecutor, token string) (*domain.Session, error) {
	var session domain.Session
	query := `SELECT session_token, user_id, expires_at, created_at FROM sessions WHERE session_token = $1`
	err := q.GetContext(ctx, &session, query, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &session, nil
}

// DeleteSessionByToken removes a session using the provided DBExecutor.
// Deleting an absent token is not an error.
func (r *SessionRepository) DeleteSessionByToken(ctx context.Context, q repository.DBExecutor, token string) error {
	query := `DELETE FROM sessions WHERE session_token = $1`
	if _, err := q.ExecContext(ctx, query, token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
