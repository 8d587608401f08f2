// internal/service/auth_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"goldvault/internal/domain"
	"goldvault/internal/repository"
	"goldvault/internal/upstream"
	"goldvault/internal/util"
)

// AuthService defines the interface for session-based authentication.
type AuthService interface {
	// ExchangeSession redeems an opaque external session id for a user and a
	// long-lived token. The user is upserted by email; a fresh user gets a
	// zeroed portfolio. Prior sessions for the user stay valid.
	ExchangeSession(ctx context.Context, sessionID string) (*domain.User, string, error)
	// Authenticate resolves a token to a user. Expired sessions are deleted
	// on first use (lazy expiry, no background sweep).
	Authenticate(ctx context.Context, token string) (*domain.User, error)
	// Logout deletes the session for the presented token.
	Logout(ctx context.Context, token string) error
}

// authService implements the AuthService interface.
type authService struct {
	q          repository.DBExecutor
	users      repository.UserRepository
	sessions   repository.SessionRepository
	portfolios repository.PortfolioRepository
	identity   upstream.IdentityProvider
	now        func() time.Time
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(
	q repository.DBExecutor,
	users repository.UserRepository,
	sessions repository.SessionRepository,
	portfolios repository.PortfolioRepository,
	identity upstream.IdentityProvider,
) AuthService {
	return &authService{
		q:          q,
		users:      users,
		sessions:   sessions,
		portfolios: portfolios,
		identity:   identity,
		now:        time.Now,
	}
}

func (s *authService) ExchangeSession(ctx context.Context, sessionID string) (*domain.User, string, error) {
	if sessionID == "" {
		return nil, "", fmt.Errorf("%w: session_id required", util.ErrInvalidInput)
	}

	data, err := s.identity.ExchangeSession(ctx, sessionID)
	if err != nil {
		return nil, "", fmt.Errorf("exchange session: %w", err)
	}

	user, err := s.users.GetUserByEmail(ctx, s.q, data.Email)
	switch {
	case err == nil:
		// Existing user, nothing to upsert.
	case errors.Is(err, util.ErrNotFound):
		user = domain.NewUser(data.Email, data.Name, data.Picture)
		if err := s.users.CreateUser(ctx, s.q, user); err != nil {
			return nil, "", fmt.Errorf("exchange session: failed to create user: %w", err)
		}
		// A portfolio is created exactly once, alongside the user.
		if err := s.portfolios.CreatePortfolio(ctx, s.q, domain.NewPortfolio(user.UserID)); err != nil {
			return nil, "", fmt.Errorf("exchange session: failed to create portfolio: %w", err)
		}
	default:
		return nil, "", fmt.Errorf("exchange session: failed to look up user: %w", err)
	}

	session := domain.NewSession(user.UserID, data.SessionToken, s.now().UTC())
	if err := s.sessions.CreateSession(ctx, s.q, session); err != nil {
		return nil, "", fmt.Errorf("exchange session: failed to create session: %w", err)
	}

	return user, session.SessionToken, nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	session, err := s.sessions.GetSessionByToken(ctx, s.q, token)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return nil, util.ErrUnauthorized
		}
		return nil, fmt.Errorf("authenticate: failed to look up session: %w", err)
	}

	if session.Expired(s.now()) {
		if err := s.sessions.DeleteSessionByToken(ctx, s.q, token); err != nil {
			return nil, fmt.Errorf("authenticate: failed to delete expired session: %w", err)
		}
		return nil, util.ErrUnauthorized
	}

	user, err := s.users.GetUserByID(ctx, s.q, session.UserID)
	if err != nil {
		// A session pointing at a missing user is treated as unauthenticated.
		if errors.Is(err, util.ErrNotFound) {
			return nil, util.ErrUnauthorized
		}
		return nil, fmt.Errorf("authenticate: failed to look up user: %w", err)
	}
	return user, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.DeleteSessionByToken(ctx, s.q, token); err != nil {
		return fmt.Errorf("logout: failed to delete session: %w", err)
	}
	return nil
}
