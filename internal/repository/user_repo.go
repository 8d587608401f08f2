// internal/repository/user_repo.go
package repository

import (
	"context"

	"goldvault/internal/domain"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// CreateUser adds a new user to the database using the provided DBExecutor.
	CreateUser(ctx context.Context, q DBExecutor, user *domain.User) error
	// GetUserByID retrieves a user by their identifier using the provided DBExecutor.
	GetUserByID(ctx context.Context, q DBExecutor, userID string) (*domain.User, error)
	// GetUserByEmail retrieves a user by their unique email using the provided DBExecutor.
	GetUserByEmail(ctx context.Context, q DBExecutor, email string) (*domain.User, error)
}
