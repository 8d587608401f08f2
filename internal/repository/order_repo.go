// internal/repository/order_repo.go
package repository

import (
	"context"

	"goldvault/internal/domain"
)

// OrderRepository defines the interface for order data operations.
type OrderRepository interface {
	// CreateOrder inserts a new order row.
	CreateOrder(ctx context.Context, q DBExecutor, order *domain.Order) error
	// GetOrderByID retrieves an order scoped to its owner.
	GetOrderByID(ctx context.Context, q DBExecutor, orderID, userID string) (*domain.Order, error)
	// ListOrdersByUserID retrieves a user's orders, newest first.
	ListOrdersByUserID(ctx context.Context, q DBExecutor, userID string, limit int) ([]domain.Order, error)
}
