// internal/repository/postgres/order_pg.go
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

// OrderRepository implements repository.OrderRepository for PostgreSQL.
type OrderRepository struct{}

// NewOrderRepository creates a new OrderRepository.
func NewOrderRepository(db *sqlx.DB) repository.OrderRepository {
	return &OrderRepository{}
}

// CreateOrder inserts a new order using the provided DBExecutor.
func (r *OrderRepository) CreateOrder(ctx context.Context, q repository.DBExecutor, order *domain.Order) error {
	query := `INSERT INTO orders (order_id, user_id, items, total_amount, status, created_at, tracking_info)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := q.ExecContext(ctx, query, order.OrderID, order.UserID, order.Items, order.TotalAmount, order.Status, order.CreatedAt, order.TrackingInfo)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// GetOrderByID retrieves an order scoped to its owner. An order owned by a
// different user is indistinguishable from a missing one.
func (r *OrderRepository) GetOrderByID(ctx context.Context, q repository.DBExecutor, orderID, userID string) (*domain.Order, error) {
	var order domain.Order
	query := `SELECT order_id, user_id, items, total_amount, status, created_at, tracking_info
              FROM orders WHERE order_id = $1 AND user_id = $2`
	err := q.GetContext(ctx, &order, query, orderID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get order %s: %w", orderID, err)
	}
	return &order, nil
}

// ListOrdersByUserID retrieves a user's orders, newest first.
func (r *OrderRepository) ListOrdersByUserID(ctx context.Context, q repository.DBExecutor, userID string, limit int) ([]domain.Order, error) {
	orders := []domain.Order{}
	query := `SELECT order_id, user_id, items, total_amount, status, created_at, tracking_info
              FROM orders WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`
	if err := q.SelectContext(ctx, &orders, query, userID, limit); err != nil {
		return nil, fmt.Errorf("failed to list orders for user %s: %w", userID, err)
	}
	return orders, nil
}
