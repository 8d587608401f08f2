// internal/service/order_service.go
package service

import (
	"context"
	"fmt"

	"goldvault/internal/domain"
	"goldvault/internal/repository"

	"github.com/shopspring/decimal"
)

// maxListedOrders caps the order listing endpoint.
const maxListedOrders = 100

// OrderService defines the interface for the order ledger.
type OrderService interface {
	// CreateOrder stores a pending order with the submitted line items and
	// total taken verbatim. When the order contains bullion lines, the
	// owner's portfolio holdings and invested total are incremented. The two
	// writes are independent, not a unit of work.
	CreateOrder(ctx context.Context, userID string, items []domain.OrderItem, totalAmount decimal.Decimal) (*domain.Order, error)
	// ListOrders returns the caller's most recent orders.
	ListOrders(ctx context.Context, userID string) ([]domain.Order, error)
	// GetOrder returns a single order scoped to the caller.
	GetOrder(ctx context.Context, userID, orderID string) (*domain.Order, error)
}

// orderService implements the OrderService interface.
type orderService struct {
	q          repository.DBExecutor
	orders     repository.OrderRepository
	portfolios repository.PortfolioRepository
}

// NewOrderService creates a new instance of OrderService.
func NewOrderService(
	q repository.DBExecutor,
	orders repository.OrderRepository,
	portfolios repository.PortfolioRepository,
) OrderService {
	return &orderService{
		q:          q,
		orders:     orders,
		portfolios: portfolios,
	}
}

func (s *orderService) CreateOrder(ctx context.Context, userID string, items []domain.OrderItem, totalAmount decimal.Decimal) (*domain.Order, error) {
	order := domain.NewOrder(userID, items, totalAmount)
	if err := s.orders.CreateOrder(ctx, s.q, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	// Only bullion lines move the portfolio. The invested increment uses the
	// order total as submitted, with no cross-check against line subtotals.
	grams := order.Items.BullionGrams()
	if grams.IsPositive() {
		if err := s.portfolios.AddHoldings(ctx, s.q, userID, grams, totalAmount); err != nil {
			return nil, fmt.Errorf("create order: failed to update portfolio: %w", err)
		}
	}
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	orders, err := s.orders.ListOrdersByUserID(ctx, s.q, userID, maxListedOrders)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (s *orderService) GetOrder(ctx context.Context, userID, orderID string) (*domain.Order, error) {
	order, err := s.orders.GetOrderByID(ctx, s.q, orderID, userID)
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", orderID, err)
	}
	return order, nil
}
