// internal/api/handler/mocks_test.go
package handler

import (
	"context"
	"io"
	"log/slog"

	"goldvault/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) ExchangeSession(ctx context.Context, sessionID string) (*domain.User, string, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// MockPriceService is a mock implementation of service.PriceService.
type MockPriceService struct {
	mock.Mock
}

func (m *MockPriceService) CurrentPrice(ctx context.Context) *domain.GoldPrice {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.GoldPrice)
}

func (m *MockPriceService) LivePrice(ctx context.Context) (*domain.LiveGoldPrice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LiveGoldPrice), args.Error(1)
}

func (m *MockPriceService) HistoricalPrices(ctx context.Context, days int) ([]domain.GoldPrice, error) {
	args := m.Called(ctx, days)
	return args.Get(0).([]domain.GoldPrice), args.Error(1)
}

// MockOrderService is a mock implementation of service.OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) CreateOrder(ctx context.Context, userID string, items []domain.OrderItem, totalAmount decimal.Decimal) (*domain.Order, error) {
	args := m.Called(ctx, userID, items, totalAmount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderService) ListOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderService) GetOrder(ctx context.Context, userID, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, userID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

// MockPortfolioService is a mock implementation of service.PortfolioService.
type MockPortfolioService struct {
	mock.Mock
}

func (m *MockPortfolioService) GetPortfolio(ctx context.Context, userID string) (*domain.Portfolio, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Portfolio), args.Error(1)
}

// MockCatalogService is a mock implementation of service.CatalogService.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListJewelry(ctx context.Context) ([]domain.JewelryItem, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.JewelryItem), args.Error(1)
}

func (m *MockCatalogService) ListStores(ctx context.Context) ([]domain.Store, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Store), args.Error(1)
}

func (m *MockCatalogService) GetStore(ctx context.Context, storeID string) (*domain.Store, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Store), args.Error(1)
}

func (m *MockCatalogService) ListStoreProducts(ctx context.Context, storeID string) ([]domain.JewelryItem, error) {
	args := m.Called(ctx, storeID)
	return args.Get(0).([]domain.JewelryItem), args.Error(1)
}
