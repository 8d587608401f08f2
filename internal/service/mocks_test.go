// internal/service/mocks_test.go
package service

import (
	"context"
	"database/sql"
	"time"

	"goldvault/internal/domain"
	"goldvault/internal/repository"
	"goldvault/internal/upstream"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockDBExecutor is a mock implementation of repository.DBExecutor.
type MockDBExecutor struct {
	mock.Mock
}

func (m *MockDBExecutor) GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	argsCalled := m.Called(ctx, dest, query, args)
	return argsCalled.Error(0)
}

func (m *MockDBExecutor) SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	argsCalled := m.Called(ctx, dest, query, args)
	return argsCalled.Error(0)
}

func (m *MockDBExecutor) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	argsCalled := m.Called(ctx, query, args)
	return argsCalled.Get(0).(sql.Result), argsCalled.Error(1)
}

func (m *MockDBExecutor) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	m.Called(ctx, query, args)
	return &sql.Row{}
}

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, q repository.DBExecutor, user *domain.User) error {
	args := m.Called(ctx, q, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, q repository.DBExecutor, userID string) (*domain.User, error) {
	args := m.Called(ctx, q, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, q repository.DBExecutor, email string) (*domain.User, error) {
	args := m.Called(ctx, q, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockSessionRepository is a mock implementation of repository.SessionRepository.
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) CreateSession(ctx context.Context, q repository.DBExecutor, session *domain.Session) error {
	args := m.Called(ctx, q, session)
	return args.Error(0)
}

func (m *MockSessionRepository) GetSessionByToken(ctx context.Context, q repository.DBExecutor, token string) (*domain.Session, error) {
	args := m.Called(ctx, q, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepository) DeleteSessionByToken(ctx context.Context, q repository.DBExecutor, token string) error {
	args := m.Called(ctx, q, token)
	return args.Error(0)
}

// MockGoldPriceRepository is a mock implementation of repository.GoldPriceRepository.
type MockGoldPriceRepository struct {
	mock.Mock
}

func (m *MockGoldPriceRepository) InsertSnapshot(ctx context.Context, q repository.DBExecutor, price *domain.GoldPrice) error {
	args := m.Called(ctx, q, price)
	return args.Error(0)
}

func (m *MockGoldPriceRepository) LatestSnapshot(ctx context.Context, q repository.DBExecutor) (*domain.GoldPrice, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GoldPrice), args.Error(1)
}

func (m *MockGoldPriceRepository) SnapshotsSince(ctx context.Context, q repository.DBExecutor, since time.Time, limit int) ([]domain.GoldPrice, error) {
	args := m.Called(ctx, q, since, limit)
	return args.Get(0).([]domain.GoldPrice), args.Error(1)
}

// MockOrderRepository is a mock implementation of repository.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) CreateOrder(ctx context.Context, q repository.DBExecutor, order *domain.Order) error {
	args := m.Called(ctx, q, order)
	return args.Error(0)
}

func (m *MockOrderRepository) GetOrderByID(ctx context.Context, q repository.DBExecutor, orderID, userID string) (*domain.Order, error) {
	args := m.Called(ctx, q, orderID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) ListOrdersByUserID(ctx context.Context, q repository.DBExecutor, userID string, limit int) ([]domain.Order, error) {
	args := m.Called(ctx, q, userID, limit)
	return args.Get(0).([]domain.Order), args.Error(1)
}

// MockPortfolioRepository is a mock implementation of repository.PortfolioRepository.
type MockPortfolioRepository struct {
	mock.Mock
}

func (m *MockPortfolioRepository) CreatePortfolio(ctx context.Context, q repository.DBExecutor, portfolio *domain.Portfolio) error {
	args := m.Called(ctx, q, portfolio)
	return args.Error(0)
}

func (m *MockPortfolioRepository) GetPortfolioByUserID(ctx context.Context, q repository.DBExecutor, userID string) (*domain.Portfolio, error) {
	args := m.Called(ctx, q, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Portfolio), args.Error(1)
}

func (m *MockPortfolioRepository) AddHoldings(ctx context.Context, q repository.DBExecutor, userID string, grams, invested decimal.Decimal) error {
	args := m.Called(ctx, q, userID, grams, invested)
	return args.Error(0)
}

func (m *MockPortfolioRepository) SetCurrentValue(ctx context.Context, q repository.DBExecutor, userID string, value decimal.Decimal, at time.Time) error {
	args := m.Called(ctx, q, userID, value, at)
	return args.Error(0)
}

// MockVoucherRepository is a mock implementation of repository.VoucherRepository.
type MockVoucherRepository struct {
	mock.Mock
}

func (m *MockVoucherRepository) CreateVoucher(ctx context.Context, q repository.DBExecutor, voucher *domain.Voucher) error {
	args := m.Called(ctx, q, voucher)
	return args.Error(0)
}

func (m *MockVoucherRepository) ListVouchersByUserID(ctx context.Context, q repository.DBExecutor, userID string, limit int) ([]domain.Voucher, error) {
	args := m.Called(ctx, q, userID, limit)
	return args.Get(0).([]domain.Voucher), args.Error(1)
}

// MockCatalogRepository is a mock implementation of repository.CatalogRepository.
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) CountJewelry(ctx context.Context, q repository.DBExecutor, storeID string) (int64, error) {
	args := m.Called(ctx, q, storeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogRepository) InsertJewelryItems(ctx context.Context, q repository.DBExecutor, items []domain.JewelryItem) error {
	args := m.Called(ctx, q, items)
	return args.Error(0)
}

func (m *MockCatalogRepository) ListJewelry(ctx context.Context, q repository.DBExecutor, limit int) ([]domain.JewelryItem, error) {
	args := m.Called(ctx, q, limit)
	return args.Get(0).([]domain.JewelryItem), args.Error(1)
}

func (m *MockCatalogRepository) ListStoreProducts(ctx context.Context, q repository.DBExecutor, storeID string, limit int) ([]domain.JewelryItem, error) {
	args := m.Called(ctx, q, storeID, limit)
	return args.Get(0).([]domain.JewelryItem), args.Error(1)
}

func (m *MockCatalogRepository) CountStores(ctx context.Context, q repository.DBExecutor) (int64, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogRepository) InsertStores(ctx context.Context, q repository.DBExecutor, stores []domain.Store) error {
	args := m.Called(ctx, q, stores)
	return args.Error(0)
}

func (m *MockCatalogRepository) ListStores(ctx context.Context, q repository.DBExecutor, limit int) ([]domain.Store, error) {
	args := m.Called(ctx, q, limit)
	return args.Get(0).([]domain.Store), args.Error(1)
}

func (m *MockCatalogRepository) GetStoreByID(ctx context.Context, q repository.DBExecutor, storeID string) (*domain.Store, error) {
	args := m.Called(ctx, q, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Store), args.Error(1)
}

// MockGoldFeed is a mock implementation of upstream.GoldFeed.
type MockGoldFeed struct {
	mock.Mock
}

func (m *MockGoldFeed) SpotPrice(ctx context.Context) (*upstream.Spot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*upstream.Spot), args.Error(1)
}

// MockRateFeed is a mock implementation of upstream.RateFeed.
type MockRateFeed struct {
	mock.Mock
}

func (m *MockRateFeed) Rate(ctx context.Context, currency string) (decimal.Decimal, error) {
	args := m.Called(ctx, currency)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// MockIdentityProvider is a mock implementation of upstream.IdentityProvider.
type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) ExchangeSession(ctx context.Context, sessionID string) (*upstream.SessionData, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*upstream.SessionData), args.Error(1)
}

// MockPriceCache is a mock implementation of cache.PriceCache.
type MockPriceCache struct {
	mock.Mock
}

func (m *MockPriceCache) Latest(ctx context.Context) (*domain.GoldPrice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GoldPrice), args.Error(1)
}

func (m *MockPriceCache) Store(ctx context.Context, price *domain.GoldPrice) error {
	args := m.Called(ctx, price)
	return args.Error(0)
}

func (m *MockPriceCache) Fresh(price *domain.GoldPrice) bool {
	args := m.Called(price)
	return args.Bool(0)
}

// MockPriceService is a mock implementation of PriceService.
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
