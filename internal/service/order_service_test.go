// internal/service/order_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"goldvault/internal/domain"
	"goldvault/internal/util"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateOrder(t *testing.T) {
	userID := "user_abc"

	t.Run("BullionOrderUpdatesPortfolio", func(t *testing.T) {
		ctx := context.Background()
		mockDB := new(MockDBExecutor)
		mockOrders := new(MockOrderRepository)
		mockPortfolios := new(MockPortfolioRepository)

		svc := NewOrderService(mockDB, mockOrders, mockPortfolios)

		items := []domain.OrderItem{
			{ItemID: "bar_10g", ItemType: domain.ItemTypeGoldBar, Quantity: decimal.NewFromInt(10), PricePerUnit: decimal.NewFromInt(240), Total: decimal.NewFromInt(2400)},
			{ItemID: "bar_5g", ItemType: domain.ItemTypeGoldBar, Quantity: decimal.NewFromInt(5), PricePerUnit: decimal.NewFromInt(240), Total: decimal.NewFromInt(1200)},
		}
		total := decimal.NewFromInt(3600)

		mockOrders.On("CreateOrder", ctx, mockDB, mock.AnythingOfType("*domain.Order")).Return(nil).Once()
		mockPortfolios.On("AddHoldings", ctx, mockDB, userID, decimal.NewFromInt(15), total).Return(nil).Once()

		order, err := svc.CreateOrder(ctx, userID, items, total)

		assert.NoError(t, err)
		assert.NotNil(t, order)
		assert.Equal(t, userID, order.UserID)
		assert.Equal(t, domain.OrderStatusPending, order.Status)
		assert.Len(t, order.Items, 2)
		mock.AssertExpectationsForObjects(t, mockOrders, mockPortfolios)
	})

	t.Run("JewelryOnlyOrderLeavesPortfolioAlone", func(t *testing.T) {
		ctx := context.Background()
		mockDB := new(MockDBExecutor)
		mockOrders := new(MockOrderRepository)
		mockPortfolios := new(MockPortfolioRepository)

		svc := NewOrderService(mockDB, mockOrders, mockPortfolios)

		items := []domain.OrderItem{
			{ItemID: "ring_1", ItemType: domain.ItemTypeJewelry, Quantity: decimal.NewFromInt(1), Total: decimal.NewFromInt(800)},
		}

		mockOrders.On("CreateOrder", ctx, mockDB, mock.AnythingOfType("*domain.Order")).Return(nil).Once()

		order, err := svc.CreateOrder(ctx, userID, items, decimal.NewFromInt(800))

		assert.NoError(t, err)
		assert.NotNil(t, order)
		mockPortfolios.AssertNotCalled(t, "AddHoldings", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		mock.AssertExpectationsForObjects(t, mockOrders, mockPortfolios)
	})

	t.Run("OrderInsertFailure", func(t *testing.T) {
		ctx := context.Background()
		mockDB := new(MockDBExecutor)
		mockOrders := new(MockOrderRepository)
		mockPortfolios := new(MockPortfolioRepository)

		svc := NewOrderService(mockDB, mockOrders, mockPortfolios)

		mockOrders.On("CreateOrder", ctx, mockDB, mock.AnythingOfType("*domain.Order")).Return(errors.New("db error")).Once()

		order, err := svc.CreateOrder(ctx, userID, nil, decimal.Zero)

		assert.Error(t, err)
		assert.Nil(t, order)
		mockPortfolios.AssertNotCalled(t, "AddHoldings", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		mock.AssertExpectationsForObjects(t, mockOrders, mockPortfolios)
	})
}

func TestListOrders(t *testing.T) {
	ctx := context.Background()
	mockDB := new(MockDBExecutor)
	mockOrders := new(MockOrderRepository)

	svc := NewOrderService(mockDB, mockOrders, new(MockPortfolioRepository))

	orders := []domain.Order{*domain.NewOrder("user_abc", nil, decimal.NewFromInt(100))}
	mockOrders.On("ListOrdersByUserID", ctx, mockDB, "user_abc", maxListedOrders).Return(orders, nil).Once()

	got, err := svc.ListOrders(ctx, "user_abc")

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	mock.AssertExpectationsForObjects(t, mockOrders)
}

func TestGetOrder(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		ctx := context.Background()
		mockDB := new(MockDBExecutor)
		mockOrders := new(MockOrderRepository)

		svc := NewOrderService(mockDB, mockOrders, new(MockPortfolioRepository))

		order := domain.NewOrder("user_abc", nil, decimal.NewFromInt(100))
		mockOrders.On("GetOrderByID", ctx, mockDB, order.OrderID, "user_abc").Return(order, nil).Once()

		got, err := svc.GetOrder(ctx, "user_abc", order.OrderID)

		assert.NoError(t, err)
		assert.Equal(t, order.OrderID, got.OrderID)
		mock.AssertExpectationsForObjects(t, mockOrders)
	})

	t.Run("OtherUsersOrderIsNotFound", func(t *testing.T) {
		ctx := context.Background()
		mockDB := new(MockDBExecutor)
		mockOrders := new(MockOrderRepository)

		svc := NewOrderService(mockDB, mockOrders, new(MockPortfolioRepository))

		mockOrders.On("GetOrderByID", ctx, mockDB, "order_x", "user_abc").Return(nil, util.ErrNotFound).Once()

		got, err := svc.GetOrder(ctx, "user_abc", "order_x")

		assert.ErrorIs(t, err, util.ErrNotFound)
		assert.Nil(t, got)
		mock.AssertExpectationsForObjects(t, mockOrders)
	})
}
