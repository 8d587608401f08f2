// internal/domain/order.go
package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus defines the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
)

// Line item types. Only bullion (gold bars) affects portfolio holdings.
const (
	ItemTypeGoldBar = "gold_bar"
	ItemTypeJewelry = "jewelry"
	ItemTypeVoucher = "voucher"
)

// OrderItem is a single order line. Items are stored verbatim as submitted;
// prices are not validated against the catalog.
type OrderItem struct {
	ItemID       string          `json:"item_id"`
	ItemType     string          `json:"item_type"`
	Name         string          `json:"name"`
	Quantity     decimal.Decimal `json:"quantity"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	Total        decimal.Decimal `json:"total"`
}

// OrderItems is stored as a single JSONB column.
type OrderItems []OrderItem

// Value implements driver.Valuer.
func (items OrderItems) Value() (driver.Value, error) {
	return json.Marshal(items)
}

// Scan implements sql.Scanner.
func (items *OrderItems) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, items)
	case string:
		return json.Unmarshal([]byte(v), items)
	case nil:
		*items = nil
		return nil
	default:
		return fmt.Errorf("unsupported type %T for OrderItems", src)
	}
}

// BullionGrams sums the quantity of all gold-bar lines.
func (items OrderItems) BullionGrams() decimal.Decimal {
	grams := decimal.Zero
	for _, item := range items {
		if item.ItemType == ItemTypeGoldBar {
			grams = grams.Add(item.Quantity)
		}
	}
	return grams
}

// Order is an append-only purchase record; no endpoint mutates items or total
// after creation.
type Order struct {
	OrderID      string          `db:"order_id" json:"order_id"`
	UserID       string          `db:"user_id" json:"user_id"`
	Items        OrderItems      `db:"items" json:"items"`
	TotalAmount  decimal.Decimal `db:"total_amount" json:"total_amount"`
	Status       OrderStatus     `db:"status" json:"status"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
	TrackingInfo *string         `db:"tracking_info" json:"tracking_info"`
}

// NewOrder creates a pending order with a generated identifier.
func NewOrder(userID string, items []OrderItem, totalAmount decimal.Decimal) *Order {
	return &Order{
		OrderID:     NewID("order"),
		UserID:      userID,
		Items:       items,
		TotalAmount: totalAmount,
		Status:      OrderStatusPending,
		CreatedAt:   time.Now().UTC(),
	}
}
