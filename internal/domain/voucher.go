// internal/domain/voucher.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherStatus defines the gifting state of a voucher.
type VoucherStatus string

const (
	VoucherStatusPending  VoucherStatus = "pending"
	VoucherStatusSent     VoucherStatus = "sent"
	VoucherStatusRedeemed VoucherStatus = "redeemed"
)

// Voucher is a gold gift voucher. Records are created pending and never
// mutated by any exposed operation.
type Voucher struct {
	VoucherID      string          `db:"voucher_id" json:"voucher_id"`
	UserID         string          `db:"user_id" json:"user_id"`
	Amount         decimal.Decimal `db:"amount" json:"amount"`
	RecipientName  string          `db:"recipient_name" json:"recipient_name"`
	RecipientPhone string          `db:"recipient_phone" json:"recipient_phone"`
	Status         VoucherStatus   `db:"status" json:"status"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
	RedeemedAt     *time.Time      `db:"redeemed_at" json:"redeemed_at"`
}

// NewVoucher creates a pending voucher with a generated identifier.
func NewVoucher(userID string, amount decimal.Decimal, recipientName, recipientPhone string) *Voucher {
	return &Voucher{
		VoucherID:      NewID("voucher"),
		UserID:         userID,
		Amount:         amount,
		RecipientName:  recipientName,
		RecipientPhone: recipientPhone,
		Status:         VoucherStatusPending,
		CreatedAt:      time.Now().UTC(),
	}
}
