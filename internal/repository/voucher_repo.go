// internal/repository/voucher_repo.go
package repository

import (
	"context"

	"goldvault/internal/domain"
)

// VoucherRepository defines the interface for voucher data operations.
type VoucherRepository interface {
	// CreateVoucher inserts a new voucher row.
	CreateVoucher(ctx context.Context, q DBExecutor, voucher *domain.Voucher) error
	// ListVouchersByUserID retrieves a user's vouchers, newest first.
	ListVouchersByUserID(ctx context.Context, q DBExecutor, userID string, limit int) ([]domain.Voucher, error)
}
