// internal/repository/postgres/voucher_pg.go
package postgres

import (
	"context"
	"fmt"

	"goldvault/internal/domain"
	"goldvault/internal/repository"

	"github.com/jmoiron/sqlx"
)

// VoucherRepository implements repository.VoucherRepository for PostgreSQL.
type VoucherRepository struct{}

// NewVoucherRepository creates a new VoucherRepository.
func NewVoucherRepository(db *sqlx.DB) repository.VoucherRepository {
	return &VoucherRepository{}
}

// CreateVoucher inserts a new voucher using the provided DBExecutor.
func (r *VoucherRepository) CreateVoucher(ctx context.Context, q repository.DBExecutor, voucher *domain.Voucher) error {
	query := `INSERT INTO vouchers (voucher_id, user_id, amount, recipient_name, recipient_phone, status, created_at, redeemed_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := q.ExecContext(ctx, query, voucher.VoucherID, voucher.UserID, voucher.Amount, voucher.RecipientName, voucher.RecipientPhone, voucher.Status, voucher.CreatedAt, voucher.RedeemedAt)
	if err != nil {
		return fmt.Errorf("failed to create voucher: %w", err)
	}
	return nil
}

// ListVouchersByUserID retrieves a user's vouchers, newest first.
func (r *VoucherRepository) ListVouchersByUserID(ctx context.Context, q repository.DBExecutor, userID string, limit int) ([]domain.Voucher, error) {
	vouchers := []domain.Voucher{}
	query := `SELECT voucher_id, user_id, amount, recipient_name, recipient_phone, status, created_at, redeemed_at
              FROM vouchers WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`
	if err := q.SelectContext(ctx, &vouchers, query, userID, limit); err != nil {
		return nil, fmt.Errorf("failed to list vouchers for user %s: %w", userID, err)
	}
	return vouchers, nil
}
