// internal/service/voucher_service.go
package service

import (
	"context"
	"fmt"

	"goldvault/internal/domain"
	"goldvault/internal/repository"

	"github.com/shopspring/decimal"
)

// maxListedVouchers caps the voucher listing endpoint.
const maxListedVouchers = 100

// VoucherService defines the interface for voucher gifting.
type VoucherService interface {
	// CreateVoucher stores a pending voucher with the submitted fields taken
	// verbatim.
	CreateVoucher(ctx context.Context, userID string, amount decimal.Decimal, recipientName, recipientPhone string) (*domain.Voucher, error)
	// ListVouchers returns the caller's vouchers, newest first.
	ListVouchers(ctx context.Context, userID string) ([]domain.Voucher, error)
}

// voucherService implements the VoucherService interface.
type voucherService struct {
	q        repository.DBExecutor
	vouchers repository.VoucherRepository
}

// NewVoucherService creates a new instance of VoucherService.
func NewVoucherService(q repository.DBExecutor, vouchers repository.VoucherRepository) VoucherService {
	return &voucherService{
		q:        q,
		vouchers: vouchers,
	}
}

func (s *voucherService) CreateVoucher(ctx context.Context, userID string, amount decimal.Decimal, recipientName, recipientPhone string) (*domain.Voucher, error) {
	voucher := domain.NewVoucher(userID, amount, recipientName, recipientPhone)
	if err := s.vouchers.CreateVoucher(ctx, s.q, voucher); err != nil {
		return nil, fmt.Errorf("create voucher: %w", err)
	}
	return voucher, nil
}

func (s *voucherService) ListVouchers(ctx context.Context, userID string) ([]domain.Voucher, error) {
	vouchers, err := s.vouchers.ListVouchersByUserID(ctx, s.q, userID, maxListedVouchers)
	if err != nil {
		return nil, fmt.Errorf("list vouchers: %w", err)
	}
	return vouchers, nil
}
