// internal/repository/portfolio_repo.go
package repository

import (
	"context"
	"time"

	"goldvault/internal/domain"

	"github.com/shopspring/decimal"
)

// PortfolioRepository defines the interface for portfolio data operations.
// Both mutations are single atomic statements at the storage layer, so
// concurrent increments never lose updates.
type PortfolioRepository interface {
	// CreatePortfolio inserts a new portfolio row.
	CreatePortfolio(ctx context.Context, q DBExecutor, portfolio *domain.Portfolio) error
	// GetPortfolioByUserID retrieves a user's portfolio.
	GetPortfolioByUserID(ctx context.Context, q DBExecutor, userID string) (*domain.Portfolio, error)
	// AddHoldings atomically increments gram holdings and invested total.
	AddHoldings(ctx context.Context, q DBExecutor, userID string, grams, invested decimal.Decimal) error
	// SetCurrentValue atomically writes the recomputed valuation.
	SetCurrentValue(ctx context.Context, q DBExecutor, userID string, value decimal.Decimal, at time.Time) error
}
