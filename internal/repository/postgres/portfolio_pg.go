// internal/repository/postgres/portfolio_pg.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"goldvault/internal/domain"
	"goldvault/internal/repository"
	"goldvault/internal/util"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// PortfolioRepository implements repository.PortfolioRepository for PostgreSQL.
type PortfolioRepository struct{}

// NewPortfolioRepository creates a new PortfolioRepository.
func NewPortfolioRepository(db *sqlx.DB) repository.PortfolioRepository {
	return &PortfolioRepository{}
}

// CreatePortfolio inserts a new portfolio using the provided DBExecutor.
func (r *PortfolioRepository) CreatePortfolio(ctx context.Context, q repository.DBExecutor, portfolio *domain.Portfolio) error {
	query := `INSERT INTO portfolios (user_id, gold_holdings, total_invested, current_value, updated_at)
              VALUES ($1, $2, $3, $4, $5)`
	_, err := q.ExecContext(ctx, query, portfolio.UserID, portfolio.GoldHoldings, portfolio.TotalInvested, portfolio.CurrentValue, portfolio.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create portfolio: %w", err)
	}
	return nil
}

// GetPortfolioByUserID retrieves a portfolio using the provided DBExecutor.
func (r *PortfolioRepository) GetPortfolioByUserID(ctx context.Context, q repository.DBExecutor, userID string) (*domain.Portfolio, error) {
	var portfolio domain.Portfolio
	query := `SELECT user_id, gold_holdings, total_invested, current_value, updated_at
              FROM portfolios WHERE user_id = $1`
	err := q.GetContext(ctx, &portfolio, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get portfolio for user %s: %w", userID, err)
	}
	return &portfolio, nil
}

// AddHoldings increments gram holdings and invested total in a single atomic
// statement, so concurrent orders never lose an increment.
func (r *PortfolioRepository) AddHoldings(ctx context.Context, q repository.DBExecutor, userID string, grams, invested decimal.Decimal) error {
	query := `UPDATE portfolios
              SET gold_holdings = gold_holdings + $1, total_invested = total_invested + $2, updated_at = $3
              WHERE user_id = $4`
	result, err := q.ExecContext(ctx, query, grams, invested, time.Now().UTC(), userID)
	if err != nil {
		return fmt.Errorf("failed to add holdings for user %s: %w", userID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after adding holdings for user %s: %w", userID, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("no rows affected when adding holdings for user %s, portfolio might not exist", userID)
	}
	return nil
}

// SetCurrentValue writes the recomputed valuation in a single statement.
func (r *PortfolioRepository) SetCurrentValue(ctx context.Context, q repository.DBExecutor, userID string, value decimal.Decimal, at time.Time) error {
	query := `UPDATE portfolios SET current_value = $1, updated_at = $2 WHERE user_id = $3`
	if _, err := q.ExecContext(ctx, query, value, at, userID); err != nil {
		return fmt.Errorf("failed to set current value for user %s: %w", userID, err)
	}
	return nil
}
