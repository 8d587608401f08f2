// internal/repository/postgres/goldprice_pg.go
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
)

// GoldPriceRepository implements repository.GoldPriceRepository for PostgreSQL.
type GoldPriceRepository struct{}

// NewGoldPriceRepository creates a new GoldPriceRepository.
func NewGoldPriceRepository(db *sqlx.DB) repository.GoldPriceRepository {
	return &GoldPriceRepository{}
}

// InsertSnapshot appends a price snapshot using the provided DBExecutor.
func (r *GoldPriceRepository) InsertSnapshot(ctx context.Context, q repository.DBExecutor, price *domain.GoldPrice) error {
	query := `INSERT INTO gold_prices (timestamp, price_24k, price_22k, price_18k, currency, source)
              VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := q.ExecContext(ctx, query, price.Timestamp, price.Price24K, price.Price22K, price.Price18K, price.Currency, price.Source)
	if err != nil {
		return fmt.Errorf("failed to insert gold price snapshot: %w", err)
	}
	return nil
}

// LatestSnapshot retrieves the most recent snapshot using the provided DBExecutor.
func (r *GoldPriceRepository) LatestSnapshot(ctx context.Context, q repository.DBExecutor) (*domain.GoldPrice, error) {
	var price domain.GoldPrice
	query := `SELECT timestamp, price_24k, price_22k, price_18k, currency, source
              FROM gold_prices ORDER BY timestamp DESC LIMIT 1`
	err := q.GetContext(ctx, &price, query)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get latest gold price snapshot: %w", err)
	}
	return &price, nil
}

// SnapshotsSince retrieves snapshots at or after since, oldest first.
func (r *GoldPriceRepository) SnapshotsSince(ctx context.Context, q repository.DBExecutor, since time.Time, limit int) ([]domain.GoldPrice, error) {
	prices := []domain.GoldPrice{}
	query := `SELECT timestamp, price_24k, price_22k, price_18k, currency, source
              FROM gold_prices WHERE timestamp >= $1 ORDER BY timestamp ASC LIMIT $2`
	if err := q.SelectContext(ctx, &prices, query, since, limit); err != nil {
		return nil, fmt.Errorf("failed to get gold price snapshots: %w", err)
	}
	return prices, nil
}
