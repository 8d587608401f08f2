// internal/repository/goldprice_repo.go
package repository

import (
	"context"
	"time"

	"goldvault/internal/domain"
)

// GoldPriceRepository defines the interface for the append-only price
// snapshot history.
type GoldPriceRepository interface {
	// InsertSnapshot appends a price snapshot.
	InsertSnapshot(ctx context.Context, q DBExecutor, price *domain.GoldPrice) error
	// LatestSnapshot retrieves the most recent snapshot.
	LatestSnapshot(ctx context.Context, q DBExecutor) (*domain.GoldPrice, error)
	// SnapshotsSince retrieves snapshots at or after since, oldest first.
	SnapshotsSince(ctx context.Context, q DBExecutor, since time.Time, limit int) ([]domain.GoldPrice, error)
}
