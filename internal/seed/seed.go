// internal/seed/seed.go
//
// Fixture seeding runs once at startup instead of on cold reads, so two
// concurrent first reads can never double-insert fixtures.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"goldvault/internal/repository"
)

// EnsureSeeded idempotently inserts the fixture stores, the shared jewelry
// catalog, and the per-store product catalogs. Collections that already hold
// data are left untouched.
func EnsureSeeded(ctx context.Context, q repository.DBExecutor, catalog repository.CatalogRepository, logger *slog.Logger) error {
	count, err := catalog.CountJewelry(ctx, q, "")
	if err != nil {
		return fmt.Errorf("seed: failed to count jewelry: %w", err)
	}
	if count == 0 {
		if err := catalog.InsertJewelryItems(ctx, q, fixtureJewelry()); err != nil {
			return fmt.Errorf("seed: failed to insert jewelry fixtures: %w", err)
		}
		logger.Info("seeded shared jewelry catalog")
	}

	storeCount, err := catalog.CountStores(ctx, q)
	if err != nil {
		return fmt.Errorf("seed: failed to count stores: %w", err)
	}
	if storeCount > 0 {
		return nil
	}

	stores := fixtureStores()
	if err := catalog.InsertStores(ctx, q, stores); err != nil {
		return fmt.Errorf("seed: failed to insert store fixtures: %w", err)
	}
	for _, store := range stores {
		if err := catalog.InsertJewelryItems(ctx, q, fixtureStoreProducts(store)); err != nil {
			return fmt.Errorf("seed: failed to insert products for store %s: %w", store.StoreID, err)
		}
	}
	logger.Info("seeded stores and store products", "stores", len(stores))
	return nil
}
