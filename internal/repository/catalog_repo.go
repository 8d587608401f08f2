// internal/repository/catalog_repo.go
package repository

import (
	"context"

	"goldvault/internal/domain"
)

// CatalogRepository defines the interface for jewelry and store data.
// A storeID of "" addresses the shared catalog.
type CatalogRepository interface {
	// CountJewelry counts catalog items for a store scope.
	CountJewelry(ctx context.Context, q DBExecutor, storeID string) (int64, error)
	// InsertJewelryItems inserts catalog items.
	InsertJewelryItems(ctx context.Context, q DBExecutor, items []domain.JewelryItem) error
	// ListJewelry retrieves the shared catalog.
	ListJewelry(ctx context.Context, q DBExecutor, limit int) ([]domain.JewelryItem, error)
	// ListStoreProducts retrieves items scoped to a store.
	ListStoreProducts(ctx context.Context, q DBExecutor, storeID string, limit int) ([]domain.JewelryItem, error)

	// CountStores counts store records.
	CountStores(ctx context.Context, q DBExecutor) (int64, error)
	// InsertStores inserts store records.
	InsertStores(ctx context.Context, q DBExecutor, stores []domain.Store) error
	// ListStores retrieves all stores.
	ListStores(ctx context.Context, q DBExecutor, limit int) ([]domain.Store, error)
	// GetStoreByID retrieves a single store.
	GetStoreByID(ctx context.Context, q DBExecutor, storeID string) (*domain.Store, error)
}
