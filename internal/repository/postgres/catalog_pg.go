// internal/repository/postgres/catalog_pg.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"goldvault/internal/domain"
	"goldvault/internal/repository"
	"goldvault/internal/util"

	"github.com/jmoiron/sqlx"
)

// CatalogRepository implements repository.CatalogRepository for PostgreSQL.
type CatalogRepository struct{}

// NewCatalogRepository creates a new CatalogRepository.
func NewCatalogRepository(db *sqlx.DB) repository.CatalogRepository {
	return &CatalogRepository{}
}

// CountJewelry counts catalog items for a store scope ("" = shared catalog).
func (r *CatalogRepository) CountJewelry(ctx context.Context, q repository.DBExecutor, storeID string) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM jewelry_items WHERE store_id = $1`
	if err := q.GetContext(ctx, &count, query, storeID); err != nil {
		return 0, fmt.Errorf("failed to count jewelry items: %w", err)
	}
	return count, nil
}

// InsertJewelryItems inserts catalog items using the provided DBExecutor.
func (r *CatalogRepository) InsertJewelryItems(ctx context.Context, q repository.DBExecutor, items []domain.JewelryItem) error {
	query := `INSERT INTO jewelry_items (item_id, store_id, store_name, name, name_ar, description, description_ar,
                                         price, weight_grams, karat, category, image_url, in_stock, rating)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	for _, item := range items {
		_, err := q.ExecContext(ctx, query, item.ItemID, item.StoreID, item.StoreName, item.Name, item.NameAr,
			item.Description, item.DescriptionAr, item.Price, item.WeightGrams, item.Karat, item.Category,
			item.ImageURL, item.InStock, item.Rating)
		if err != nil {
			return fmt.Errorf("failed to insert jewelry item %s: %w", item.ItemID, err)
		}
	}
	return nil
}

// ListJewelry retrieves the shared catalog.
func (r *CatalogRepository) ListJewelry(ctx context.Context, q repository.DBExecutor, limit int) ([]domain.JewelryItem, error) {
	items := []domain.JewelryItem{}
	query := `SELECT item_id, store_id, store_name, name, name_ar, description, description_ar,
                     price, weight_grams, karat, category, image_url, in_stock, rating
              FROM jewelry_items WHERE store_id = '' ORDER BY item_id LIMIT $1`
	if err := q.SelectContext(ctx, &items, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list jewelry items: %w", err)
	}
	return items, nil
}

// ListStoreProducts retrieves items scoped to a store.
func (r *CatalogRepository) ListStoreProducts(ctx context.Context, q repository.DBExecutor, storeID string, limit int) ([]domain.JewelryItem, error) {
	items := []domain.JewelryItem{}
	query := `SELECT item_id, store_id, store_name, name, name_ar, description, description_ar,
                     price, weight_grams, karat, category, image_url, in_stock, rating
              FROM jewelry_items WHERE store_id = $1 ORDER BY item_id LIMIT $2`
	if err := q.SelectContext(ctx, &items, query, storeID, limit); err != nil {
		return nil, fmt.Errorf("failed to list products for store %s: %w", storeID, err)
	}
	return items, nil
}

// CountStores counts store records.
func (r *CatalogRepository) CountStores(ctx context.Context, q repository.DBExecutor) (int64, error) {
	var count int64
	if err := q.GetContext(ctx, &count, `SELECT COUNT(*) FROM stores`); err != nil {
		return 0, fmt.Errorf("failed to count stores: %w", err)
	}
	return count, nil
}

// InsertStores inserts store records using the provided DBExecutor.
func (r *CatalogRepository) InsertStores(ctx context.Context, q repository.DBExecutor, stores []domain.Store) error {
	query := `INSERT INTO stores (store_id, name, name_ar, description, description_ar, logo_url,
                                  rating, total_products, location, phone, is_verified)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	for _, store := range stores {
		_, err := q.ExecContext(ctx, query, store.StoreID, store.Name, store.NameAr, store.Description,
			store.DescriptionAr, store.LogoURL, store.Rating, store.TotalProducts, store.Location,
			store.Phone, store.IsVerified)
		if err != nil {
			return fmt.Errorf("failed to insert store %s: %w", store.StoreID, err)
		}
	}
	return nil
}

// ListStores retrieves all stores.
func (r *CatalogRepository) ListStores(ctx context.Context, q repository.DBExecutor, limit int) ([]domain.Store, error) {
	stores := []domain.Store{}
	query := `SELECT store_id, name, name_ar, description, description_ar, logo_url,
                     rating, total_products, location, phone, is_verified
              FROM stores ORDER BY store_id LIMIT $1`
	if err := q.SelectContext(ctx, &stores, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}
	return stores, nil
}

// GetStoreByID retrieves a single store.
func (r *CatalogRepository) GetStoreByID(ctx context.Context, q repository.DBExecutor, storeID string) (*domain.Store, error) {
	var store domain.Store
	query := `SELECT store_id, name, name_ar, description, description_ar, logo_url,
                     rating, total_products, location, phone, is_verified
              FROM stores WHERE store_id = $1`
	err := q.GetContext(ctx, &store, query, storeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get store %s: %w", storeID, err)
	}
	return &store, nil
}
