// internal/service/catalog_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"goldvault/internal/domain"
	"goldvault/internal/repository"
	"goldvault/internal/util"
)

// maxListedCatalog caps catalog listing queries.
const maxListedCatalog = 100

// CatalogService defines the interface for jewelry and store browsing.
// Fixture data is seeded at startup, so all read paths are plain queries.
type CatalogService interface {
	// ListJewelry returns the shared jewelry catalog.
	ListJewelry(ctx context.Context) ([]domain.JewelryItem, error)
	// ListStores returns all stores.
	ListStores(ctx context.Context) ([]domain.Store, error)
	// GetStore returns a single store.
	GetStore(ctx context.Context, storeID string) (*domain.Store, error)
	// ListStoreProducts returns the products of one store; the store must exist.
	ListStoreProducts(ctx context.Context, storeID string) ([]domain.JewelryItem, error)
}

// catalogService implements the CatalogService interface.
type catalogService struct {
	q       repository.DBExecutor
	catalog repository.CatalogRepository
}

// NewCatalogService creates a new instance of CatalogService.
func NewCatalogService(q repository.DBExecutor, catalog repository.CatalogRepository) CatalogService {
	return &catalogService{
		q:       q,
		catalog: catalog,
	}
}

func (s *catalogService) ListJewelry(ctx context.Context) ([]domain.JewelryItem, error) {
	items, err := s.catalog.ListJewelry(ctx, s.q, maxListedCatalog)
	if err != nil {
		return nil, fmt.Errorf("list jewelry: %w", err)
	}
	return items, nil
}

func (s *catalogService) ListStores(ctx context.Context) ([]domain.Store, error) {
	stores, err := s.catalog.ListStores(ctx, s.q, maxListedCatalog)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	return stores, nil
}

func (s *catalogService) GetStore(ctx context.Context, storeID string) (*domain.Store, error) {
	store, err := s.catalog.GetStoreByID(ctx, s.q, storeID)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return nil, util.ErrStoreNotFound
		}
		return nil, fmt.Errorf("get store %s: %w", storeID, err)
	}
	return store, nil
}

func (s *catalogService) ListStoreProducts(ctx context.Context, storeID string) ([]domain.JewelryItem, error) {
	if _, err := s.GetStore(ctx, storeID); err != nil {
		return nil, err
	}

	items, err := s.catalog.ListStoreProducts(ctx, s.q, storeID, maxListedCatalog)
	if err != nil {
		return nil, fmt.Errorf("list products for store %s: %w", storeID, err)
	}
	return items, nil
}
