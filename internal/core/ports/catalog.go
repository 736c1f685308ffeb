package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/catalog"
)

// ProductCatalog lists the platform's products.
type ProductCatalog interface {
	ListProducts(ctx context.Context) ([]catalog.Product, error)
}

// StoreDirectory lists the platform's stores.
type StoreDirectory interface {
	ListStores(ctx context.Context) ([]catalog.Store, error)
}
