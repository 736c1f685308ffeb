package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// DefaultPageSize is the largest page the platform serves.
const DefaultPageSize = 500

// OrderQuery selects orders to list.
type OrderQuery struct {
	StoreID  int64
	Status   order.Status
	PageSize int
}

// OrderRepository is the read side of the shipping platform's order store.
// Orders are never written back; tag changes go through TagStore.
type OrderRepository interface {
	// ListOrders returns every order matching q, following pagination until the last page.
	ListOrders(ctx context.Context, q OrderQuery) ([]*order.Order, error)

	// Get retrieves a single order. Returns an error wrapping errs.ErrObjectNotFound
	// when the platform has no such order.
	Get(ctx context.Context, id order.ID) (*order.Order, error)
}
