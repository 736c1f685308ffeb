package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// TagStore writes order tags on the platform. Both operations are idempotent on the
// platform side, but callers should still check the order's tag set first.
type TagStore interface {
	AddTag(ctx context.Context, id order.ID, tag order.TagID) error
	RemoveTag(ctx context.Context, id order.ID, tag order.TagID) error
}
