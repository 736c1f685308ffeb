// Package dryrun provides port decorators that log intended writes instead of sending them.
package dryrun

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

var _ ports.TagStore = (*TagStore)(nil)

// TagStore records the tag changes a run would make. No remote call is made.
type TagStore struct {
	logger *slog.Logger
}

func NewTagStore(logger *slog.Logger) *TagStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &TagStore{logger: logger.With("component", "dry_run")}
}

func (s *TagStore) AddTag(ctx context.Context, id order.ID, tag order.TagID) error {
	s.logger.InfoContext(ctx, "would add tag", "order_id", id, "tag", tag)
	return ctx.Err()
}

func (s *TagStore) RemoveTag(ctx context.Context, id order.ID, tag order.TagID) error {
	s.logger.InfoContext(ctx, "would remove tag", "order_id", id, "tag", tag)
	return ctx.Err()
}
