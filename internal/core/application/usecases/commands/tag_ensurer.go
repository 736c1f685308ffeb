package commands

import (
	"context"
	"fmt"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// TagEnsurer applies tags idempotently. It checks the order's own tag set before calling
// the platform, so ensuring a tag the order already has costs nothing.
//
// Example:
//
//	ensurer := NewTagEnsurer(tagStore)
//	added, err := ensurer.Ensure(ctx, o, processedTag)
//	if err != nil {
//	    // the platform rejected the call; o is unchanged
//	}
type TagEnsurer struct {
	tags ports.TagStore
}

// NewTagEnsurer returns a TagEnsurer writing through tags.
func NewTagEnsurer(tags ports.TagStore) TagEnsurer {
	return TagEnsurer{tags: tags}
}

// Ensure makes sure o carries tag. It reports whether a remote call was made.
// The tag is recorded on o only after the platform accepted it.
func (e TagEnsurer) Ensure(ctx context.Context, o *order.Order, tag order.TagID) (bool, error) {
	if o.HasTag(tag) {
		return false, nil
	}
	if err := e.tags.AddTag(ctx, o.ID(), tag); err != nil {
		return false, fmt.Errorf("add tag %d to order %d: %w", tag, o.ID(), err)
	}
	o.AddTag(tag)
	return true, nil
}

// Clear makes sure o does not carry tag. It reports whether a remote call was made.
func (e TagEnsurer) Clear(ctx context.Context, o *order.Order, tag order.TagID) (bool, error) {
	if !o.HasTag(tag) {
		return false, nil
	}
	if err := e.tags.RemoveTag(ctx, o.ID(), tag); err != nil {
		return false, fmt.Errorf("remove tag %d from order %d: %w", tag, o.ID(), err)
	}
	o.RemoveTag(tag)
	return true, nil
}
