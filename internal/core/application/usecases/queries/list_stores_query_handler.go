package queries

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"fulfillment/internal/core/ports"
)

// ListStoresQueryHandler lists stores through the StoreDirectory port.
type ListStoresQueryHandler struct {
	stores ports.StoreDirectory
}

func NewListStoresQueryHandler(stores ports.StoreDirectory) ListStoresQueryHandler {
	return ListStoresQueryHandler{stores: stores}
}

// Handle returns stores sorted by ID.
func (h ListStoresQueryHandler) Handle(ctx context.Context, query ListStoresQuery) ([]ListStoresQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stores, err := h.stores.ListStores(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}

	resp := make([]ListStoresQueryResponse, 0, len(stores))
	for _, s := range stores {
		if query.ActiveOnly() && !s.Active {
			continue
		}
		resp = append(resp, ListStoresQueryResponse{
			ID:          s.ID,
			Name:        s.Name,
			Marketplace: s.Marketplace,
			Active:      s.Active,
		})
	}
	slices.SortFunc(resp, func(a, b ListStoresQueryResponse) int { return cmp.Compare(a.ID, b.ID) })
	return resp, nil
}
