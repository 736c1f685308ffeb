package queries

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrListStoresQueryIsNotConstructed = errors.New(
		"ListStoresQuery must be created via NewListStoresQuery constructor",
	)
)

// ListStoresQuery lists the platform's stores, used to discover store IDs for configuration.
type ListStoresQuery struct {
	activeOnly bool
	guard      guard.ConstructorGuard
}

func NewListStoresQuery(activeOnly bool) ListStoresQuery {
	return ListStoresQuery{activeOnly: activeOnly, guard: guard.NewConstructorGuard()}
}

func (q ListStoresQuery) ActiveOnly() bool {
	return q.activeOnly
}

// Validate ensures the query was created through the constructor.
func (q ListStoresQuery) Validate() error {
	return q.guard.Validate(ErrListStoresQueryIsNotConstructed)
}

// ListStoresQueryResponse is one store in the read model.
type ListStoresQueryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Marketplace string `json:"marketplace"`
	Active      bool   `json:"active"`
}
