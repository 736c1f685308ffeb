package queries

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetLatestSplitReportQueryIsNotConstructed = errors.New(
		"GetLatestSplitReportQuery must be created via NewGetLatestSplitReportQuery constructor",
	)
)

// GetLatestSplitReportQuery retrieves the most recent split-shipment reconciliation.
type GetLatestSplitReportQuery struct {
	guard guard.ConstructorGuard
}

func NewGetLatestSplitReportQuery() GetLatestSplitReportQuery {
	return GetLatestSplitReportQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetLatestSplitReportQuery) Validate() error {
	return q.guard.Validate(ErrGetLatestSplitReportQueryIsNotConstructed)
}
