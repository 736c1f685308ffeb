// Package queries contains read operations for retrieving system state.
// Queries never call the fulfillment platform's write endpoints.
package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/report"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetLatestRunQueryIsNotConstructed = errors.New(
		"GetLatestRunQuery must be created via NewGetLatestRunQuery constructor",
	)
)

// GetLatestRunQuery retrieves the report of the most recent triage run.
//
// Example:
//
//	query := NewGetLatestRunQuery(false)
//	handler := NewGetLatestRunQueryHandler(history)
//
//	resp, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // no run has finished yet
//	}
type GetLatestRunQuery struct {
	withOutcomes bool
	guard        guard.ConstructorGuard
}

// NewGetLatestRunQuery creates the query. withOutcomes controls whether the per-order
// outcomes are included next to the summary.
func NewGetLatestRunQuery(withOutcomes bool) GetLatestRunQuery {
	return GetLatestRunQuery{withOutcomes: withOutcomes, guard: guard.NewConstructorGuard()}
}

func (q GetLatestRunQuery) WithOutcomes() bool {
	return q.withOutcomes
}

// Validate ensures the query was created through the constructor.
func (q GetLatestRunQuery) Validate() error {
	return q.guard.Validate(ErrGetLatestRunQueryIsNotConstructed)
}

// GetLatestRunQueryResponse is the read model of a triage run.
type GetLatestRunQueryResponse struct {
	Summary   report.Summary        `json:"summary"`
	Outcomes  []report.OrderOutcome `json:"outcomes,omitempty"`
	BatchTags []report.TagChange    `json:"batchTags,omitempty"`
}
