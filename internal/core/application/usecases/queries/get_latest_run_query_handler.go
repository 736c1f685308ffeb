package queries

import (
	"context"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// GetLatestRunQueryHandler reads the latest run from RunHistory.
type GetLatestRunQueryHandler struct {
	history ports.RunHistory
}

func NewGetLatestRunQueryHandler(history ports.RunHistory) GetLatestRunQueryHandler {
	return GetLatestRunQueryHandler{history: history}
}

// Handle returns errs.ObjectNotFoundError when no run has been recorded.
func (h GetLatestRunQueryHandler) Handle(_ context.Context, query GetLatestRunQuery) (GetLatestRunQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetLatestRunQueryResponse{}, err
	}

	run, ok := h.history.Latest()
	if !ok {
		return GetLatestRunQueryResponse{}, errs.NewObjectNotFoundError("run", "latest")
	}

	resp := GetLatestRunQueryResponse{Summary: run.Summarize()}
	if query.WithOutcomes() {
		resp.Outcomes = run.Outcomes
		resp.BatchTags = run.BatchTags
	}
	return resp, nil
}
