package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/report"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

type GetLatestSplitReportQueryHandler struct {
	history ports.RunHistory
}

func NewGetLatestSplitReportQueryHandler(history ports.RunHistory) GetLatestSplitReportQueryHandler {
	return GetLatestSplitReportQueryHandler{history: history}
}

// Handle returns errs.ObjectNotFoundError when no reconciliation has been recorded.
func (h GetLatestSplitReportQueryHandler) Handle(
	_ context.Context,
	query GetLatestSplitReportQuery,
) (report.SplitReport, error) {
	if err := query.Validate(); err != nil {
		return report.SplitReport{}, err
	}

	rep, ok := h.history.LatestSplit()
	if !ok {
		return report.SplitReport{}, errs.NewObjectNotFoundError("split report", "latest")
	}
	return rep, nil
}
