package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/report"
)

// SplitHandler runs one split-shipment reconciliation.
type SplitHandler interface {
	Handle(ctx context.Context, cmd commands.ReconcileSplitShipmentsCommand) (report.SplitReport, error)
}

// SplitJob reconciles split-shipment tags on a schedule.
type SplitJob struct {
	*scheduledJob
	handler SplitHandler
	cmd     commands.ReconcileSplitShipmentsCommand
}

func NewSplitJob(
	handler SplitHandler,
	cmd commands.ReconcileSplitShipmentsCommand,
	schedule string,
	logger *slog.Logger,
) *SplitJob {
	j := &SplitJob{handler: handler, cmd: cmd}
	j.scheduledJob = newScheduledJob("split_job", schedule, j.runOnce, logger)
	return j
}

func (j *SplitJob) runOnce(ctx context.Context) {
	rep, err := j.handler.Handle(ctx, j.cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "split reconciliation failed", "error", err)
		return
	}
	j.logger.InfoContext(ctx, "split reconciliation finished", "orders", rep.Orders, "changes", len(rep.Changes))
}
