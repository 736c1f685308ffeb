package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/report"
)

// TriageHandler runs one triage pass.
type TriageHandler interface {
	Handle(ctx context.Context, cmd commands.ProcessOrdersCommand) (report.Run, error)
}

// TriageJob runs the batch driver over the configured stores on a schedule.
type TriageJob struct {
	*scheduledJob
	handler TriageHandler
	cmd     commands.ProcessOrdersCommand
}

func NewTriageJob(
	handler TriageHandler,
	cmd commands.ProcessOrdersCommand,
	schedule string,
	logger *slog.Logger,
) *TriageJob {
	j := &TriageJob{handler: handler, cmd: cmd}
	j.scheduledJob = newScheduledJob("triage_job", schedule, j.runOnce, logger)
	return j
}

func (j *TriageJob) runOnce(ctx context.Context) {
	run, err := j.handler.Handle(ctx, j.cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "triage run failed", "run_id", run.ID, "error", err)
		return
	}
	j.logger.InfoContext(ctx, "triage run finished", "run_id", run.ID, "orders", len(run.Outcomes))
}
