package jobs

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/robfig/cron/v3"
)

// scheduledJob runs one function on a cron schedule or on demand, never twice at once.
// Scheduled ticks that land during a run are skipped, as are manual triggers.
type scheduledJob struct {
	name     string
	schedule string
	run      func(ctx context.Context)
	cron     *cron.Cron
	logger   *slog.Logger

	running atomic.Bool
	manual  sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
}

func newScheduledJob(name, schedule string, run func(ctx context.Context), logger *slog.Logger) *scheduledJob {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", name)
	cronLogger := cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelInfo))

	ctx, cancel := context.WithCancel(context.Background())
	return &scheduledJob{
		name:     name,
		schedule: schedule,
		run:      run,
		cron:     cron.New(cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger))),
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (j *scheduledJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.runExclusive() }); err != nil {
		return err
	}
	j.cron.Start()
	j.logger.InfoContext(j.ctx, "job started", "schedule", j.schedule)
	return nil
}

// Trigger starts a run in the background and reports whether it did.
func (j *scheduledJob) Trigger() bool {
	if !j.running.CompareAndSwap(false, true) {
		return false
	}
	j.manual.Add(1)
	go func() {
		defer j.manual.Done()
		defer j.running.Store(false)
		j.invoke()
	}()
	return true
}

func (j *scheduledJob) runExclusive() {
	if !j.running.CompareAndSwap(false, true) {
		j.logger.InfoContext(j.ctx, "run skipped, previous run still in progress")
		return
	}
	defer j.running.Store(false)
	j.invoke()
}

func (j *scheduledJob) invoke() {
	if j.ctx.Err() != nil {
		return
	}
	j.run(j.ctx)
}

// Stop cancels the in-flight run and waits for it to return.
func (j *scheduledJob) Stop() {
	j.cancel()
	<-j.cron.Stop().Done()
	j.manual.Wait()
	j.logger.Info("job stopped")
}
