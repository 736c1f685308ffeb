// Package jobs provides scheduled background tasks for the fulfillment triage service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. TriageJob - runs the batch driver over the configured stores
// 2. SplitJob - reconciles split-shipment tags across stores
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(
//		jobs.NewTriageJob(processHandler, processCmd, "@every 15m", logger),
//		jobs.NewSplitJob(splitHandler, splitCmd, "@hourly", logger),
//	)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Overlap
//
// A job never runs twice at once. Cron ticks that land during a run are skipped
// (cron.SkipIfStillRunning) and so are manual triggers.
//
// # Error Handling
//
// Failed runs are logged; the next tick tries again. Stopping a job cancels the
// context of the in-flight run and waits for it to return.
package jobs
