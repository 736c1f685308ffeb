package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	triageJob *TriageJob
	splitJob  *SplitJob
}

// NewJobManager creates a job manager. splitJob may be nil when split reconciliation
// is not scheduled.
func NewJobManager(triageJob *TriageJob, splitJob *SplitJob) *JobManager {
	return &JobManager{triageJob: triageJob, splitJob: splitJob}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.triageJob.Start(); err != nil {
		return fmt.Errorf("failed to start triage job: %w", err)
	}

	if jm.splitJob != nil {
		if err := jm.splitJob.Start(); err != nil {
			// Stop already started jobs if this one fails
			jm.triageJob.Stop()
			return fmt.Errorf("failed to start split job: %w", err)
		}
	}

	return nil
}

// Trigger starts an immediate triage run.
func (jm *JobManager) Trigger() bool {
	return jm.triageJob.Trigger()
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.triageJob.Stop()
	if jm.splitJob != nil {
		jm.splitJob.Stop()
	}
}
