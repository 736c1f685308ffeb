package report

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// Run is the report of one triage pass.
type Run struct {
	ID         kernel.RunID   `json:"id"`
	StartedAt  time.Time      `json:"startedAt"`
	FinishedAt time.Time      `json:"finishedAt"`
	DryRun     bool           `json:"dryRun"`
	StoreIDs   []int64        `json:"storeIds"`
	Outcomes   []OrderOutcome `json:"outcomes"`
	BatchTags  []TagChange    `json:"batchTags,omitempty"`
}

// NewRun starts a run report.
func NewRun(startedAt time.Time, dryRun bool, storeIDs []int64) Run {
	return Run{
		ID:        kernel.NewRunID(),
		StartedAt: startedAt,
		DryRun:    dryRun,
		StoreIDs:  storeIDs,
		Outcomes:  []OrderOutcome{},
	}
}

// Add appends an outcome.
func (r *Run) Add(o OrderOutcome) {
	r.Outcomes = append(r.Outcomes, o)
}

// Finish stamps the finish time.
func (r *Run) Finish(at time.Time) {
	r.FinishedAt = at
}

// Counts returns the number of outcomes per disposition. Every disposition is present.
func (r Run) Counts() map[Disposition]int {
	counts := make(map[Disposition]int, len(Dispositions()))
	for _, d := range Dispositions() {
		counts[d] = 0
	}
	for _, o := range r.Outcomes {
		counts[o.Disposition]++
	}
	return counts
}

// Summary is a compact view of a run for logs and the status endpoint.
type Summary struct {
	ID         kernel.RunID        `json:"id"`
	StartedAt  time.Time           `json:"startedAt"`
	FinishedAt time.Time           `json:"finishedAt"`
	DryRun     bool                `json:"dryRun"`
	Orders     int                 `json:"orders"`
	Counts     map[Disposition]int `json:"counts"`
	BatchTags  int                 `json:"batchTags"`
}

// Summarize builds the run's Summary.
func (r Run) Summarize() Summary {
	return Summary{
		ID:         r.ID,
		StartedAt:  r.StartedAt,
		FinishedAt: r.FinishedAt,
		DryRun:     r.DryRun,
		Orders:     len(r.Outcomes),
		Counts:     r.Counts(),
		BatchTags:  len(r.BatchTags),
	}
}

// SplitReport is the result of one split-shipment reconciliation.
type SplitReport struct {
	ID         kernel.RunID `json:"id"`
	StartedAt  time.Time    `json:"startedAt"`
	FinishedAt time.Time    `json:"finishedAt"`
	DryRun     bool         `json:"dryRun"`
	Orders     int          `json:"orders"`
	Changes    []TagChange  `json:"changes"`
}
