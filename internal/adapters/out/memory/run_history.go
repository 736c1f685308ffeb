// Package memory keeps run reports in process memory. Reports are lost on restart,
// which is acceptable because every decision is also on the platform as a tag.
package memory

import (
	"slices"
	"sync"

	"fulfillment/internal/core/domain/model/report"
	"fulfillment/internal/core/ports"
)

var _ ports.RunHistory = (*RunHistory)(nil)

// RunHistory holds the latest triage run and split reconciliation.
type RunHistory struct {
	mu    sync.RWMutex
	run   *report.Run
	split *report.SplitReport
}

func NewRunHistory() *RunHistory {
	return &RunHistory{}
}

func (h *RunHistory) Record(run report.Run) {
	run.Outcomes = slices.Clone(run.Outcomes)
	run.BatchTags = slices.Clone(run.BatchTags)

	h.mu.Lock()
	defer h.mu.Unlock()
	h.run = &run
}

// Latest returns a copy of the last recorded run.
func (h *RunHistory) Latest() (report.Run, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.run == nil {
		return report.Run{}, false
	}
	run := *h.run
	run.Outcomes = slices.Clone(run.Outcomes)
	run.BatchTags = slices.Clone(run.BatchTags)
	return run, true
}

func (h *RunHistory) RecordSplit(r report.SplitReport) {
	r.Changes = slices.Clone(r.Changes)

	h.mu.Lock()
	defer h.mu.Unlock()
	h.split = &r
}

func (h *RunHistory) LatestSplit() (report.SplitReport, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.split == nil {
		return report.SplitReport{}, false
	}
	r := *h.split
	r.Changes = slices.Clone(r.Changes)
	return r, true
}
