// Package metrics exports run results as Prometheus metrics.
package metrics

import (
	"fmt"

	"fulfillment/internal/core/domain/model/report"
	"fulfillment/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "fulfillment"

var _ ports.RunHistory = (*RunHistory)(nil)

// RunHistory counts every recorded run and split report before handing it to next.
type RunHistory struct {
	next ports.RunHistory

	runs        *prometheus.CounterVec
	orders      *prometheus.CounterVec
	batchTags   *prometheus.CounterVec
	duration    prometheus.Histogram
	lastRun     prometheus.Gauge
	splitRuns   prometheus.Counter
	splitOrders prometheus.Gauge
	splitTags   *prometheus.CounterVec
}

// NewRunHistory registers the collectors on reg and decorates next.
func NewRunHistory(next ports.RunHistory, reg prometheus.Registerer) (*RunHistory, error) {
	h := &RunHistory{
		next: next,
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Triage runs recorded, by dry-run mode.",
		}, []string{"dry_run"}),
		orders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_total",
			Help:      "Order outcomes, by disposition.",
		}, []string{"disposition"}),
		batchTags: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batch_tags_total",
			Help:      "Batch tag writes, by result.",
		}, []string{"result"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of a triage run.",
			Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600},
		}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_finished_timestamp_seconds",
			Help:      "Unix time the latest triage run finished.",
		}),
		splitRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "split_runs_total",
			Help:      "Split-shipment reconciliations recorded.",
		}),
		splitOrders: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "split_orders_scanned",
			Help:      "Orders scanned by the latest split-shipment reconciliation.",
		}),
		splitTags: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "split_tag_changes_total",
			Help:      "Split-shipment tag changes, by action and result.",
		}, []string{"action", "result"}),
	}

	for _, c := range []prometheus.Collector{
		h.runs, h.orders, h.batchTags, h.duration, h.lastRun, h.splitRuns, h.splitOrders, h.splitTags,
	} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register collector: %w", err)
		}
	}

	// every disposition series exists from the start
	for _, d := range report.Dispositions() {
		h.orders.WithLabelValues(string(d))
	}

	return h, nil
}

func (h *RunHistory) Record(run report.Run) {
	h.runs.WithLabelValues(fmt.Sprint(run.DryRun)).Inc()
	for d, n := range run.Counts() {
		h.orders.WithLabelValues(string(d)).Add(float64(n))
	}
	for _, c := range run.BatchTags {
		h.batchTags.WithLabelValues(result(c)).Inc()
	}
	if !run.FinishedAt.IsZero() {
		h.duration.Observe(run.FinishedAt.Sub(run.StartedAt).Seconds())
		h.lastRun.Set(float64(run.FinishedAt.Unix()))
	}

	h.next.Record(run)
}

func (h *RunHistory) Latest() (report.Run, bool) {
	return h.next.Latest()
}

func (h *RunHistory) RecordSplit(r report.SplitReport) {
	h.splitRuns.Inc()
	h.splitOrders.Set(float64(r.Orders))
	for _, c := range r.Changes {
		h.splitTags.WithLabelValues(string(c.Action), result(c)).Inc()
	}

	h.next.RecordSplit(r)
}

func (h *RunHistory) LatestSplit() (report.SplitReport, bool) {
	return h.next.LatestSplit()
}

func result(c report.TagChange) string {
	if c.Error != "" {
		return "failed"
	}
	return "ok"
}
