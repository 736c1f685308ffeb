package ports

import "fulfillment/internal/core/domain/model/report"

// RunHistory keeps the reports of recent runs for the status server.
// Implementations must be safe for concurrent use: the scheduler records while
// HTTP handlers read.
type RunHistory interface {
	Record(run report.Run)
	Latest() (report.Run, bool)
	RecordSplit(r report.SplitReport)
	LatestSplit() (report.SplitReport, bool)
}
