package report_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Counts(t *testing.T) {
	t.Run("should count every disposition", func(t *testing.T) {
		run := report.NewRun(time.Now(), false, []int64{427096})
		run.Add(report.OrderOutcome{OrderID: 1, Disposition: report.Processed})
		run.Add(report.OrderOutcome{OrderID: 2, Disposition: report.EdgeCase, Reason: "merged"})
		run.Add(report.OrderOutcome{OrderID: 3, Disposition: report.Processed})

		counts := run.Counts()

		assert.Equal(t, 2, counts[report.Processed])
		assert.Equal(t, 1, counts[report.EdgeCase])
		assert.Equal(t, 0, counts[report.Failed])
		assert.Len(t, counts, len(report.Dispositions()))
	})
}

func TestRun_Summarize(t *testing.T) {
	start := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	run := report.NewRun(start, true, nil)
	run.Add(report.OrderOutcome{OrderID: 1, Disposition: report.Excluded})
	run.Finish(start.Add(time.Minute))

	s := run.Summarize()

	require.NoError(t, s.ID.Validate())
	assert.True(t, s.DryRun)
	assert.Equal(t, 1, s.Orders)
	assert.Equal(t, 1, s.Counts[report.Excluded])
	assert.Equal(t, start.Add(time.Minute), s.FinishedAt)
}

func TestOrderOutcome_JSON(t *testing.T) {
	o := report.OrderOutcome{OrderID: 5, OrderNumber: "HPS-5", Disposition: report.Failed}
	o.AddError(errors.New("add tag: timeout"))
	o.AddError(nil)

	data, err := json.Marshal(o)

	require.NoError(t, err)
	assert.JSONEq(t, `{"orderId":5,"orderNumber":"HPS-5","disposition":"failed","errors":["add tag: timeout"]}`, string(data))
}
