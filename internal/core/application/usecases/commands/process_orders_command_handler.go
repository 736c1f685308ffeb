package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/report"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// ReasonExcludedChannel labels orders skipped because of a sales-channel tag.
const ReasonExcludedChannel = "excluded_channel"

// TriageTags are the tags the batch driver reads and writes.
type TriageTags struct {
	EdgeCase  order.TagID
	Processed order.TagID
	Excluded  []order.TagID
	Names     map[order.TagID]string
}

// Name returns the readable name of tag, or its number.
func (t TriageTags) Name(tag order.TagID) string {
	if n, ok := t.Names[tag]; ok {
		return n
	}
	return fmt.Sprintf("%d", tag)
}

// ProcessOrdersDeps wires the batch driver.
// BatchTags and History are optional.
type ProcessOrdersDeps struct {
	Orders     ports.OrderRepository
	Tags       ports.TagStore
	Classifier services.Classifier
	Estimator  services.PackagingEstimator
	Selector   services.RateSelector
	Billing    services.BillingAssigner
	TriageTags TriageTags
	BatchTags  *AssignBatchTagsCommandHandler
	History    ports.RunHistory
	Logger     *slog.Logger
	Now        func() time.Time
}

// ProcessOrdersCommandHandler is the batch driver. For each store it lists the
// awaiting-shipment orders, then triages them one at a time:
//
//  1. orders carrying an excluded-channel tag are skipped
//  2. the Classifier decides routine, edge case or already processed
//  3. edge cases get the edge-case tag (unless they already carry it)
//  4. routine orders are estimated, rate-shopped, assigned billing, and tagged processed
//
// A failing tag call or carrier never stops the batch; it is recorded on the order's
// outcome. Only failing to list a store's orders aborts the run.
//
// Example:
//
//	handler, _ := NewProcessOrdersCommandHandler(deps)
//	cmd, _ := NewProcessOrdersCommand([]int64{427096}, false)
//	run, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("triage run failed: %w", err)
//	}
//	fmt.Println(run.Counts())
type ProcessOrdersCommandHandler struct {
	deps   ProcessOrdersDeps
	tags   TagEnsurer
	logger *slog.Logger
	now    func() time.Time
}

// NewProcessOrdersCommandHandler validates deps and returns the handler.
func NewProcessOrdersCommandHandler(deps ProcessOrdersDeps) (*ProcessOrdersCommandHandler, error) {
	var errList []error
	if deps.Orders == nil {
		errList = append(errList, errors.New("order repository is required"))
	}
	if deps.Tags == nil {
		errList = append(errList, errors.New("tag store is required"))
	}
	errList = append(errList, deps.TriageTags.EdgeCase.Validate(), deps.TriageTags.Processed.Validate())
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	return &ProcessOrdersCommandHandler{
		deps:   deps,
		tags:   NewTagEnsurer(deps.Tags),
		logger: logger.With("component", "batch_driver"),
		now:    now,
	}, nil
}

// Handle runs one triage pass and returns its report. The report is returned, and
// recorded in the history, even when the run ends with an error.
func (h *ProcessOrdersCommandHandler) Handle(ctx context.Context, cmd ProcessOrdersCommand) (report.Run, error) {
	if err := cmd.Validate(); err != nil {
		return report.Run{}, err
	}

	run := report.NewRun(h.now(), cmd.DryRun(), cmd.StoreIDs())
	logger := h.logger.With("run_id", run.ID.String())
	logger.Info("triage run started", "stores", cmd.StoreIDs(), "dry_run", cmd.DryRun())

	err := h.process(ctx, logger, cmd, &run)

	run.Finish(h.now())
	if h.deps.History != nil {
		h.deps.History.Record(run)
	}

	counts := run.Counts()
	logger.Info("triage run finished",
		"orders", len(run.Outcomes),
		"processed", counts[report.Processed],
		"edge_case", counts[report.EdgeCase],
		"already_processed", counts[report.AlreadyProcessed],
		"excluded", counts[report.Excluded],
		"failed", counts[report.Failed],
		"batch_tags", len(run.BatchTags),
		"duration", run.FinishedAt.Sub(run.StartedAt).String(),
	)

	return run, err
}

func (h *ProcessOrdersCommandHandler) process(
	ctx context.Context,
	logger *slog.Logger,
	cmd ProcessOrdersCommand,
	run *report.Run,
) error {
	all, err := h.listOrders(ctx, logger, cmd.StoreIDs())
	if err != nil {
		return err
	}

	eligible := make([]*order.Order, 0, len(all))
	for _, o := range all {
		if err = ctx.Err(); err != nil {
			return err
		}

		if o.HasAnyTag(h.deps.TriageTags.Excluded...) {
			outcome := newOutcome(o, report.Excluded)
			outcome.Reason = ReasonExcludedChannel
			h.record(logger, run, outcome)
			continue
		}
		eligible = append(eligible, o)

		h.record(logger, run, h.triage(ctx, logger, o))
	}

	if h.deps.BatchTags == nil || len(eligible) == 0 {
		return nil
	}

	batchCmd, err := NewAssignBatchTagsCommand(eligible)
	if err != nil {
		return err
	}
	changes, err := h.deps.BatchTags.Handle(ctx, batchCmd)
	run.BatchTags = changes
	if err != nil {
		logger.Warn("batch tagging skipped", "error", err)
	}
	return nil
}

func (h *ProcessOrdersCommandHandler) listOrders(
	ctx context.Context,
	logger *slog.Logger,
	storeIDs []int64,
) ([]*order.Order, error) {
	var all []*order.Order
	for _, storeID := range storeIDs {
		orders, err := h.deps.Orders.ListOrders(ctx, ports.OrderQuery{
			StoreID:  storeID,
			Status:   order.AwaitingShipment,
			PageSize: ports.DefaultPageSize,
		})
		if err != nil {
			return nil, fmt.Errorf("list orders for store %d: %w", storeID, err)
		}
		logger.Info("orders fetched", "store_id", storeID, "count", len(orders))
		all = append(all, orders...)
	}
	return all, nil
}

// triage decides a single order. It never returns an error: every problem ends up
// on the outcome.
func (h *ProcessOrdersCommandHandler) triage(ctx context.Context, logger *slog.Logger, o *order.Order) report.OrderOutcome {
	c := h.deps.Classifier.Classify(o)

	switch {
	case c.Kind == services.AlreadyProcessed:
		return newOutcome(o, report.AlreadyProcessed)
	case c.IsEdgeCase():
		return h.markEdgeCase(ctx, o, c.Reason, c.RequiresEdgeTag())
	case o.HasTag(h.deps.TriageTags.Processed):
		// priority orders skip the classifier's processed check
		return newOutcome(o, report.AlreadyProcessed)
	}

	return h.processRoutine(ctx, logger, o)
}

func (h *ProcessOrdersCommandHandler) processRoutine(
	ctx context.Context,
	logger *slog.Logger,
	o *order.Order,
) report.OrderOutcome {
	outcome := newOutcome(o, report.Processed)

	estimate, err := h.deps.Estimator.Estimate(o.Items())
	if errors.Is(err, services.ErrNothingToPack) {
		return h.markEdgeCase(ctx, o, services.ReasonNoPackableItems, true)
	}
	if err == nil {
		err = o.SetPackage(estimate.Weight, estimate.Dimensions)
	}
	if err != nil {
		outcome.Disposition = report.Failed
		outcome.AddError(fmt.Errorf("estimate package: %w", err))
		return outcome
	}
	outcome.Box = estimate.Box.String()
	outcome.WeightOz = estimate.Weight.Ounces()

	sel, err := h.deps.Selector.SelectRate(ctx, o)
	for _, a := range sel.Attempts {
		if a.Err != nil {
			logger.Warn("carrier rating failed", "order_id", o.ID(), "carrier", a.Carrier, "error", a.Err)
			outcome.AddError(fmt.Errorf("rates from %s: %w", a.Carrier, a.Err))
		}
	}
	if errors.Is(err, services.ErrNoRatesFound) {
		edge := h.markEdgeCase(ctx, o, services.ReasonNoRates, true)
		edge.Box, edge.WeightOz = outcome.Box, outcome.WeightOz
		edge.Errors = append(outcome.Errors, edge.Errors...)
		return edge
	}
	if err == nil {
		err = o.AssignRate(sel.Quote.CarrierCode, sel.Quote.ServiceCode)
	}
	if err != nil {
		outcome.Disposition = report.Failed
		outcome.AddError(fmt.Errorf("select rate: %w", err))
		return outcome
	}
	outcome.Rate = &report.Rate{
		CarrierCode: sel.Quote.CarrierCode,
		ServiceCode: sel.Quote.ServiceCode,
		ServiceName: sel.Quote.ServiceName,
		Cost:        sel.Quote.ShipmentCost,
		Rule:        sel.Rule,
	}

	if acct, ok := h.deps.Billing.Assign(o.CarrierCode()); ok {
		if err = o.AssignBilling(acct); err != nil {
			outcome.AddError(fmt.Errorf("assign billing: %w", err))
		} else {
			outcome.Billing = &acct
		}
	} else {
		logger.Warn("no billing account for carrier", "order_id", o.ID(), "carrier", o.CarrierCode())
	}

	added, err := h.tags.Ensure(ctx, o, h.deps.TriageTags.Processed)
	if err != nil {
		outcome.Disposition = report.Failed
		outcome.AddError(err)
		return outcome
	}
	if added {
		outcome.TagsApplied = append(outcome.TagsApplied, h.deps.TriageTags.Processed)
	}
	return outcome
}

func (h *ProcessOrdersCommandHandler) markEdgeCase(
	ctx context.Context,
	o *order.Order,
	reason services.Reason,
	tag bool,
) report.OrderOutcome {
	outcome := newOutcome(o, report.EdgeCase)
	outcome.Reason = string(reason)
	if !tag {
		return outcome
	}

	added, err := h.tags.Ensure(ctx, o, h.deps.TriageTags.EdgeCase)
	if err != nil {
		outcome.Disposition = report.Failed
		outcome.AddError(err)
		return outcome
	}
	if added {
		outcome.TagsApplied = append(outcome.TagsApplied, h.deps.TriageTags.EdgeCase)
	}
	return outcome
}

func (h *ProcessOrdersCommandHandler) record(logger *slog.Logger, run *report.Run, outcome report.OrderOutcome) {
	run.Add(outcome)

	attrs := []any{
		"order_id", outcome.OrderID,
		"order_number", outcome.OrderNumber,
		"disposition", outcome.Disposition,
	}
	if outcome.Reason != "" {
		attrs = append(attrs, "reason", outcome.Reason)
	}
	if outcome.Box != "" {
		attrs = append(attrs, "box", outcome.Box, "weight_oz", outcome.WeightOz)
	}
	if outcome.Rate != nil {
		attrs = append(attrs,
			"carrier", outcome.Rate.CarrierCode,
			"service", outcome.Rate.ServiceCode,
			"cost", outcome.Rate.Cost,
			"rule", outcome.Rate.Rule,
		)
	}
	for _, tag := range outcome.TagsApplied {
		attrs = append(attrs, "tag_applied", h.deps.TriageTags.Name(tag))
	}

	if outcome.Disposition == report.Failed {
		logger.Error("order triage failed", append(attrs, "errors", outcome.Errors)...)
		return
	}
	logger.Info("order triaged", attrs...)
}

func newOutcome(o *order.Order, d report.Disposition) report.OrderOutcome {
	return report.OrderOutcome{
		OrderID:     o.ID(),
		OrderNumber: o.Number(),
		StoreID:     o.StoreID(),
		Disposition: d,
	}
}
