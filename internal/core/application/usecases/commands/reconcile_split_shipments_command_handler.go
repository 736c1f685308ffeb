package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/report"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// ReconcileSplitShipmentsCommandHandler lists orders across stores, plans split-tag changes
// with the SplitShipmentDetector and applies them. Removals run before additions.
type ReconcileSplitShipmentsCommandHandler struct {
	orders   ports.OrderRepository
	tags     TagEnsurer
	detector services.SplitShipmentDetector
	splitTag order.TagID
	tagName  string
	history  ports.RunHistory
	logger   *slog.Logger
	now      func() time.Time
}

// NewReconcileSplitShipmentsCommandHandler returns the handler. history may be nil.
func NewReconcileSplitShipmentsCommandHandler(
	orders ports.OrderRepository,
	tags ports.TagStore,
	cfg services.SplitConfig,
	tagName string,
	history ports.RunHistory,
	logger *slog.Logger,
) (*ReconcileSplitShipmentsCommandHandler, error) {
	if err := cfg.SplitTag.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ReconcileSplitShipmentsCommandHandler{
		orders:   orders,
		tags:     NewTagEnsurer(tags),
		detector: services.NewSplitShipmentDetector(cfg),
		splitTag: cfg.SplitTag,
		tagName:  tagName,
		history:  history,
		logger:   logger.With("component", "split_reconciler"),
		now:      time.Now,
	}, nil
}

// Handle reconciles split tags. Listing failures abort; tag failures are recorded on the report.
func (h *ReconcileSplitShipmentsCommandHandler) Handle(
	ctx context.Context,
	cmd ReconcileSplitShipmentsCommand,
) (report.SplitReport, error) {
	if err := cmd.Validate(); err != nil {
		return report.SplitReport{}, err
	}

	rep := report.SplitReport{ID: kernel.NewRunID(), StartedAt: h.now(), DryRun: cmd.DryRun(), Changes: []report.TagChange{}}

	var all []*order.Order
	for _, storeID := range cmd.StoreIDs() {
		orders, err := h.orders.ListOrders(ctx, ports.OrderQuery{
			StoreID:  storeID,
			Status:   order.AwaitingShipment,
			PageSize: ports.DefaultPageSize,
		})
		if err != nil {
			return rep, fmt.Errorf("list orders for store %d: %w", storeID, err)
		}
		all = append(all, orders...)
	}
	rep.Orders = len(all)

	byID := make(map[order.ID]*order.Order, len(all))
	for _, o := range all {
		byID[o.ID()] = o
	}

	plan := h.detector.Plan(all)
	h.logger.Info("split plan ready", "orders", len(all), "add", len(plan.Add), "remove", len(plan.Remove))

	for _, id := range plan.Remove {
		rep.Changes = append(rep.Changes, h.apply(ctx, byID[id], report.TagRemoved))
	}
	for _, id := range plan.Add {
		rep.Changes = append(rep.Changes, h.apply(ctx, byID[id], report.TagAdded))
	}

	rep.FinishedAt = h.now()
	if h.history != nil {
		h.history.RecordSplit(rep)
	}
	return rep, nil
}

func (h *ReconcileSplitShipmentsCommandHandler) apply(ctx context.Context, o *order.Order, action report.TagAction) report.TagChange {
	change := report.TagChange{OrderID: o.ID(), Tag: h.splitTag, TagName: h.tagName, Action: action}

	var err error
	if action == report.TagAdded {
		_, err = h.tags.Ensure(ctx, o, h.splitTag)
	} else {
		_, err = h.tags.Clear(ctx, o, h.splitTag)
	}

	if err != nil {
		change.Error = err.Error()
		h.logger.Warn("split tag change failed", "order_id", o.ID(), "action", action, "error", err)
		return change
	}
	h.logger.Info("split tag changed", "order_id", o.ID(), "order_number", o.Number(), "action", action)
	return change
}
