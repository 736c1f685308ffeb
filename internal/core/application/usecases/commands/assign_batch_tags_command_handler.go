package commands

import (
	"context"
	"fmt"
	"log/slog"

	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/report"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// AssignBatchTagsCommandHandler tags orders with the pick-list batches they belong to.
// The product catalog is fetched once per Handle call.
type AssignBatchTagsCommandHandler struct {
	products ports.ProductCatalog
	tags     TagEnsurer
	tagger   services.BatchTagger
	names    TriageTags
	logger   *slog.Logger
}

// NewAssignBatchTagsCommandHandler returns the handler. products may be nil, in which
// case product-name rules never match.
func NewAssignBatchTagsCommandHandler(
	products ports.ProductCatalog,
	tags ports.TagStore,
	tagger services.BatchTagger,
	names TriageTags,
	logger *slog.Logger,
) *AssignBatchTagsCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AssignBatchTagsCommandHandler{
		products: products,
		tags:     NewTagEnsurer(tags),
		tagger:   tagger,
		names:    names,
		logger:   logger.With("component", "batch_tagger"),
	}
}

// Handle applies missing batch tags and returns every tag change attempted. A failing
// tag call is recorded on its TagChange and does not stop the others. The returned
// error is only about the catalog, in which case no tags are written.
func (h *AssignBatchTagsCommandHandler) Handle(ctx context.Context, cmd AssignBatchTagsCommand) ([]report.TagChange, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var products catalog.Products
	if h.products != nil {
		list, err := h.products.ListProducts(ctx)
		if err != nil {
			return nil, fmt.Errorf("list products: %w", err)
		}
		products = catalog.NewProducts(list)
		h.logger.Info("product catalog cached", "products", len(products))
	}

	var changes []report.TagChange
	for _, o := range cmd.Orders() {
		for _, tag := range h.tagger.Tags(o, products) {
			change := report.TagChange{OrderID: o.ID(), Tag: tag, TagName: h.names.Name(tag), Action: report.TagAdded}
			if _, err := h.tags.Ensure(ctx, o, tag); err != nil {
				change.Error = err.Error()
				h.logger.Warn("batch tag failed", "order_id", o.ID(), "tag", change.TagName, "error", err)
			} else {
				h.logger.Info("batch tag applied", "order_id", o.ID(), "order_number", o.Number(), "tag", change.TagName)
			}
			changes = append(changes, change)
		}
	}
	return changes, nil
}
