package services

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/order"
)

// ClassificationKind is the verdict of the Classifier.
type ClassificationKind string

const (
	Routine          ClassificationKind = "routine"
	EdgeCase         ClassificationKind = "edge_case"
	AlreadyProcessed ClassificationKind = "already_processed"
)

// Reason names why an order is an edge case.
type Reason string

const (
	ReasonNone                Reason = ""
	ReasonPITBMissingShipping Reason = "pitb_missing_critical_shipping_data"
	ReasonAlreadyTagged       Reason = "already_tagged"
	ReasonMerged              Reason = "merged"
	ReasonNoLocation          Reason = "no_location"
	ReasonMissingShipping     Reason = "missing_shipping"
	ReasonNewSKU              Reason = "new_sku"
	ReasonNoRates             Reason = "no_rates"
	ReasonNoPackableItems     Reason = "no_packable_items"
)

// DefaultNoLocationPlaceholder is the location text the warehouse uses for "not binned".
const DefaultNoLocationPlaceholder = "No Location"

// Classification is the Classifier's result.
type Classification struct {
	Kind   ClassificationKind
	Reason Reason
}

// IsRoutine reports whether the order may be processed automatically.
func (c Classification) IsRoutine() bool {
	return c.Kind == Routine
}

// IsEdgeCase reports whether the order needs human review.
func (c Classification) IsEdgeCase() bool {
	return c.Kind == EdgeCase
}

// RequiresEdgeTag reports whether the caller must ensure the edge-case tag.
// Orders already carrying it are the one exception.
func (c Classification) RequiresEdgeTag() bool {
	return c.Kind == EdgeCase && c.Reason != ReasonAlreadyTagged
}

// ClassifierConfig configures the Classifier.
type ClassifierConfig struct {
	EdgeCaseTag           order.TagID
	ProcessedTag          order.TagID
	PriorityTag           order.TagID
	NewSKUs               []string
	NoLocationPlaceholder string
}

// Classifier decides whether an order may be auto-processed.
//
// Rules are evaluated in a fixed order and the first match wins:
//  1. priority tag: critical shipping data missing is an edge case, anything else is routine
//  2. edge-case tag already present
//  3. processed tag present
//  4. merged or split order
//  5. no warehouse location
//  6. no weight, no carrier, or no dimensions
//  7. a SKU in the new-SKU set
//
// Classify is pure: the same order always yields the same classification.
type Classifier struct {
	cfg     ClassifierConfig
	newSKUs map[string]struct{}
}

// NewClassifier validates cfg and returns a Classifier.
func NewClassifier(cfg ClassifierConfig) (Classifier, error) {
	if err := errors.Join(
		cfg.EdgeCaseTag.Validate(),
		cfg.ProcessedTag.Validate(),
		cfg.PriorityTag.Validate(),
	); err != nil {
		return Classifier{}, err
	}
	if cfg.NoLocationPlaceholder == "" {
		cfg.NoLocationPlaceholder = DefaultNoLocationPlaceholder
	}

	newSKUs := make(map[string]struct{}, len(cfg.NewSKUs))
	for _, sku := range cfg.NewSKUs {
		newSKUs[strings.ToUpper(strings.TrimSpace(sku))] = struct{}{}
	}

	return Classifier{cfg: cfg, newSKUs: newSKUs}, nil
}

// Classify returns the classification of o.
func (c Classifier) Classify(o *order.Order) Classification {
	if o.HasTag(c.cfg.PriorityTag) {
		if !o.HasWeight() || !o.HasDimensions() {
			return edge(ReasonPITBMissingShipping)
		}
		return Classification{Kind: Routine}
	}

	switch {
	case o.HasTag(c.cfg.EdgeCaseTag):
		return edge(ReasonAlreadyTagged)
	case o.HasTag(c.cfg.ProcessedTag):
		return Classification{Kind: AlreadyProcessed}
	case o.Options().MergedOrSplit:
		return edge(ReasonMerged)
	case c.hasNoLocation(o):
		return edge(ReasonNoLocation)
	case !o.HasWeight() || o.CarrierCode() == "" || !o.HasDimensions():
		return edge(ReasonMissingShipping)
	case c.hasNewSKU(o):
		return edge(ReasonNewSKU)
	}

	return Classification{Kind: Routine}
}

func (c Classifier) hasNoLocation(o *order.Order) bool {
	loc := o.Location()
	return loc == "" || loc == c.cfg.NoLocationPlaceholder
}

func (c Classifier) hasNewSKU(o *order.Order) bool {
	for _, sku := range o.SKUs() {
		if _, ok := c.newSKUs[strings.ToUpper(sku)]; ok {
			return true
		}
	}
	return false
}

func edge(r Reason) Classification {
	return Classification{Kind: EdgeCase, Reason: r}
}
