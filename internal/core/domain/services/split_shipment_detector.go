package services

import (
	"strings"

	"fulfillment/internal/core/domain/model/order"
)

// DefaultSplitNoteMarker appears in customer notes of orders the storefront already split.
const DefaultSplitNoteMarker = "Note: Your order"

// SplitConfig configures the SplitShipmentDetector.
type SplitConfig struct {
	SplitTag   order.TagID
	NoteMarker string
}

// SplitPlan lists the split-tag changes to make.
type SplitPlan struct {
	Add    []order.ID
	Remove []order.ID
}

// IsEmpty reports whether the plan changes nothing.
func (p SplitPlan) IsEmpty() bool {
	return len(p.Add) == 0 && len(p.Remove) == 0
}

// SplitShipmentDetector finds orders shipping to the same address, which the warehouse
// packs together, and plans the split tag so that exactly those orders carry it.
//
// Orders whose notes carry the storefront's split marker never carry the tag.
type SplitShipmentDetector struct {
	cfg SplitConfig
}

// NewSplitShipmentDetector returns a detector. Validation of the split tag is left to
// the caller; an empty NoteMarker uses DefaultSplitNoteMarker.
func NewSplitShipmentDetector(cfg SplitConfig) SplitShipmentDetector {
	if cfg.NoteMarker == "" {
		cfg.NoteMarker = DefaultSplitNoteMarker
	}
	return SplitShipmentDetector{cfg: cfg}
}

// Plan computes the tag changes for orders. An order listed twice is counted once.
// Add and Remove follow the input order.
func (d SplitShipmentDetector) Plan(orders []*order.Order) SplitPlan {
	unique := make([]*order.Order, 0, len(orders))
	seen := make(map[order.ID]struct{}, len(orders))
	groups := make(map[string]int, len(orders))
	for _, o := range orders {
		if _, dup := seen[o.ID()]; dup {
			continue
		}
		seen[o.ID()] = struct{}{}
		unique = append(unique, o)
		groups[o.ShipTo().Key()]++
	}

	var plan SplitPlan
	for _, o := range unique {
		tagged := o.HasTag(d.cfg.SplitTag)
		duplicate := groups[o.ShipTo().Key()] > 1
		noted := strings.Contains(o.CustomerNotes(), d.cfg.NoteMarker)

		switch {
		case tagged && (!duplicate || noted):
			plan.Remove = append(plan.Remove, o.ID())
		case !tagged && duplicate && !noted:
			plan.Add = append(plan.Add, o.ID())
		}
	}
	return plan
}
