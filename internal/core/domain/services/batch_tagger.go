package services

import (
	"strings"

	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/order"
)

// SKURule tags orders whose SKUs contain one of Markers.
//
// MinQuantity and MaxQuantity bound the total quantity across matching lines; zero
// means unbounded. That lets one marker split into "one unit" and "two or more" tags.
type SKURule struct {
	Tag         order.TagID
	Markers     []string
	MinQuantity int
	MaxQuantity int
}

// ProductNameRule tags orders containing a product whose catalog name contains one of Markers.
type ProductNameRule struct {
	Tag     order.TagID
	Markers []string
}

// BatchTaggerConfig configures the BatchTagger.
type BatchTaggerConfig struct {
	SKURules         []SKURule
	ProductNameRules []ProductNameRule
}

// BatchTagger derives the pick-list batch tags an order should carry.
type BatchTagger struct {
	cfg BatchTaggerConfig
}

// NewBatchTagger returns a BatchTagger for cfg.
func NewBatchTagger(cfg BatchTaggerConfig) BatchTagger {
	return BatchTagger{cfg: cfg}
}

// Tags returns the batch tags o is missing, in rule order. products may be nil, in
// which case product-name rules never match.
func (b BatchTagger) Tags(o *order.Order, products catalog.Products) []order.TagID {
	var want order.TagSet

	items := o.PackableItems()
	for _, rule := range b.cfg.SKURules {
		qty := 0
		for _, it := range items {
			if containsAny(strings.ToLower(it.SKU()), rule.Markers) {
				qty += it.Quantity()
			}
		}
		if qty == 0 {
			continue
		}
		if rule.MinQuantity > 0 && qty < rule.MinQuantity {
			continue
		}
		if rule.MaxQuantity > 0 && qty > rule.MaxQuantity {
			continue
		}
		want.Add(rule.Tag)
	}

	for _, rule := range b.cfg.ProductNameRules {
		for _, it := range items {
			name := strings.ToLower(products.NameOf(it.SKU()))
			if name != "" && containsAny(name, rule.Markers) {
				want.Add(rule.Tag)
				break
			}
		}
	}

	out := make([]order.TagID, 0, want.Len())
	for _, tag := range want.Slice() {
		if !o.HasTag(tag) {
			out = append(out, tag)
		}
	}
	return out
}

func containsAny(s string, markers []string) bool {
	if s == "" {
		return false
	}
	for _, m := range markers {
		if m != "" && strings.Contains(s, strings.ToLower(m)) {
			return true
		}
	}
	return false
}
