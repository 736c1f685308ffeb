package services_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

const (
	edgeTag      order.TagID = 145681
	processedTag order.TagID = 145844
	pitbTag      order.TagID = 117278
	expediteTag  order.TagID = 126500
	splitTag     order.TagID = 142954
)

type orderOption func(*order.Params)

func withTags(tags ...order.TagID) orderOption {
	return func(p *order.Params) { p.Tags = append(p.Tags, tags...) }
}

func withWeight(oz float64) orderOption {
	return func(p *order.Params) {
		w := kernel.MustNewWeight(oz, kernel.Ounces)
		p.Weight = &w
	}
}

func withoutWeight() orderOption {
	return func(p *order.Params) { p.Weight = nil }
}

func withoutDimensions() orderOption {
	return func(p *order.Params) { p.Dimensions = nil }
}

func withCarrier(code string) orderOption {
	return func(p *order.Params) { p.CarrierCode = code }
}

func withLocation(loc string) orderOption {
	return func(p *order.Params) { p.Options.Location = loc }
}

func withMerged() orderOption {
	return func(p *order.Params) { p.Options.MergedOrSplit = true }
}

func withItems(items ...order.LineItem) orderOption {
	return func(p *order.Params) { p.Items = items }
}

func withShipTo(a order.Address) orderOption {
	return func(p *order.Params) { p.ShipTo = a }
}

func withID(id order.ID) orderOption {
	return func(p *order.Params) { p.ID = id }
}

func withNotes(notes string) orderOption {
	return func(p *order.Params) { p.CustomerNotes = notes }
}

func item(t *testing.T, sku string, qty int) order.LineItem {
	t.Helper()
	it, err := order.NewLineItem(sku, qty, "")
	require.NoError(t, err)
	return it
}

// newRoutineOrder builds an order that passes every classifier rule unless options break it.
func newRoutineOrder(t *testing.T, opts ...orderOption) *order.Order {
	t.Helper()
	w := kernel.MustNewWeight(16, kernel.Ounces)
	d := kernel.MustNewDimensions(10, 8, 6, kernel.Inches)
	p := order.Params{
		ID:          1001,
		Number:      "HPS-1001",
		Items:       []order.LineItem{item(t, "4IN-PLANT", 1)},
		ShipTo:      order.Address{Name: "Jane", Street1: "1 Main St", City: "Austin", State: "TX", PostalCode: "78701", Country: "US"},
		Weight:      &w,
		Dimensions:  &d,
		CarrierCode: "stamps_com",
		Options:     order.AdvancedOptions{StoreID: 427096, Location: "A-12"},
	}
	for _, opt := range opts {
		opt(&p)
	}
	o, err := order.NewOrder(p)
	require.NoError(t, err)
	return o
}
