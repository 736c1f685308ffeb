package commands_test

import (
	"context"
	"fmt"
	"testing"

	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/report"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	edgeTag      order.TagID = 145681
	processedTag order.TagID = 145844
	pitbTag      order.TagID = 117278
	splitTag     order.TagID = 142954
	wayfairTag   order.TagID = 151644
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) ListOrders(ctx context.Context, q ports.OrderQuery) ([]*order.Order, error) {
	args := m.Called(ctx, q)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) Get(ctx context.Context, id order.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockTagStore struct{ mock.Mock }

func (m *MockTagStore) AddTag(ctx context.Context, id order.ID, tag order.TagID) error {
	return m.Called(ctx, id, tag).Error(0)
}

func (m *MockTagStore) RemoveTag(ctx context.Context, id order.ID, tag order.TagID) error {
	return m.Called(ctx, id, tag).Error(0)
}

type MockRateClient struct{ mock.Mock }

func (m *MockRateClient) GetRates(ctx context.Context, d shipment.Descriptor) ([]shipment.Quote, error) {
	args := m.Called(ctx, d)
	quotes, _ := args.Get(0).([]shipment.Quote)
	return quotes, args.Error(1)
}

type MockProductCatalog struct{ mock.Mock }

func (m *MockProductCatalog) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]catalog.Product)
	return products, args.Error(1)
}

type MockRunHistory struct{ mock.Mock }

func (m *MockRunHistory) Record(run report.Run) {
	m.Called(run)
}

func (m *MockRunHistory) Latest() (report.Run, bool) {
	args := m.Called()
	return args.Get(0).(report.Run), args.Bool(1)
}

func (m *MockRunHistory) RecordSplit(r report.SplitReport) {
	m.Called(r)
}

func (m *MockRunHistory) LatestSplit() (report.SplitReport, bool) {
	args := m.Called()
	return args.Get(0).(report.SplitReport), args.Bool(1)
}

type orderOption func(*order.Params)

func withTags(tags ...order.TagID) orderOption {
	return func(p *order.Params) { p.Tags = append(p.Tags, tags...) }
}

func withMerged() orderOption {
	return func(p *order.Params) { p.Options.MergedOrSplit = true }
}

func withoutWeight() orderOption {
	return func(p *order.Params) { p.Weight = nil }
}

func withItems(items ...order.LineItem) orderOption {
	return func(p *order.Params) { p.Items = items }
}

func withShipTo(a order.Address) orderOption {
	return func(p *order.Params) { p.ShipTo = a }
}

func withNotes(n string) orderOption {
	return func(p *order.Params) { p.CustomerNotes = n }
}

func lineItem(t *testing.T, sku string, qty int) order.LineItem {
	t.Helper()
	it, err := order.NewLineItem(sku, qty, "")
	require.NoError(t, err)
	return it
}

func newOrder(t *testing.T, id order.ID, opts ...orderOption) *order.Order {
	t.Helper()
	w := kernel.MustNewWeight(16, kernel.Ounces)
	d := kernel.MustNewDimensions(10, 8, 6, kernel.Inches)
	p := order.Params{
		ID:          id,
		Number:      fmt.Sprintf("HPS-%d", id),
		Items:       []order.LineItem{lineItem(t, "4IN-PLANT", 1)},
		ShipTo:      order.Address{Name: "Jane", Street1: "1 Main St", City: "Austin", PostalCode: "78701", Country: "US"},
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
