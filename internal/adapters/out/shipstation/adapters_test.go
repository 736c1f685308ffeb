package shipstation_test

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"

	"fulfillment/internal/adapters/out/shipstation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder(id int64) shipstation.OrderDTO {
	return shipstation.OrderDTO{
		OrderID:     id,
		OrderNumber: "HPS-1001",
		OrderStatus: "awaiting_shipment",
		ShipTo:      shipstation.AddressDTO{Name: "Jane", Street1: "1 Main St", City: "Austin", State: "TX", PostalCode: "78701", Country: "US"},
		Items: []shipstation.ItemDTO{
			{SKU: "4IN-PLANT", Name: "Pothos", Quantity: 2},
			{SKU: "total-discount", Quantity: 0},
		},
		Weight:          &shipstation.WeightDTO{Value: 2, Units: "pounds"},
		AdvancedOptions: shipstation.AdvancedOptionsDTO{StoreID: 427096, CustomField2: "A-12"},
		TagIDs:          []int64{117278},
	}
}

func TestOrderRepository_ListOrders(t *testing.T) {
	t.Run("should follow pages and map orders", func(t *testing.T) {
		var pages []string
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/orders", r.URL.Path)
			assert.Equal(t, "427096", r.URL.Query().Get("storeId"))
			assert.Equal(t, "awaiting_shipment", r.URL.Query().Get("orderStatus"))
			assert.Equal(t, "500", r.URL.Query().Get("pageSize"))
			page := r.URL.Query().Get("page")
			pages = append(pages, page)

			id := int64(1)
			if page == "2" {
				id = 2
			}
			writeJSON(t, w, map[string]any{"orders": []shipstation.OrderDTO{sampleOrder(id)}, "pages": 2})
		}))

		orders, err := shipstation.NewOrderRepository(client).ListOrders(t.Context(), ports.OrderQuery{
			StoreID: 427096,
			Status:  order.AwaitingShipment,
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2"}, pages)
		require.Len(t, orders, 2)

		o := orders[0]
		assert.Equal(t, order.ID(1), o.ID())
		assert.Equal(t, "A-12", o.Location())
		assert.Equal(t, int64(427096), o.StoreID())
		assert.True(t, o.HasTag(117278))
		require.Len(t, o.Items(), 1)
		w, ok := o.Weight()
		require.True(t, ok)
		assert.InDelta(t, 32, w.Ounces(), 1e-9)
		_, ok = o.Dimensions()
		assert.False(t, ok)
	})

	t.Run("should skip records with an unknown status", func(t *testing.T) {
		bad := sampleOrder(2)
		bad.OrderStatus = "exploded"
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, map[string]any{"orders": []shipstation.OrderDTO{sampleOrder(1), bad}, "pages": 1})
		}))

		orders, err := shipstation.NewOrderRepository(client).ListOrders(t.Context(), ports.OrderQuery{StoreID: 1})

		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, order.ID(1), orders[0].ID())
	})

	t.Run("should treat an out of range weight as absent", func(t *testing.T) {
		heavy := sampleOrder(1)
		heavy.Weight = &shipstation.WeightDTO{Value: -4, Units: "ounces"}
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, map[string]any{"orders": []shipstation.OrderDTO{heavy}, "pages": 1})
		}))

		orders, err := shipstation.NewOrderRepository(client).ListOrders(t.Context(), ports.OrderQuery{})

		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.False(t, orders[0].HasWeight())
	})

	t.Run("should treat an implausibly heavy reported weight as absent", func(t *testing.T) {
		heavy := sampleOrder(1)
		heavy.Weight = &shipstation.WeightDTO{Value: 151, Units: "pounds"}
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, map[string]any{"orders": []shipstation.OrderDTO{heavy}, "pages": 1})
		}))

		orders, err := shipstation.NewOrderRepository(client).ListOrders(t.Context(), ports.OrderQuery{})

		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.False(t, orders[0].HasWeight())
	})
}

func TestOrderRepository_Get(t *testing.T) {
	t.Run("should map a 404 to not found", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/orders/77", r.URL.Path)
			http.NotFound(w, r)
		}))

		_, err := shipstation.NewOrderRepository(client).Get(t.Context(), 77)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestTagStore(t *testing.T) {
	var got []string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body map[string]int64
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, int64(10), body["orderId"])
		assert.Equal(t, int64(145844), body["tagId"])
		got = append(got, r.URL.Path)
		writeJSON(t, w, map[string]any{"success": true})
	}))
	store := shipstation.NewTagStore(client)

	require.NoError(t, store.AddTag(t.Context(), 10, 145844))
	require.NoError(t, store.RemoveTag(t.Context(), 10, 145844))
	assert.Equal(t, []string{"/orders/addtag", "/orders/removetag"}, got)
}

func TestRateClient_GetRates(t *testing.T) {
	descriptor := shipment.Descriptor{
		CarrierCode:    "ups",
		FromPostalCode: "33024",
		ToCountry:      "US",
		ToPostalCode:   "78701",
		Weight:         kernel.MustNewWeight(16, kernel.Ounces),
		Dimensions:     kernel.MustNewDimensions(8, 8, 8, kernel.Inches),
		Confirmation:   shipment.ConfirmationNone,
	}

	t.Run("should post the package and tag quotes with the carrier", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/shipments/getrates", r.URL.Path)
			var body map[string]any
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "ups", body["carrierCode"])
			assert.Equal(t, "33024", body["fromPostalCode"])
			assert.Equal(t, "none", body["confirmation"])
			assert.Equal(t, map[string]any{"value": 16.0, "units": "ounces"}, body["weight"])
			writeJSON(t, w, []map[string]any{
				{"serviceName": "UPS Ground", "serviceCode": "ups_ground", "shipmentCost": 9.1, "otherCost": 0.4},
			})
		}))

		quotes, err := shipstation.NewRateClient(client).GetRates(t.Context(), descriptor)

		require.NoError(t, err)
		require.Len(t, quotes, 1)
		assert.Equal(t, "ups", quotes[0].CarrierCode)
		assert.Equal(t, "ups_ground", quotes[0].ServiceCode)
		assert.InDelta(t, 9.1, quotes[0].ShipmentCost, 1e-9)
	})

	t.Run("should not call out for an incomplete descriptor", func(t *testing.T) {
		var called atomic.Bool
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called.Store(true)
		}))
		d := descriptor
		d.FromPostalCode = ""

		_, err := shipstation.NewRateClient(client).GetRates(t.Context(), d)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.False(t, called.Load())
	})
}

func TestCatalog_ListProducts(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		if r.URL.Query().Get("page") == "1" {
			writeJSON(t, w, map[string]any{"products": []map[string]any{{"sku": "AP-1", "name": "Air Plant"}}, "pages": 2})
			return
		}
		writeJSON(t, w, map[string]any{"products": []map[string]any{{"sku": "PT-9", "name": "Planter"}}, "pages": 2})
	}))

	products, err := shipstation.NewCatalog(client).ListProducts(t.Context())

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Planter", products[1].Name)
}
