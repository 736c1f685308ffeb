package shipstation

import (
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipment"
)

// maxReportedWeightOz bounds the weight the platform may report for one order.
// Anything heavier is corrupt data.
const maxReportedWeightOz = 150 * 16

// OrderDTO is the subset of the platform's order record that triage reads.
type OrderDTO struct {
	OrderID         int64              `json:"orderId"`
	OrderNumber     string             `json:"orderNumber"`
	OrderStatus     string             `json:"orderStatus"`
	CustomerNotes   string             `json:"customerNotes"`
	ShipTo          AddressDTO         `json:"shipTo"`
	Items           []ItemDTO          `json:"items"`
	CarrierCode     string             `json:"carrierCode"`
	ServiceCode     string             `json:"serviceCode"`
	Weight          *WeightDTO         `json:"weight"`
	Dimensions      *DimensionsDTO     `json:"dimensions"`
	AdvancedOptions AdvancedOptionsDTO `json:"advancedOptions"`
	TagIDs          []int64            `json:"tagIds"`
}

type AddressDTO struct {
	Name        string `json:"name"`
	Company     string `json:"company"`
	Street1     string `json:"street1"`
	Street2     string `json:"street2"`
	Street3     string `json:"street3"`
	City        string `json:"city"`
	State       string `json:"state"`
	PostalCode  string `json:"postalCode"`
	Country     string `json:"country"`
	Phone       string `json:"phone"`
	Residential *bool  `json:"residential"`
}

type ItemDTO struct {
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type WeightDTO struct {
	Value float64 `json:"value"`
	Units string  `json:"units"`
}

type DimensionsDTO struct {
	Units  string  `json:"units"`
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type AdvancedOptionsDTO struct {
	MergedOrSplit bool   `json:"mergedOrSplit"`
	StoreID       int64  `json:"storeId"`
	CustomField1  string `json:"customField1"`
	CustomField2  string `json:"customField2"`
	CustomField3  string `json:"customField3"`
}

type ordersPageDTO struct {
	Orders []OrderDTO `json:"orders"`
	Total  int        `json:"total"`
	Page   int        `json:"page"`
	Pages  int        `json:"pages"`
}

type tagRequestDTO struct {
	OrderID int64 `json:"orderId"`
	TagID   int64 `json:"tagId"`
}

type rateRequestDTO struct {
	CarrierCode    string         `json:"carrierCode"`
	FromPostalCode string         `json:"fromPostalCode"`
	ToState        string         `json:"toState,omitempty"`
	ToCountry      string         `json:"toCountry"`
	ToPostalCode   string         `json:"toPostalCode,omitempty"`
	Weight         WeightDTO      `json:"weight"`
	Dimensions     *DimensionsDTO `json:"dimensions,omitempty"`
	Confirmation   string         `json:"confirmation,omitempty"`
	Residential    bool           `json:"residential"`
}

type rateDTO struct {
	ServiceName  string  `json:"serviceName"`
	ServiceCode  string  `json:"serviceCode"`
	ShipmentCost float64 `json:"shipmentCost"`
	OtherCost    float64 `json:"otherCost"`
}

type productDTO struct {
	ProductID int64  `json:"productId"`
	SKU       string `json:"sku"`
	Name      string `json:"name"`
}

type productsPageDTO struct {
	Products []productDTO `json:"products"`
	Page     int          `json:"page"`
	Pages    int          `json:"pages"`
}

type storeDTO struct {
	StoreID         int64  `json:"storeId"`
	StoreName       string `json:"storeName"`
	MarketplaceName string `json:"marketplaceName"`
	Active          bool   `json:"active"`
}

// toDomain maps a platform order. Lines with a non-positive quantity are dropped and
// an unusable weight or dimensions record is treated as absent.
func (d OrderDTO) toDomain() (*order.Order, error) {
	status, err := order.ParseStatus(d.OrderStatus)
	if err != nil {
		return nil, fmt.Errorf("order %d: %w", d.OrderID, err)
	}

	items := make([]order.LineItem, 0, len(d.Items))
	for _, it := range d.Items {
		if it.Quantity < 1 {
			continue
		}
		li, err := order.NewLineItem(it.SKU, it.Quantity, it.Name)
		if err != nil {
			return nil, fmt.Errorf("order %d: %w", d.OrderID, err)
		}
		items = append(items, li)
	}

	tags := make([]order.TagID, 0, len(d.TagIDs))
	for _, t := range d.TagIDs {
		if t > 0 {
			tags = append(tags, order.TagID(t))
		}
	}

	return order.NewOrder(order.Params{
		ID:            order.ID(d.OrderID),
		Number:        d.OrderNumber,
		Status:        status,
		Items:         items,
		ShipTo:        order.Address(d.ShipTo),
		Tags:          tags,
		Weight:        d.Weight.toDomain(),
		Dimensions:    d.Dimensions.toDomain(),
		CarrierCode:   d.CarrierCode,
		ServiceCode:   d.ServiceCode,
		CustomerNotes: d.CustomerNotes,
		Options: order.AdvancedOptions{
			MergedOrSplit: d.AdvancedOptions.MergedOrSplit,
			StoreID:       d.AdvancedOptions.StoreID,
			Location:      d.AdvancedOptions.CustomField2,
			CustomField1:  d.AdvancedOptions.CustomField1,
			CustomField3:  d.AdvancedOptions.CustomField3,
		},
	})
}

func (w *WeightDTO) toDomain() *kernel.Weight {
	if w == nil {
		return nil
	}
	weight, err := kernel.NewWeight(w.Value, kernel.WeightUnit(strings.ToLower(w.Units)))
	if err != nil || weight.Ounces() > maxReportedWeightOz {
		return nil
	}
	return &weight
}

func (d *DimensionsDTO) toDomain() *kernel.Dimensions {
	if d == nil {
		return nil
	}
	dims, err := kernel.NewDimensions(d.Length, d.Width, d.Height, kernel.DimensionUnit(strings.ToLower(d.Units)))
	if err != nil {
		return nil
	}
	return &dims
}

func newRateRequest(d shipment.Descriptor) rateRequestDTO {
	req := rateRequestDTO{
		CarrierCode:    d.CarrierCode,
		FromPostalCode: d.FromPostalCode,
		ToState:        d.ToState,
		ToCountry:      d.ToCountry,
		ToPostalCode:   d.ToPostalCode,
		Weight:         WeightDTO{Value: d.Weight.Value(), Units: string(d.Weight.Unit())},
		Confirmation:   string(d.Confirmation),
		Residential:    d.Residential,
	}
	if !d.Dimensions.IsZero() {
		req.Dimensions = &DimensionsDTO{
			Units:  string(d.Dimensions.Unit()),
			Length: d.Dimensions.Length(),
			Width:  d.Dimensions.Width(),
			Height: d.Dimensions.Height(),
		}
	}
	return req
}

func (r rateDTO) toDomain(carrier string) shipment.Quote {
	return shipment.Quote{
		CarrierCode:  carrier,
		ServiceCode:  r.ServiceCode,
		ServiceName:  r.ServiceName,
		ShipmentCost: r.ShipmentCost,
		OtherCost:    r.OtherCost,
	}
}

func (p productDTO) toDomain() catalog.Product {
	return catalog.Product{SKU: p.SKU, Name: p.Name}
}

func (s storeDTO) toDomain() catalog.Store {
	return catalog.Store{ID: s.StoreID, Name: s.StoreName, Marketplace: s.MarketplaceName, Active: s.Active}
}
