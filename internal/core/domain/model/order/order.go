package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// ID is the platform-assigned order identifier.
type ID int64

// Validate rejects non-positive IDs.
func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is not greater than 0", id))
	}
	return nil
}

// Params carries everything needed to build an Order from a platform record.
// Weight and Dimensions are nil when the platform has none for the order.
type Params struct {
	ID             ID
	Number         string
	Status         Status
	Items          []LineItem
	ShipTo         Address
	ShipFromPostal string
	Tags           []TagID
	Weight         *kernel.Weight
	Dimensions     *kernel.Dimensions
	CarrierCode    string
	ServiceCode    string
	Options        AdvancedOptions
	CustomerNotes  string
}

// Order represents one awaiting-shipment order being triaged. It is the aggregate root
// for everything decided about the order during a run.
//
// Order follows these invariants:
//   - The ID is positive and never changes
//   - Tags form a set
//   - Once SetPackage has run, weight and dimensions are both present and non-zero
//   - Can only be created through NewOrder
type Order struct {
	id             ID
	number         string
	status         Status
	items          []LineItem
	shipTo         Address
	shipFromPostal string
	tags           TagSet
	weight         *kernel.Weight
	dimensions     *kernel.Dimensions
	carrierCode    string
	serviceCode    string
	options        AdvancedOptions
	billing        shipment.BillingAccount
	customerNotes  string

	isConstructed bool
}

// NewOrder creates an Order from platform data.
//
// Parameters:
//   - p: the order record; ID must be positive and Status, when set, must be a known status
//
// Returns:
//   - *Order: the order if all validations pass
//   - error: every validation failure, joined
//
// Example:
//
//	item, _ := order.NewLineItem("4IN-PLANT", 2, "Pothos")
//	o, err := order.NewOrder(order.Params{
//	    ID:     1001,
//	    Number: "HPS-1001",
//	    Items:  []order.LineItem{item},
//	    ShipTo: order.Address{Country: "US", PostalCode: "10001"},
//	})
func NewOrder(p Params) (*Order, error) {
	o := &Order{
		number:         p.Number,
		items:          slices.Clone(p.Items),
		shipTo:         p.ShipTo,
		shipFromPostal: strings.TrimSpace(p.ShipFromPostal),
		tags:           NewTagSet(p.Tags...),
		carrierCode:    p.CarrierCode,
		serviceCode:    p.ServiceCode,
		options:        p.Options,
		customerNotes:  p.CustomerNotes,
		isConstructed:  true,
	}

	if err := errors.Join(
		o.setID(p.ID),
		o.setStatus(p.Status),
		o.setWeight(p.Weight),
		o.setDimensions(p.Dimensions),
		validateTags(p.Tags),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was built through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the platform order id.
func (o *Order) ID() ID {
	return o.id
}

// Number returns the customer-facing order number.
func (o *Order) Number() string {
	return o.number
}

// Status returns the order's fulfillment status.
func (o *Order) Status() Status {
	return o.status
}

// Items returns a copy of all line items, discount lines included.
func (o *Order) Items() []LineItem {
	return slices.Clone(o.items)
}

// PackableItems returns the line items that ship, which excludes discount lines.
func (o *Order) PackableItems() []LineItem {
	out := make([]LineItem, 0, len(o.items))
	for _, it := range o.items {
		if !it.IsDiscount() {
			out = append(out, it)
		}
	}
	return out
}

// SKUs returns the non-empty SKUs of packable items in line order.
func (o *Order) SKUs() []string {
	skus := make([]string, 0, len(o.items))
	for _, it := range o.PackableItems() {
		if it.SKU() != "" {
			skus = append(skus, it.SKU())
		}
	}
	return skus
}

// ShipTo returns the destination address.
func (o *Order) ShipTo() Address {
	return o.shipTo
}

// ShipFromPostal returns the order's origin postal code, empty when the platform has none.
func (o *Order) ShipFromPostal() string {
	return o.shipFromPostal
}

// Tags returns the order's tags in the order they were seen.
func (o *Order) Tags() []TagID {
	return o.tags.Slice()
}

// HasTag reports whether the order carries tag.
func (o *Order) HasTag(tag TagID) bool {
	return o.tags.Has(tag)
}

// HasAnyTag reports whether the order carries any of tags.
func (o *Order) HasAnyTag(tags ...TagID) bool {
	return o.tags.HasAny(tags...)
}

// AddTag records that the platform now holds tag for this order. It reports whether
// the tag was new.
func (o *Order) AddTag(tag TagID) bool {
	return o.tags.Add(tag)
}

// RemoveTag records that the platform no longer holds tag for this order.
func (o *Order) RemoveTag(tag TagID) bool {
	return o.tags.Remove(tag)
}

// Weight returns the order weight and whether one is present.
func (o *Order) Weight() (kernel.Weight, bool) {
	if o.weight == nil {
		return kernel.Weight{}, false
	}
	return *o.weight, true
}

// Dimensions returns the package dimensions and whether they are present.
func (o *Order) Dimensions() (kernel.Dimensions, bool) {
	if o.dimensions == nil {
		return kernel.Dimensions{}, false
	}
	return *o.dimensions, true
}

// HasWeight reports whether a non-zero weight is present.
func (o *Order) HasWeight() bool {
	return o.weight != nil && !o.weight.IsZero()
}

// HasDimensions reports whether dimensions are present.
func (o *Order) HasDimensions() bool {
	return o.dimensions != nil
}

// CarrierCode returns the assigned carrier, empty when none is set.
func (o *Order) CarrierCode() string {
	return o.carrierCode
}

// ServiceCode returns the assigned carrier service, empty when none is set.
func (o *Order) ServiceCode() string {
	return o.serviceCode
}

// Options returns the order's advanced options.
func (o *Order) Options() AdvancedOptions {
	return o.options
}

// Location returns the warehouse location recorded on the order, trimmed.
func (o *Order) Location() string {
	return strings.TrimSpace(o.options.Location)
}

// StoreID returns the store the order belongs to.
func (o *Order) StoreID() int64 {
	return o.options.StoreID
}

// Billing returns the assigned billing account, zero when none was assigned.
func (o *Order) Billing() shipment.BillingAccount {
	return o.billing
}

// CustomerNotes returns the free text the customer left at checkout.
func (o *Order) CustomerNotes() string {
	return o.customerNotes
}

// SetPackage assigns the estimated weight and dimensions.
//
// Both must be constructed and non-zero, so that after a successful call
// HasWeight and HasDimensions are true.
func (o *Order) SetPackage(weight kernel.Weight, dimensions kernel.Dimensions) error {
	if err := errors.Join(weight.Validate(), dimensions.Validate()); err != nil {
		return err
	}
	if weight.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("weight", errors.New("package weight must be greater than 0"))
	}
	if dimensions.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("dimensions", errors.New("every side must be greater than 0"))
	}

	o.weight = &weight
	o.dimensions = &dimensions
	return nil
}

// AssignRate records the chosen carrier and service.
func (o *Order) AssignRate(carrierCode, serviceCode string) error {
	if carrierCode == "" {
		return errs.NewValueIsRequiredError("carrierCode")
	}
	if serviceCode == "" {
		return errs.NewValueIsRequiredError("serviceCode")
	}
	o.carrierCode = carrierCode
	o.serviceCode = serviceCode
	return nil
}

// AssignBilling records the billing account for the chosen carrier.
func (o *Order) AssignBilling(account shipment.BillingAccount) error {
	if account.AccountNumber == "" {
		return errs.NewValueIsRequiredError("accountNumber")
	}
	o.billing = account
	return nil
}

func (o *Order) setID(id ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setStatus accepts an empty status as AwaitingShipment, which is what every listed order has.
func (o *Order) setStatus(status Status) error {
	if status == "" {
		status = AwaitingShipment
	}
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setWeight(weight *kernel.Weight) error {
	if weight == nil {
		return nil
	}
	if err := weight.Validate(); err != nil {
		return err
	}
	w := *weight
	o.weight = &w
	return nil
}

func (o *Order) setDimensions(dimensions *kernel.Dimensions) error {
	if dimensions == nil {
		return nil
	}
	if err := dimensions.Validate(); err != nil {
		return err
	}
	d := *dimensions
	o.dimensions = &d
	return nil
}

func validateTags(tags []TagID) error {
	errList := make([]error, 0, len(tags))
	for _, t := range tags {
		errList = append(errList, t.Validate())
	}
	return errors.Join(errList...)
}
