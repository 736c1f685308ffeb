package shipment

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// Confirmation is the delivery confirmation requested with a rate.
type Confirmation string

const (
	ConfirmationNone      Confirmation = "none"
	ConfirmationDelivery  Confirmation = "delivery"
	ConfirmationSignature Confirmation = "signature"
)

// Descriptor describes a package to be rated for one carrier.
// Empty string fields are omitted when the descriptor is sent.
type Descriptor struct {
	CarrierCode    string
	FromPostalCode string
	ToCountry      string
	ToState        string
	ToPostalCode   string
	Residential    bool
	Weight         kernel.Weight
	Dimensions     kernel.Dimensions
	Confirmation   Confirmation
}

// WithCarrier returns a copy of the descriptor addressed to carrier.
func (d Descriptor) WithCarrier(carrier string) Descriptor {
	d.CarrierCode = carrier
	return d
}

// Validate checks the fields the rating service cannot work without.
func (d Descriptor) Validate() error {
	var errList []error
	if d.CarrierCode == "" {
		errList = append(errList, errs.NewValueIsRequiredError("carrierCode"))
	}
	if d.FromPostalCode == "" {
		errList = append(errList, errs.NewValueIsRequiredError("fromPostalCode"))
	}
	if d.ToCountry == "" {
		errList = append(errList, errs.NewValueIsRequiredError("toCountry"))
	}
	errList = append(errList, d.Weight.Validate(), d.Dimensions.Validate())
	return errors.Join(errList...)
}
