package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status is the platform's order status. Triage only ever lists AwaitingShipment orders,
// but orders fetched by ID may carry any of them.
type Status string

const (
	AwaitingPayment    Status = "awaiting_payment"
	AwaitingShipment   Status = "awaiting_shipment"
	PendingFulfillment Status = "pending_fulfillment"
	Shipped            Status = "shipped"
	OnHold             Status = "on_hold"
	Cancelled          Status = "cancelled"
)

func validStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		AwaitingPayment:    {},
		AwaitingShipment:   {},
		PendingFulfillment: {},
		Shipped:            {},
		OnHold:             {},
		Cancelled:          {},
	}
}

// ParseStatus converts the platform's status string into a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate reports whether s is one of the known platform statuses.
func (s Status) Validate() error {
	if _, ok := validStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid order status", string(s)))
	}
	return nil
}

// String returns the platform spelling of the status.
func (s Status) String() string {
	return string(s)
}
