package shipment

import "fmt"

// Quote is one carrier/service price returned by the rating service.
// Quotes are ephemeral and only live for the duration of a rate selection.
// Selection ranks quotes by ShipmentCost alone; OtherCost is informational.
type Quote struct {
	CarrierCode  string
	ServiceCode  string
	ServiceName  string
	ShipmentCost float64
	OtherCost    float64
}

// String renders the quote as carrier, service and cost.
func (q Quote) String() string {
	return fmt.Sprintf("%s/%s $%.2f", q.CarrierCode, q.ServiceCode, q.ShipmentCost)
}
