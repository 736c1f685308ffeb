package report

import (
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipment"
)

// Disposition is the final state of one order within a run.
type Disposition string

const (
	Processed        Disposition = "processed"
	EdgeCase         Disposition = "edge_case"
	AlreadyProcessed Disposition = "already_processed"
	Excluded         Disposition = "excluded"
	Failed           Disposition = "failed"
)

// Dispositions lists every disposition in report order.
func Dispositions() []Disposition {
	return []Disposition{Processed, EdgeCase, AlreadyProcessed, Excluded, Failed}
}

// Rate is the chosen rate as it appears in a report.
type Rate struct {
	CarrierCode string  `json:"carrierCode"`
	ServiceCode string  `json:"serviceCode"`
	ServiceName string  `json:"serviceName,omitempty"`
	Cost        float64 `json:"cost"`
	Rule        string  `json:"rule"`
}

// OrderOutcome is the decision record for one order.
type OrderOutcome struct {
	OrderID     order.ID                 `json:"orderId"`
	OrderNumber string                   `json:"orderNumber"`
	StoreID     int64                    `json:"storeId,omitempty"`
	Disposition Disposition              `json:"disposition"`
	Reason      string                   `json:"reason,omitempty"`
	Box         string                   `json:"box,omitempty"`
	WeightOz    float64                  `json:"weightOz,omitempty"`
	Rate        *Rate                    `json:"rate,omitempty"`
	Billing     *shipment.BillingAccount `json:"billing,omitempty"`
	TagsApplied []order.TagID            `json:"tagsApplied,omitempty"`
	Errors      []string                 `json:"errors,omitempty"`
}

// AddError appends a non-fatal error to the outcome.
func (o *OrderOutcome) AddError(err error) {
	if err != nil {
		o.Errors = append(o.Errors, err.Error())
	}
}

// TagAction is what happened to a tag.
type TagAction string

const (
	TagAdded   TagAction = "added"
	TagRemoved TagAction = "removed"
)

// TagChange records one tag written (or attempted) outside the main decision path,
// for batch tagging and split-shipment reconciliation.
type TagChange struct {
	OrderID order.ID    `json:"orderId"`
	Tag     order.TagID `json:"tag"`
	TagName string      `json:"tagName,omitempty"`
	Action  TagAction   `json:"action"`
	Error   string      `json:"error,omitempty"`
}
