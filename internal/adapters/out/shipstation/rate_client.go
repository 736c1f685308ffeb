package shipstation

import (
	"context"
	"net/http"

	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/ports"
)

var _ ports.RateClient = (*RateClient)(nil)

// RateClient rate-shops one carrier per call.
type RateClient struct {
	client *Client
}

func NewRateClient(client *Client) *RateClient {
	return &RateClient{client: client}
}

// GetRates returns the carrier's quotes for d. The descriptor is validated before any
// request is sent.
func (c *RateClient) GetRates(ctx context.Context, d shipment.Descriptor) ([]shipment.Quote, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	var rates []rateDTO
	if err := c.client.do(ctx, "get rates", http.MethodPost, "/shipments/getrates", nil, newRateRequest(d), &rates); err != nil {
		return nil, err
	}

	quotes := make([]shipment.Quote, 0, len(rates))
	for _, r := range rates {
		quotes = append(quotes, r.toDomain(d.CarrierCode))
	}
	return quotes, nil
}
