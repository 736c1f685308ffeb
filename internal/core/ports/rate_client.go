package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/shipment"
)

// RateClient quotes a package for the carrier named in the descriptor.
type RateClient interface {
	GetRates(ctx context.Context, d shipment.Descriptor) ([]shipment.Quote, error)
}
