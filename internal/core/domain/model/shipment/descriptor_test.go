package shipment_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptor_Validate(t *testing.T) {
	valid := shipment.Descriptor{
		CarrierCode:    "ups",
		FromPostalCode: "92821",
		ToCountry:      "US",
		Weight:         kernel.MustNewWeight(16, kernel.Ounces),
		Dimensions:     kernel.MustNewDimensions(10, 8, 6, kernel.Inches),
		Confirmation:   shipment.ConfirmationNone,
	}

	t.Run("should accept a complete descriptor", func(t *testing.T) {
		require.NoError(t, valid.Validate())
	})

	t.Run("should require carrier, origin and country", func(t *testing.T) {
		err := shipment.Descriptor{
			Weight:     valid.Weight,
			Dimensions: valid.Dimensions,
		}.Validate()

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "carrierCode")
		assert.Contains(t, err.Error(), "fromPostalCode")
		assert.Contains(t, err.Error(), "toCountry")
	})

	t.Run("should reject unconstructed weight", func(t *testing.T) {
		d := valid
		d.Weight = kernel.Weight{}

		require.ErrorIs(t, d.Validate(), kernel.ErrWeightIsNotConstructed)
	})

	t.Run("should not mutate the original in WithCarrier", func(t *testing.T) {
		d := valid.WithCarrier("fedex")

		assert.Equal(t, "fedex", d.CarrierCode)
		assert.Equal(t, "ups", valid.CarrierCode)
	})
}

func TestQuote_String(t *testing.T) {
	q := shipment.Quote{CarrierCode: "ups", ServiceCode: "ups_ground", ShipmentCost: 8.5, OtherCost: 1.25}

	assert.Equal(t, "ups/ups_ground $8.50", q.String())
}
