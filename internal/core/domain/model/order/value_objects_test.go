package order_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLineItem(t *testing.T) {
	t.Run("should trim SKU", func(t *testing.T) {
		it, err := order.NewLineItem(" 8IN-PLANT ", 3, "Monstera")

		require.NoError(t, err)
		assert.Equal(t, "8IN-PLANT", it.SKU())
		assert.Equal(t, 3, it.Quantity())
		assert.Equal(t, "Monstera", it.Name())
	})

	t.Run("should reject zero quantity", func(t *testing.T) {
		_, err := order.NewLineItem("X", 0, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})

	t.Run("should detect discount lines case-insensitively", func(t *testing.T) {
		it, err := order.NewLineItem("Total-Discount", 1, "")

		require.NoError(t, err)
		assert.True(t, it.IsDiscount())
	})
}

func TestAddress(t *testing.T) {
	t.Run("should ignore case and whitespace in keys", func(t *testing.T) {
		a := order.Address{Name: "Jane Doe", Street1: "1 Main St", City: "Austin", PostalCode: "78701", Country: "US"}
		b := order.Address{Name: " jane doe", Street1: "1 MAIN ST ", City: "austin", PostalCode: "78701", Country: "us"}

		assert.Equal(t, a.Key(), b.Key())
	})

	t.Run("should give a different key for a different street", func(t *testing.T) {
		a := order.Address{Street1: "1 Main St"}
		b := order.Address{Street1: "2 Main St"}

		assert.NotEqual(t, a.Key(), b.Key())
	})

	t.Run("should use the fallback country in the domestic check", func(t *testing.T) {
		domestic := []string{"US", "USA"}

		assert.True(t, order.Address{Country: "usa"}.IsDomestic(domestic, "US"))
		assert.True(t, order.Address{}.IsDomestic(domestic, "US"))
		assert.False(t, order.Address{Country: "CA"}.IsDomestic(domestic, "US"))
	})
}

func TestTagSet(t *testing.T) {
	t.Run("should make the zero value usable", func(t *testing.T) {
		var s order.TagSet

		assert.Equal(t, 0, s.Len())
		assert.True(t, s.Add(1))
		assert.Equal(t, 1, s.Len())
	})

	t.Run("should drop duplicates and keep first-seen order", func(t *testing.T) {
		s := order.NewTagSet(3, 1, 3, 2)

		assert.Equal(t, []order.TagID{3, 1, 2}, s.Slice())
	})

	t.Run("should return a copy from Slice", func(t *testing.T) {
		s := order.NewTagSet(1)
		out := s.Slice()
		out[0] = 99

		assert.True(t, s.Has(1))
	})
}

func TestParseStatus(t *testing.T) {
	t.Run("should parse known statuses", func(t *testing.T) {
		s, err := order.ParseStatus("awaiting_shipment")

		require.NoError(t, err)
		assert.Equal(t, order.AwaitingShipment, s)
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := order.ParseStatus("teleported")

		require.Error(t, err)
	})
}
