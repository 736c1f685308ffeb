package services_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestSplitShipmentDetector_Plan(t *testing.T) {
	d := services.NewSplitShipmentDetector(services.SplitConfig{SplitTag: splitTag})
	home := order.Address{Name: "Jane", Street1: "1 Main St", City: "Austin", PostalCode: "78701", Country: "US"}
	work := order.Address{Name: "Jane", Street1: "9 Office Rd", City: "Austin", PostalCode: "78702", Country: "US"}

	t.Run("should tag duplicates", func(t *testing.T) {
		plan := d.Plan([]*order.Order{
			newRoutineOrder(t, withID(1), withShipTo(home)),
			newRoutineOrder(t, withID(2), withShipTo(home)),
			newRoutineOrder(t, withID(3), withShipTo(work)),
		})

		assert.Equal(t, []order.ID{1, 2}, plan.Add)
		assert.Empty(t, plan.Remove)
	})

	t.Run("should remove the tag from a lone tagged order", func(t *testing.T) {
		plan := d.Plan([]*order.Order{
			newRoutineOrder(t, withID(1), withShipTo(home), withTags(splitTag)),
			newRoutineOrder(t, withID(3), withShipTo(work)),
		})

		assert.Equal(t, []order.ID{1}, plan.Remove)
		assert.Empty(t, plan.Add)
	})

	t.Run("should never tag noted orders", func(t *testing.T) {
		plan := d.Plan([]*order.Order{
			newRoutineOrder(t, withID(1), withShipTo(home), withTags(splitTag), withNotes("Note: Your order ships in 2 boxes")),
			newRoutineOrder(t, withID(2), withShipTo(home), withNotes("Note: Your order ships in 2 boxes")),
			newRoutineOrder(t, withID(4), withShipTo(home), withTags(splitTag)),
		})

		assert.Equal(t, []order.ID{1}, plan.Remove)
		assert.Empty(t, plan.Add)
	})

	t.Run("should leave correctly tagged orders alone", func(t *testing.T) {
		plan := d.Plan([]*order.Order{
			newRoutineOrder(t, withID(1), withShipTo(home), withTags(splitTag)),
			newRoutineOrder(t, withID(2), withShipTo(home), withTags(splitTag)),
		})

		assert.True(t, plan.IsEmpty())
	})

	t.Run("should not treat an order listed twice as its own duplicate", func(t *testing.T) {
		o := newRoutineOrder(t, withID(1), withShipTo(home))

		assert.True(t, d.Plan([]*order.Order{o, o}).IsEmpty())
	})
}
