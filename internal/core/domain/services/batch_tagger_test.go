package services_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func newBatchTagger() services.BatchTagger {
	return services.NewBatchTagger(services.BatchTaggerConfig{
		SKURules: []services.SKURule{
			{Tag: 112296, Markers: []string{"bundle"}},
			{Tag: 112293, Markers: []string{"4in"}, MaxQuantity: 1},
			{Tag: 112294, Markers: []string{"4in"}, MinQuantity: 2},
			{Tag: 112295, Markers: []string{"6in"}},
			{Tag: 126425, Markers: []string{"8in", "10in"}},
		},
		ProductNameRules: []services.ProductNameRule{
			{Tag: 100783, Markers: []string{"air plant"}},
			{Tag: 118141, Markers: []string{"planter"}},
		},
	})
}

func TestBatchTagger_Tags(t *testing.T) {
	b := newBatchTagger()
	products := catalog.NewProducts([]catalog.Product{
		{SKU: "AP-3", Name: "Air Plant Trio"},
		{SKU: "POT-1", Name: "Ceramic Planter"},
	})

	t.Run("should give one 4 inch plant the single tag", func(t *testing.T) {
		o := newRoutineOrder(t, withItems(item(t, "4IN-PLANT", 1)))

		assert.Equal(t, []order.TagID{112293}, b.Tags(o, nil))
	})

	t.Run("should count quantity across matching lines", func(t *testing.T) {
		o := newRoutineOrder(t, withItems(item(t, "4IN-PLANT", 1), item(t, "4IN-FERN", 1)))

		assert.Equal(t, []order.TagID{112294}, b.Tags(o, nil))
	})

	t.Run("should combine several markers and product names", func(t *testing.T) {
		o := newRoutineOrder(t, withItems(item(t, "10IN-FIG", 1), item(t, "AP-3", 1), item(t, "pot-1", 2)))

		assert.Equal(t, []order.TagID{126425, 100783, 118141}, b.Tags(o, products))
	})

	t.Run("should not return tags already present", func(t *testing.T) {
		o := newRoutineOrder(t, withItems(item(t, "6IN-PLANT", 1)), withTags(112295))

		assert.Empty(t, b.Tags(o, nil))
	})

	t.Run("should never match discount lines", func(t *testing.T) {
		discounts := services.NewBatchTagger(services.BatchTaggerConfig{
			SKURules: []services.SKURule{{Tag: 1, Markers: []string{"discount"}}},
		})
		o := newRoutineOrder(t, withItems(item(t, "total-discount", 1)))

		assert.Empty(t, discounts.Tags(o, nil))
	})
}
