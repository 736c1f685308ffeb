package commands_test

import (
	"errors"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBatchHandler(products *MockProductCatalog, tags *MockTagStore) *commands.AssignBatchTagsCommandHandler {
	tagger := services.NewBatchTagger(services.BatchTaggerConfig{
		SKURules:         []services.SKURule{{Tag: 112295, Markers: []string{"6in"}}},
		ProductNameRules: []services.ProductNameRule{{Tag: 100783, Markers: []string{"air plant"}}},
	})
	names := commands.TriageTags{Names: map[order.TagID]string{112295: "BATCH #4 - 6 Inch"}}
	return commands.NewAssignBatchTagsCommandHandler(products, tags, tagger, names, discardLogger())
}

func TestAssignBatchTagsCommandHandler_Handle(t *testing.T) {
	t.Run("should fetch the catalog once and tag every order", func(t *testing.T) {
		products, tags := new(MockProductCatalog), new(MockTagStore)
		products.On("ListProducts", mock.Anything).Return([]catalog.Product{{SKU: "AP-1", Name: "Air Plant Single"}}, nil).Once()
		tags.On("AddTag", mock.Anything, order.ID(1), order.TagID(112295)).Return(nil).Once()
		tags.On("AddTag", mock.Anything, order.ID(2), order.TagID(100783)).Return(errors.New("timeout")).Once()

		cmd, err := commands.NewAssignBatchTagsCommand([]*order.Order{
			newOrder(t, 1, withItems(lineItem(t, "6IN-PLANT", 1))),
			newOrder(t, 2, withItems(lineItem(t, "ap-1", 1))),
		})
		require.NoError(t, err)

		changes, err := newBatchHandler(products, tags).Handle(t.Context(), cmd)

		require.NoError(t, err)
		require.Len(t, changes, 2)
		assert.Equal(t, "BATCH #4 - 6 Inch", changes[0].TagName)
		assert.Empty(t, changes[0].Error)
		assert.Equal(t, "100783", changes[1].TagName)
		assert.Contains(t, changes[1].Error, "timeout")
		mock.AssertExpectationsForObjects(t, products, tags)
	})

	t.Run("should write nothing when the catalog is unavailable", func(t *testing.T) {
		products, tags := new(MockProductCatalog), new(MockTagStore)
		products.On("ListProducts", mock.Anything).Return(nil, errors.New("500")).Once()

		cmd, err := commands.NewAssignBatchTagsCommand([]*order.Order{newOrder(t, 1, withItems(lineItem(t, "6IN-PLANT", 1)))})
		require.NoError(t, err)

		_, err = newBatchHandler(products, tags).Handle(t.Context(), cmd)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "list products")
		tags.AssertNotCalled(t, "AddTag", mock.Anything, mock.Anything, mock.Anything)
	})
}
