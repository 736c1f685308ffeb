package commands_test

import (
	"errors"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTagEnsurer_Ensure(t *testing.T) {
	t.Run("should skip the remote call when the tag is present", func(t *testing.T) {
		tags := new(MockTagStore)
		o := newOrder(t, 1, withTags(processedTag))

		added, err := commands.NewTagEnsurer(tags).Ensure(t.Context(), o, processedTag)

		require.NoError(t, err)
		assert.False(t, added)
		tags.AssertNotCalled(t, "AddTag", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should add once and then be a no-op", func(t *testing.T) {
		tags := new(MockTagStore)
		tags.On("AddTag", mock.Anything, order.ID(1), edgeTag).Return(nil).Once()
		o := newOrder(t, 1)
		e := commands.NewTagEnsurer(tags)

		first, err := e.Ensure(t.Context(), o, edgeTag)
		require.NoError(t, err)
		second, err := e.Ensure(t.Context(), o, edgeTag)
		require.NoError(t, err)

		assert.True(t, first)
		assert.False(t, second)
		assert.True(t, o.HasTag(edgeTag))
		tags.AssertExpectations(t)
	})

	t.Run("should leave the order unchanged when the platform refuses", func(t *testing.T) {
		tags := new(MockTagStore)
		tags.On("AddTag", mock.Anything, order.ID(1), edgeTag).Return(errors.New("boom")).Once()
		o := newOrder(t, 1)

		_, err := commands.NewTagEnsurer(tags).Ensure(t.Context(), o, edgeTag)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "add tag 145681 to order 1")
		assert.False(t, o.HasTag(edgeTag))
	})
}

func TestTagEnsurer_Clear(t *testing.T) {
	t.Run("should remove a present tag", func(t *testing.T) {
		tags := new(MockTagStore)
		tags.On("RemoveTag", mock.Anything, order.ID(1), splitTag).Return(nil).Once()
		o := newOrder(t, 1, withTags(splitTag))

		removed, err := commands.NewTagEnsurer(tags).Clear(t.Context(), o, splitTag)

		require.NoError(t, err)
		assert.True(t, removed)
		assert.False(t, o.HasTag(splitTag))
	})

	t.Run("should skip an absent tag", func(t *testing.T) {
		tags := new(MockTagStore)

		removed, err := commands.NewTagEnsurer(tags).Clear(t.Context(), newOrder(t, 1), splitTag)

		require.NoError(t, err)
		assert.False(t, removed)
		tags.AssertNotCalled(t, "RemoveTag", mock.Anything, mock.Anything, mock.Anything)
	})
}
