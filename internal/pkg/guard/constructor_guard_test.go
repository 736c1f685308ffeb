package guard_test

import (
	"errors"
	"testing"

	"fulfillment/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("should pass when constructed", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("should return the given error for a zero value", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("command not constructed")

		assert.Equal(t, expected, g.Validate(expected))
	})

	t.Run("should fall back to the default error", func(t *testing.T) {
		var g guard.ConstructorGuard

		assert.Equal(t, guard.ErrDefaultConstructorGuard, g.Validate(nil))
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})

	t.Run("should survive copies", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		cp := g

		require.NoError(t, cp.Validate(nil))
	})
}

func TestConstructorGuard_EmbeddedInCommand(t *testing.T) {
	type tagCommand struct {
		orderID int64
		tagID   int64
		guard   guard.ConstructorGuard
	}
	errNotConstructed := errors.New("tag command must be created via constructor")

	newTagCommand := func(orderID, tagID int64) (tagCommand, error) {
		if orderID <= 0 {
			return tagCommand{}, errors.New("order id must be positive")
		}
		return tagCommand{orderID: orderID, tagID: tagID, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("should validate a constructed command", func(t *testing.T) {
		cmd, err := newTagCommand(10, 145844)

		require.NoError(t, err)
		require.NoError(t, cmd.guard.Validate(errNotConstructed))
		assert.Equal(t, int64(10), cmd.orderID)
		assert.Equal(t, int64(145844), cmd.tagID)
	})

	t.Run("should reject a zero value command", func(t *testing.T) {
		var cmd tagCommand

		assert.Equal(t, errNotConstructed, cmd.guard.Validate(errNotConstructed))
	})
}

func BenchmarkConstructorGuard_Validate(b *testing.B) {
	g := guard.NewConstructorGuard()
	err := errors.New("not constructed")
	for range b.N {
		_ = g.Validate(err)
	}
}
