package kernel_test

import (
	"math"
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWeight(t *testing.T) {
	t.Run("should create weight in ounces", func(t *testing.T) {
		w, err := kernel.NewWeight(56, kernel.Ounces)

		require.NoError(t, err)
		require.NoError(t, w.Validate())
		assert.InDelta(t, 56.0, w.Value(), 1e-9)
		assert.Equal(t, kernel.Ounces, w.Unit())
		assert.Equal(t, "56 ounces", w.String())
	})

	t.Run("should default empty unit to ounces", func(t *testing.T) {
		w, err := kernel.NewWeight(16, "")

		require.NoError(t, err)
		assert.Equal(t, kernel.Ounces, w.Unit())
	})

	t.Run("should convert pounds to ounces", func(t *testing.T) {
		w, err := kernel.NewWeight(2, kernel.Pounds)

		require.NoError(t, err)
		assert.InDelta(t, 32.0, w.Ounces(), 1e-9)
		assert.True(t, w.IsEqual(kernel.MustNewWeight(32, kernel.Ounces)))
	})

	t.Run("should accept zero", func(t *testing.T) {
		w, err := kernel.NewWeight(0, kernel.Ounces)

		require.NoError(t, err)
		assert.True(t, w.IsZero())
	})

	t.Run("should accept a heavy computed weight", func(t *testing.T) {
		w, err := kernel.NewWeight(2408, kernel.Ounces)

		require.NoError(t, err)
		assert.InDelta(t, 2408.0, w.Ounces(), 1e-9)
	})

	t.Run("should reject negative weight", func(t *testing.T) {
		_, err := kernel.NewWeight(-1, kernel.Ounces)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject NaN", func(t *testing.T) {
		_, err := kernel.NewWeight(math.NaN(), kernel.Ounces)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject unknown unit", func(t *testing.T) {
		_, err := kernel.NewWeight(1, "stone")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestWeight_Validate(t *testing.T) {
	t.Run("should fail for zero value", func(t *testing.T) {
		var w kernel.Weight

		require.ErrorIs(t, w.Validate(), errs.ErrValueIsRequired)
	})
}

func TestNewDimensions(t *testing.T) {
	t.Run("should create dimensions", func(t *testing.T) {
		d, err := kernel.NewDimensions(12, 10, 8, kernel.Inches)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.InDelta(t, 12.0, d.Length(), 1e-9)
		assert.InDelta(t, 10.0, d.Width(), 1e-9)
		assert.InDelta(t, 8.0, d.Height(), 1e-9)
		assert.Equal(t, "12x10x8 inches", d.String())
		assert.False(t, d.IsZero())
	})

	t.Run("should flag a zero side", func(t *testing.T) {
		d, err := kernel.NewDimensions(0, 0, 0, "")

		require.NoError(t, err)
		assert.True(t, d.IsZero())
		assert.Equal(t, kernel.Inches, d.Unit())
	})

	t.Run("should join errors for every bad side", func(t *testing.T) {
		_, err := kernel.NewDimensions(-1, 2, -3, kernel.Inches)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "length")
		assert.Contains(t, err.Error(), "height")
		assert.NotContains(t, err.Error(), "width")
	})

	t.Run("should compare by value", func(t *testing.T) {
		a := kernel.MustNewDimensions(10, 8, 6, kernel.Inches)
		b := kernel.MustNewDimensions(10, 8, 6, kernel.Inches)

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(kernel.MustNewDimensions(10, 8, 7, kernel.Inches)))
	})
}
