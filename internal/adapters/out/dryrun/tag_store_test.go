package dryrun_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"fulfillment/internal/adapters/out/dryrun"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagStore(t *testing.T) {
	t.Run("should log instead of writing", func(t *testing.T) {
		var buf bytes.Buffer
		store := dryrun.NewTagStore(slog.New(slog.NewTextHandler(&buf, nil)))

		require.NoError(t, store.AddTag(t.Context(), 10, 145844))
		require.NoError(t, store.RemoveTag(t.Context(), 10, 142954))

		out := buf.String()
		assert.Contains(t, out, "would add tag")
		assert.Contains(t, out, "tag=145844")
		assert.Contains(t, out, "would remove tag")
		assert.Contains(t, out, "component=dry_run")
	})

	t.Run("should report a cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		err := dryrun.NewTagStore(nil).AddTag(ctx, 1, 1)

		assert.ErrorIs(t, err, context.Canceled)
	})
}
