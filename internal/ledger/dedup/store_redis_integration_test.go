//go:build integration

package dedup_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aidproof/internal/ledger/dedup"
	"aidproof/pkg/platform/sentinel"
	"aidproof/pkg/testutil/containers"
)

func TestRedisCache(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	rc := containers.NewRedisContainer(t)
	cache := dedup.NewRedisCache(rc.Client, 0)
	ctx := context.Background()

	t.Run("miss returns not found", func(t *testing.T) {
		require.NoError(t, rc.FlushAll(ctx))

		_, err := cache.Get(ctx, "deadbeef")
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("put then get", func(t *testing.T) {
		require.NoError(t, rc.FlushAll(ctx))

		require.NoError(t, cache.Put(ctx, "deadbeef", "0.0.7"))
		anchorID, err := cache.Get(ctx, "deadbeef")
		require.NoError(t, err)
		assert.Equal(t, "0.0.7", anchorID)
	})

	t.Run("ttl expires entries", func(t *testing.T) {
		require.NoError(t, rc.FlushAll(ctx))

		short := dedup.NewRedisCache(rc.Client, 100*time.Millisecond)
		require.NoError(t, short.Put(ctx, "cafe", "0.0.8"))

		time.Sleep(300 * time.Millisecond)
		_, err := short.Get(ctx, "cafe")
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})
}
