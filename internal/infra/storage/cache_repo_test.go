package storage

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *CacheRepo {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	db, err := Open(context.Background(), dsn, PoolOptions{MaxOpenConns: 2})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, Migrate(context.Background(), db, nil))
	_, err = db.Exec(`TRUNCATE response_cache`)
	require.NoError(t, err)
	return NewCacheRepo(db, time.Hour)
}

func TestCacheRepoRoundTrip(t *testing.T) {
	r := openTestDB(t)
	ctx := context.Background()

	_, ok, err := r.Get(ctx, "countries")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, r.Set(ctx, "countries", []byte(`[{"ID":1}]`)))
	require.NoError(t, r.Set(ctx, "countries", []byte(`[{"ID":2}]`)))

	b, ok, err := r.Get(ctx, "countries")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"ID":2}]`, string(b))
}

func TestCacheRepoDeleteMany(t *testing.T) {
	r := openTestDB(t)
	ctx := context.Background()
	for _, k := range []string{"profile:1::", "country-matches:1", "country:1"} {
		require.NoError(t, r.Set(ctx, k, []byte(`{}`)))
	}

	require.NoError(t, r.Delete(ctx, "profile:1::", "country-matches:1"))

	_, ok, _ := r.Get(ctx, "profile:1::")
	assert.False(t, ok)
	_, ok, _ = r.Get(ctx, "country:1")
	assert.True(t, ok)
	assert.NoError(t, r.Delete(ctx))
}

func TestCacheRepoPrune(t *testing.T) {
	r := openTestDB(t)
	ctx := context.Background()
	require.NoError(t, r.Set(ctx, "global", []byte(`{}`)))
	_, err := r.db.ExecContext(ctx, `UPDATE response_cache SET fetched_at = now() - INTERVAL '2 days'`)
	require.NoError(t, err)
	require.NoError(t, r.Set(ctx, "players", []byte(`[]`)))

	n, err := r.Prune(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, ok, _ := r.Get(ctx, "players")
	assert.True(t, ok)
}
