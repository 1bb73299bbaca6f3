package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordrobe/internal/database"
	"wordrobe/internal/models"
)

// runKVSuite checks the behaviour every backend must share
func runKVSuite(t *testing.T, kv KV) {
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		_, err := kv.Get(ctx, "nope")
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("set and overwrite", func(t *testing.T) {
		require.NoError(t, kv.Set(ctx, "points", "10"))
		require.NoError(t, kv.Set(ctx, "points", "20"))
		v, err := kv.Get(ctx, "points")
		require.NoError(t, err)
		assert.Equal(t, "20", v)
	})

	t.Run("set many and entries", func(t *testing.T) {
		require.NoError(t, kv.SetMany(ctx, map[string]string{
			"p1:points": "5",
			"p1:owned":  `["avatar01"]`,
			"p2:points": "7",
			"p1_x%":     "literal",
		}))

		entries, err := kv.Entries(ctx, "p1:")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"p1:points": "5", "p1:owned": `["avatar01"]`}, entries)

		entries, err = kv.Entries(ctx, "p1_x%")
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("remove", func(t *testing.T) {
		require.NoError(t, kv.Remove(ctx, "p1:points", "never-existed"))
		_, err := kv.Get(ctx, "p1:points")
		assert.ErrorIs(t, err, models.ErrNotFound)
		require.NoError(t, kv.Remove(ctx))
	})

	t.Run("namespace", func(t *testing.T) {
		ns := Namespace(kv, "player:abc:")
		require.NoError(t, ns.Set(ctx, "wordrobe_points", "30"))
		require.NoError(t, ns.SetMany(ctx, map[string]string{"wordrobe_level": "2"}))

		raw, err := kv.Get(ctx, "player:abc:wordrobe_points")
		require.NoError(t, err)
		assert.Equal(t, "30", raw)

		entries, err := ns.Entries(ctx, "wordrobe_")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"wordrobe_points": "30", "wordrobe_level": "2"}, entries)

		require.NoError(t, ns.Remove(ctx, "wordrobe_level"))
		_, err = ns.Get(ctx, "wordrobe_level")
		assert.ErrorIs(t, err, models.ErrNotFound)

		// closing a namespace leaves the parent usable
		require.NoError(t, ns.Close())
		assert.NoError(t, kv.Ping(ctx))
	})
}

func TestMemoryStore(t *testing.T) {
	runKVSuite(t, NewMemoryStore())
}

func TestSQLStore(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	ctx := context.Background()
	db, err := database.OpenSQLite(ctx, filepath.Join(t.TempDir(), "kv.db"))
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations(ctx, ""))

	kv := NewSQLStore(db)
	defer kv.Close()
	runKVSuite(t, kv)
}

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("REDIS_ADDRESS")
	if addr == "" {
		t.Skip("REDIS_ADDRESS not set")
	}
	ctx := context.Background()
	prefix := "wordrobe-test:" + uuid.NewString() + ":"
	kv, err := NewRedisStore(ctx, addr, os.Getenv("REDIS_PASSWORD"), 0, prefix)
	require.NoError(t, err)

	t.Cleanup(func() {
		defer kv.Close()
		entries, err := kv.Entries(ctx, "")
		if err != nil {
			return
		}
		keys := make([]string, 0, len(entries))
		for k := range entries {
			keys = append(keys, k)
		}
		kv.Remove(ctx, keys...)
	})

	runKVSuite(t, kv)
}

func TestEscapePattern(t *testing.T) {
	assert.Equal(t, `a\*b\?c\[d\]`, escapePattern("a*b?c[d]"))
}
