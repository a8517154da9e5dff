package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openSQLite(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "nested", "nutrimind.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestStores(t *testing.T) {
	stores := map[string]Store{
		"memory": NewMemory(),
		"sqlite": openSQLite(t),
	}
	for name, s := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := s.Get(ctx, KeyWeight)
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, s.Set(ctx, KeyWeight, "150"))
			require.NoError(t, s.Set(ctx, KeyWeight, "149.5"))
			v, err := s.Get(ctx, KeyWeight)
			require.NoError(t, err)
			assert.Equal(t, "149.5", v)

			require.NoError(t, s.Set(ctx, KeySteps, "42"))
			require.NoError(t, s.Set(ctx, "other", "1"))
			keys, err := s.Keys(ctx, KeyPrefix)
			require.NoError(t, err)
			assert.Equal(t, []string{KeySteps, KeyWeight}, keys)

			require.NoError(t, s.Remove(ctx, KeyWeight))
			_, err = s.Get(ctx, KeyWeight)
			assert.ErrorIs(t, err, ErrNotFound)
			assert.NoError(t, s.Remove(ctx, "never-written"))
		})
	}
}

func TestSQLiteSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nutrimind.sqlite")
	ctx := context.Background()

	db, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, Put(ctx, db, KeyMacroRatios, map[string]int{"carbs": 50, "protein": 25, "fat": 25}))
	require.NoError(t, db.Close())

	db, err = Open(path)
	require.NoError(t, err)
	defer db.Close()
	r, err := Lookup(ctx, db, KeyMacroRatios)
	require.NoError(t, err)
	assert.Equal(t, int64(50), r.Get("carbs").Int())
}

func TestLookup(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	_, err := Lookup(ctx, s, KeyFoods)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, KeyFoods, "{not json"))
	_, err = Lookup(ctx, s, KeyFoods)
	assert.ErrorIs(t, err, ErrMalformed)

	require.NoError(t, Put(ctx, s, KeyFavorites, []int{3, 1}))
	r, err := Lookup(ctx, s, KeyFavorites)
	require.NoError(t, err)
	assert.True(t, r.IsArray())
	assert.Equal(t, `[3,1]`, r.Raw)
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()

	s, err := OpenStore(ctx, Config{Driver: "memory"})
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, s)

	s, err = OpenStore(ctx, Config{Path: filepath.Join(t.TempDir(), "x.sqlite")})
	require.NoError(t, err)
	assert.IsType(t, &DB{}, s)
	s.Close()

	_, err = OpenStore(ctx, Config{Driver: "sqlite"})
	assert.Error(t, err)

	_, err = OpenStore(ctx, Config{Driver: "etcd"})
	assert.ErrorContains(t, err, "unknown storage driver")

	_, err = OpenStore(ctx, Config{Driver: "redis", RedisURL: "not a url"})
	assert.ErrorContains(t, err, "failed to parse Redis URL")
}

func TestAllKeysArePrefixed(t *testing.T) {
	seen := map[string]bool{}
	for _, k := range AllKeys {
		assert.Contains(t, k, KeyPrefix)
		assert.False(t, seen[k], "duplicate key %s", k)
		seen[k] = true
	}
	assert.Len(t, AllKeys, 17)
}
