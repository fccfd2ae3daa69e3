package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Name string `json:"name"`
}

func TestLoadCollectionMissingKey(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	items, version, err := LoadCollection[item](ctx, s, "nope")
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, int64(0), version)
}

func TestLoadCollectionCorruptValue(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Put(ctx, "things", json.RawMessage(`{not json]`), 0))

	// Corrupt document reads as empty but keeps its version, so the next
	// save replaces it instead of conflicting.
	items, version, err := LoadCollection[item](ctx, s, "things")
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, int64(1), version)

	require.NoError(t, SaveCollection(ctx, s, "things", []item{{Name: "fresh"}}, version))

	items, _, err = LoadCollection[item](ctx, s, "things")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "fresh", items[0].Name)
}

func TestUpdateCollectionAppends(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	for _, name := range []string{"a", "b", "c"} {
		name := name
		err := UpdateCollection(ctx, s, "things", func(items []item) ([]item, error) {
			return append(items, item{Name: name}), nil
		})
		require.NoError(t, err)
	}

	items, _, err := LoadCollection[item](ctx, s, "things")
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "a", items[0].Name)
	assert.Equal(t, "c", items[2].Name)
}

func TestUpdateCollectionErrorWritesNothing(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	boom := errors.New("rejected")

	err := UpdateCollection(ctx, s, "things", func(items []item) ([]item, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = s.Get(ctx, "things")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		assert.False(t, seen[id])
		seen[id] = true
	}
}
