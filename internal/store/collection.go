package store

import (
	"context"
	"encoding/json"
	"errors"
)

// LoadCollection decodes the JSON array under key. A missing key is an
// empty collection. A corrupt document also decodes as empty — the
// version is kept so the next save replaces the damaged value instead of
// conflicting forever.
func LoadCollection[T any](ctx context.Context, s Store, key string) ([]T, int64, error) {
	e, err := s.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil, 0, nil
		}
		return nil, 0, err
	}

	var items []T
	if err := json.Unmarshal(e.Value, &items); err != nil {
		return nil, e.Version, nil
	}
	return items, e.Version, nil
}

// SaveCollection writes the whole collection back under the version it was
// loaded at.
func SaveCollection[T any](ctx context.Context, s Store, key string, items []T, version int64) error {
	if items == nil {
		items = []T{}
	}
	value, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.Put(ctx, key, value, version)
}

// UpdateCollection applies fn to the collection under key inside a
// transaction: load, mutate, save, all against the same version.
func UpdateCollection[T any](ctx context.Context, s Store, key string, fn func(items []T) ([]T, error)) error {
	return s.Txn(ctx, func(tx Store) error {
		items, version, err := LoadCollection[T](ctx, tx, key)
		if err != nil {
			return err
		}
		updated, err := fn(items)
		if err != nil {
			return err
		}
		return SaveCollection(ctx, tx, key, updated, version)
	})
}
