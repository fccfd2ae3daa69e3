package store

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
)

// MemoryStore is an in-process Store used by tests and tooling. It keeps
// the same version and transaction semantics as the SQL store: writes
// state the version they read, and a failed transaction leaves nothing
// behind.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]Entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]Entry)}
}

func (s *MemoryStore) Get(ctx context.Context, key string) (*Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return getLocked(s.entries, key)
}

func (s *MemoryStore) Put(ctx context.Context, key string, value json.RawMessage, version int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return putLocked(s.entries, key, value, version)
}

func (s *MemoryStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return keysLocked(s.entries, prefix), nil
}

// Txn serializes against all other operations. On error the pre-transaction
// snapshot is restored.
func (s *MemoryStore) Txn(ctx context.Context, fn func(tx Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make(map[string]Entry, len(s.entries))
	for k, v := range s.entries {
		snapshot[k] = v
	}

	if err := fn(&memTxn{entries: s.entries}); err != nil {
		s.entries = snapshot
		return err
	}
	return nil
}

// memTxn operates on the live map while the owning store holds its lock.
type memTxn struct {
	entries map[string]Entry
}

func (t *memTxn) Get(ctx context.Context, key string) (*Entry, error) {
	return getLocked(t.entries, key)
}

func (t *memTxn) Put(ctx context.Context, key string, value json.RawMessage, version int64) error {
	return putLocked(t.entries, key, value, version)
}

func (t *memTxn) Keys(ctx context.Context, prefix string) ([]string, error) {
	return keysLocked(t.entries, prefix), nil
}

func (t *memTxn) Txn(ctx context.Context, fn func(tx Store) error) error {
	return fn(t)
}

func getLocked(entries map[string]Entry, key string) (*Entry, error) {
	e, ok := entries[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	value := make(json.RawMessage, len(e.Value))
	copy(value, e.Value)
	return &Entry{Value: value, Version: e.Version}, nil
}

func putLocked(entries map[string]Entry, key string, value json.RawMessage, version int64) error {
	current, exists := entries[key]
	if version == 0 {
		if exists {
			return ErrVersionConflict
		}
	} else if !exists || current.Version != version {
		return ErrVersionConflict
	}

	stored := make(json.RawMessage, len(value))
	copy(stored, value)
	entries[key] = Entry{Value: stored, Version: version + 1}
	return nil
}

func keysLocked(entries map[string]Entry, prefix string) []string {
	keys := make([]string, 0)
	for k := range entries {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
