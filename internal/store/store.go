package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrKeyNotFound = errors.New("store: key not found")
	// ErrVersionConflict means another writer updated the key between the
	// read and the write. The caller's change is discarded, never merged.
	ErrVersionConflict = errors.New("store: version conflict")
)

// Entry is one stored document with its concurrency token.
type Entry struct {
	Value   json.RawMessage
	Version int64
}

// Store is a versioned key-value table holding one JSON document per key.
// Collections are read whole, mutated in memory, and written back whole;
// the version check turns concurrent whole-document overwrites into
// explicit conflicts instead of silent last-write-wins.
type Store interface {
	// Get returns the entry for key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) (*Entry, error)

	// Put writes value under key. version must equal the version read
	// (0 for a key that did not exist); on mismatch it returns
	// ErrVersionConflict and writes nothing.
	Put(ctx context.Context, key string, value json.RawMessage, version int64) error

	// Keys lists all keys with the given prefix.
	Keys(ctx context.Context, prefix string) ([]string, error)

	// Txn runs fn against a transactional view. All writes commit
	// together or not at all.
	Txn(ctx context.Context, fn func(tx Store) error) error
}

// NewID issues a store-layer identifier. Identifiers are minted here rather
// than from caller-side timestamps, which collide under concurrent creation.
func NewID() string {
	return uuid.New().String()
}
