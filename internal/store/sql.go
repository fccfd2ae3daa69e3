package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// kvEntry is the backing row for one stored document.
type kvEntry struct {
	Key       string         `gorm:"primaryKey;size:255"`
	Value     datatypes.JSON `gorm:"type:jsonb;not null"`
	Version   int64          `gorm:"not null;default:1"`
	UpdatedAt time.Time
}

func (kvEntry) TableName() string {
	return "kv_entries"
}

// SQLStore implements Store on a gorm database.
type SQLStore struct {
	db *gorm.DB
}

func NewSQLStore(db *gorm.DB) (*SQLStore, error) {
	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		return nil, err
	}
	return &SQLStore{db: db}, nil
}

func (s *SQLStore) Get(ctx context.Context, key string) (*Entry, error) {
	var row kvEntry
	err := s.db.WithContext(ctx).First(&row, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrKeyNotFound
		}
		return nil, err
	}
	return &Entry{Value: json.RawMessage(row.Value), Version: row.Version}, nil
}

func (s *SQLStore) Put(ctx context.Context, key string, value json.RawMessage, version int64) error {
	if version == 0 {
		err := s.db.WithContext(ctx).Create(&kvEntry{
			Key:     key,
			Value:   datatypes.JSON(value),
			Version: 1,
		}).Error
		if err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrVersionConflict
			}
			return err
		}
		return nil
	}

	result := s.db.WithContext(ctx).Model(&kvEntry{}).
		Where("key = ? AND version = ?", key, version).
		Updates(map[string]interface{}{
			"value":   datatypes.JSON(value),
			"version": version + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVersionConflict
	}
	return nil
}

func (s *SQLStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	err := s.db.WithContext(ctx).Model(&kvEntry{}).
		Where("key LIKE ?", prefix+"%").
		Order("key").
		Pluck("key", &keys).Error
	return keys, err
}

// Txn runs fn inside a database transaction. Reads within the transaction
// take row locks so two writers serialize instead of both passing the
// version check.
func (s *SQLStore) Txn(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&sqlTxn{db: tx})
	})
}

// sqlTxn is the transactional view of SQLStore.
type sqlTxn struct {
	db *gorm.DB
}

func (t *sqlTxn) Get(ctx context.Context, key string) (*Entry, error) {
	var row kvEntry
	err := t.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&row, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrKeyNotFound
		}
		return nil, err
	}
	return &Entry{Value: json.RawMessage(row.Value), Version: row.Version}, nil
}

func (t *sqlTxn) Put(ctx context.Context, key string, value json.RawMessage, version int64) error {
	return (&SQLStore{db: t.db}).Put(ctx, key, value, version)
}

func (t *sqlTxn) Keys(ctx context.Context, prefix string) ([]string, error) {
	return (&SQLStore{db: t.db}).Keys(ctx, prefix)
}

// Txn nests by reusing the surrounding transaction.
func (t *sqlTxn) Txn(ctx context.Context, fn func(tx Store) error) error {
	return fn(t)
}
