package repositories

import (
	"context"

	"hirenexus_backend/internal/models"
	"hirenexus_backend/internal/store"
)

// QueryRepository reads and writes the "queries" collection.
type QueryRepository struct{}

func NewQueryRepository() *QueryRepository {
	return &QueryRepository{}
}

func (r *QueryRepository) All(ctx context.Context, s store.Store) ([]models.ContactQuery, error) {
	queries, _, err := store.LoadCollection[models.ContactQuery](ctx, s, store.KeyQueries)
	return queries, err
}

func (r *QueryRepository) Append(ctx context.Context, s store.Store, query models.ContactQuery) error {
	return store.UpdateCollection(ctx, s, store.KeyQueries, func(queries []models.ContactQuery) ([]models.ContactQuery, error) {
		return append(queries, query), nil
	})
}
