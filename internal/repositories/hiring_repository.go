package repositories

import (
	"context"

	"hirenexus_backend/internal/models"
	"hirenexus_backend/internal/store"
)

// HiringRepository reads and writes the "hiring-requests" collection.
type HiringRepository struct{}

func NewHiringRepository() *HiringRepository {
	return &HiringRepository{}
}

func (r *HiringRepository) All(ctx context.Context, s store.Store) ([]models.HiringRequest, error) {
	requests, _, err := store.LoadCollection[models.HiringRequest](ctx, s, store.KeyHiringRequests)
	return requests, err
}

func (r *HiringRepository) Append(ctx context.Context, s store.Store, request models.HiringRequest) error {
	return store.UpdateCollection(ctx, s, store.KeyHiringRequests, func(requests []models.HiringRequest) ([]models.HiringRequest, error) {
		return append(requests, request), nil
	})
}

// ForHirer returns the requests a seeker has sent.
func (r *HiringRepository) ForHirer(ctx context.Context, s store.Store, hirerID string) ([]models.HiringRequest, error) {
	requests, err := r.All(ctx, s)
	if err != nil {
		return nil, err
	}
	mine := make([]models.HiringRequest, 0)
	for _, h := range requests {
		if h.HirerID == hirerID {
			mine = append(mine, h)
		}
	}
	return mine, nil
}

// ForFreelancer returns the requests a provider has received.
func (r *HiringRepository) ForFreelancer(ctx context.Context, s store.Store, freelancerID string) ([]models.HiringRequest, error) {
	requests, err := r.All(ctx, s)
	if err != nil {
		return nil, err
	}
	received := make([]models.HiringRequest, 0)
	for _, h := range requests {
		if h.FreelancerID == freelancerID {
			received = append(received, h)
		}
	}
	return received, nil
}
