package repositories

import (
	"context"

	"hirenexus_backend/internal/models"
	"hirenexus_backend/internal/store"
)

// ApplicationRepository reads and writes the "applications" collection.
type ApplicationRepository struct{}

func NewApplicationRepository() *ApplicationRepository {
	return &ApplicationRepository{}
}

func (r *ApplicationRepository) All(ctx context.Context, s store.Store) ([]models.Application, error) {
	applications, _, err := store.LoadCollection[models.Application](ctx, s, store.KeyApplications)
	return applications, err
}

func (r *ApplicationRepository) Append(ctx context.Context, s store.Store, application models.Application) error {
	return store.UpdateCollection(ctx, s, store.KeyApplications, func(applications []models.Application) ([]models.Application, error) {
		return append(applications, application), nil
	})
}

// ForApplicant returns the user's own applications, newest last.
func (r *ApplicationRepository) ForApplicant(ctx context.Context, s store.Store, applicantID string) ([]models.Application, error) {
	applications, err := r.All(ctx, s)
	if err != nil {
		return nil, err
	}
	mine := make([]models.Application, 0)
	for _, a := range applications {
		if a.ApplicantID == applicantID {
			mine = append(mine, a)
		}
	}
	return mine, nil
}

// ForService returns applications submitted against one posting.
func (r *ApplicationRepository) ForService(ctx context.Context, s store.Store, serviceID string) ([]models.Application, error) {
	applications, err := r.All(ctx, s)
	if err != nil {
		return nil, err
	}
	matched := make([]models.Application, 0)
	for _, a := range applications {
		if a.ServiceID == serviceID {
			matched = append(matched, a)
		}
	}
	return matched, nil
}
