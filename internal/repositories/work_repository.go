package repositories

import (
	"context"
	"errors"

	"hirenexus_backend/internal/models"
	"hirenexus_backend/internal/store"
)

var ErrWorkNotFound = errors.New("work posting not found")

// WorkRepository reads and writes work postings. A posting lives in two
// places, as in the original store: the owner's "posted-works-<userId>"
// collection and the global "all-projects" feed. Both copies are written
// in the same transaction so they cannot diverge.
type WorkRepository struct{}

func NewWorkRepository() *WorkRepository {
	return &WorkRepository{}
}

func (r *WorkRepository) AllProjects(ctx context.Context, s store.Store) ([]models.WorkPosting, error) {
	projects, _, err := store.LoadCollection[models.WorkPosting](ctx, s, store.KeyAllProjects)
	return projects, err
}

func (r *WorkRepository) PostedBy(ctx context.Context, s store.Store, userID string) ([]models.WorkPosting, error) {
	works, _, err := store.LoadCollection[models.WorkPosting](ctx, s, store.PostedWorksKey(userID))
	return works, err
}

func (r *WorkRepository) FindProject(ctx context.Context, s store.Store, workID string) (*models.WorkPosting, error) {
	projects, err := r.AllProjects(ctx, s)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].ID == workID {
			return &projects[i], nil
		}
	}
	return nil, ErrWorkNotFound
}

// Create prepends the posting to the owner's collection and the global
// feed; newest postings come first in both.
func (r *WorkRepository) Create(ctx context.Context, s store.Store, work models.WorkPosting) error {
	return s.Txn(ctx, func(tx store.Store) error {
		err := store.UpdateCollection(ctx, tx, store.PostedWorksKey(work.PostedByID), func(works []models.WorkPosting) ([]models.WorkPosting, error) {
			return append([]models.WorkPosting{work}, works...), nil
		})
		if err != nil {
			return err
		}
		return store.UpdateCollection(ctx, tx, store.KeyAllProjects, func(projects []models.WorkPosting) ([]models.WorkPosting, error) {
			return append([]models.WorkPosting{work}, projects...), nil
		})
	})
}

// IncrementApplications bumps the received-applications counter on both
// stored copies of the posting.
func (r *WorkRepository) IncrementApplications(ctx context.Context, s store.Store, workID, ownerID string) error {
	return s.Txn(ctx, func(tx store.Store) error {
		bump := func(works []models.WorkPosting) ([]models.WorkPosting, error) {
			for i := range works {
				if works[i].ID == workID {
					works[i].ApplicationsReceived++
					return works, nil
				}
			}
			return nil, ErrWorkNotFound
		}

		if err := store.UpdateCollection(ctx, tx, store.KeyAllProjects, bump); err != nil {
			return err
		}
		return store.UpdateCollection(ctx, tx, store.PostedWorksKey(ownerID), bump)
	})
}
