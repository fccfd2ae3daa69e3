package repositories

import (
	"context"
	"errors"
	"strings"

	"hirenexus_backend/internal/models"
	"hirenexus_backend/internal/store"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailExists  = errors.New("email already registered")
)

// UserRepository reads and writes the "users" collection. Methods take the
// store handle so callers can pass a transactional view.
type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) All(ctx context.Context, s store.Store) ([]models.User, error) {
	users, _, err := store.LoadCollection[models.User](ctx, s, store.KeyUsers)
	return users, err
}

func (r *UserRepository) FindByID(ctx context.Context, s store.Store, id string) (*models.User, error) {
	users, err := r.All(ctx, s)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, ErrUserNotFound
}

// FindByEmail matches case-insensitively; email is the uniqueness key.
func (r *UserRepository) FindByEmail(ctx context.Context, s store.Store, email string) (*models.User, error) {
	users, err := r.All(ctx, s)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i], nil
		}
	}
	return nil, ErrUserNotFound
}

// Create appends the user, re-checking email uniqueness under the
// transaction so two concurrent signups cannot both pass.
func (r *UserRepository) Create(ctx context.Context, s store.Store, user models.User) error {
	return store.UpdateCollection(ctx, s, store.KeyUsers, func(users []models.User) ([]models.User, error) {
		for i := range users {
			if strings.EqualFold(users[i].Email, user.Email) {
				return nil, ErrEmailExists
			}
		}
		return append(users, user), nil
	})
}

// Update replaces the stored record with the same ID.
func (r *UserRepository) Update(ctx context.Context, s store.Store, user models.User) error {
	return store.UpdateCollection(ctx, s, store.KeyUsers, func(users []models.User) ([]models.User, error) {
		for i := range users {
			if users[i].ID == user.ID {
				users[i] = user
				return users, nil
			}
		}
		return nil, ErrUserNotFound
	})
}
