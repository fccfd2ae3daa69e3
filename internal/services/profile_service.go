package services

import (
	"context"
	"strings"

	"hirenexus_backend/internal/models"
	"hirenexus_backend/internal/repositories"
	"hirenexus_backend/internal/services/dto"
	"hirenexus_backend/internal/store"
	"hirenexus_backend/internal/validator"
	"hirenexus_backend/pkg/apperrors"
)

// ProfileService reads and edits user profiles.
type ProfileService struct {
	store     store.Store
	users     *repositories.UserRepository
	validator *validator.Validator
}

func NewProfileService(s store.Store, v *validator.Validator) *ProfileService {
	return &ProfileService{
		store:     s,
		users:     repositories.NewUserRepository(),
		validator: v,
	}
}

func (s *ProfileService) Get(ctx context.Context, userID string) (*models.PublicUser, error) {
	user, err := s.users.FindByID(ctx, s.store, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	public := user.Public()
	return &public, nil
}

// Providers lists freelancer profiles for the directory, optionally
// filtered to those offering the given service.
func (s *ProfileService) Providers(ctx context.Context, service string) ([]models.PublicUser, error) {
	users, err := s.users.All(ctx, s.store)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	providers := make([]models.PublicUser, 0)
	for _, u := range users {
		if u.Role != models.UserRoleProvider {
			continue
		}
		if service != "" && !offersService(u, service) {
			continue
		}
		providers = append(providers, u.Public())
	}
	return providers, nil
}

func offersService(u models.User, service string) bool {
	for _, s := range u.SelectedServices {
		if strings.EqualFold(s, service) {
			return true
		}
	}
	return false
}

// Update applies the provided fields to the caller's profile. Fields left
// nil stay unchanged. A provider cannot clear their service description.
func (s *ProfileService) Update(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*models.PublicUser, error) {
	if err := s.validator.Validate(req); err != nil {
		if ve, ok := err.(*validator.ValidationError); ok {
			return nil, apperrors.ValidationError(ve.Errors)
		}
		return nil, apperrors.InternalError(err)
	}

	user, err := s.users.FindByID(ctx, s.store, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	updated := *user
	if req.FullName != nil {
		updated.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.SelectedServices != nil {
		updated.SelectedServices = *req.SelectedServices
	}
	if req.Description != nil {
		updated.Description = strings.TrimSpace(*req.Description)
	}
	if req.Experience != nil {
		updated.Experience = *req.Experience
	}
	if req.PreviousProjects != nil {
		updated.PreviousProjects = *req.PreviousProjects
	}

	if updated.Role == models.UserRoleProvider && updated.Description == "" {
		return nil, apperrors.ValidationError(map[string]string{
			"description": "Service providers must describe their services",
		})
	}

	if err := s.users.Update(ctx, s.store, updated); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	public := updated.Public()
	return &public, nil
}
