package services

import (
	"context"
	"strings"
	"time"

	"hirenexus_backend/internal/auth"
	"hirenexus_backend/internal/logger"
	"hirenexus_backend/internal/models"
	"hirenexus_backend/internal/repositories"
	"hirenexus_backend/internal/services/dto"
	"hirenexus_backend/internal/store"
	"hirenexus_backend/internal/validator"
	"hirenexus_backend/pkg/apperrors"
)

// AuthService handles registration and login.
type AuthService struct {
	store     store.Store
	users     *repositories.UserRepository
	validator *validator.Validator
}

func NewAuthService(s store.Store, v *validator.Validator) *AuthService {
	return &AuthService{
		store:     s,
		users:     repositories.NewUserRepository(),
		validator: v,
	}
}

// Register creates an account and signs the user in. Email uniqueness is
// case-insensitive and re-checked inside the store transaction.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		if ve, ok := err.(*validator.ValidationError); ok {
			return nil, apperrors.ValidationError(ve.Errors)
		}
		return nil, apperrors.InternalError(err)
	}

	role := models.UserRole(req.UserType)
	if role == models.UserRoleProvider && strings.TrimSpace(req.Description) == "" {
		return nil, apperrors.ValidationError(map[string]string{
			"description": "Service providers must describe their services",
		})
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := models.User{
		ID:               store.NewID(),
		FullName:         strings.TrimSpace(req.FullName),
		Email:            strings.TrimSpace(req.Email),
		PasswordHash:     hash,
		Role:             role,
		SelectedServices: req.SelectedServices,
		Description:      strings.TrimSpace(req.Description),
		Experience:       req.Experience,
		PreviousProjects: req.PreviousProjects,
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.users.Create(ctx, s.store, user); err != nil {
		if apperrors.Is(err, repositories.ErrEmailExists) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, apperrors.InternalError(err)
	}

	token, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "user registered", "user_id", user.ID, "role", user.Role)

	return &dto.AuthResponse{Token: token, User: user.Public()}, nil
}

// Login verifies credentials and issues a token. A missing account and a
// wrong password produce the same error.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		if ve, ok := err.(*validator.ValidationError); ok {
			return nil, apperrors.ValidationError(ve.Errors)
		}
		return nil, apperrors.InternalError(err)
	}

	user, err := s.users.FindByEmail(ctx, s.store, strings.TrimSpace(req.Email))
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "user logged in", "user_id", user.ID)

	return &dto.AuthResponse{Token: token, User: user.Public()}, nil
}
