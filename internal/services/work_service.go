package services

import (
	"context"
	"strings"
	"time"

	"hirenexus_backend/internal/logger"
	"hirenexus_backend/internal/models"
	"hirenexus_backend/internal/repositories"
	"hirenexus_backend/internal/services/dto"
	"hirenexus_backend/internal/store"
	"hirenexus_backend/internal/validator"
	"hirenexus_backend/pkg/apperrors"
)

// WorkService manages job postings: creating them and serving the browse
// and my-postings views.
type WorkService struct {
	store     store.Store
	works     *repositories.WorkRepository
	users     *repositories.UserRepository
	validator *validator.Validator
}

func NewWorkService(s store.Store, v *validator.Validator) *WorkService {
	return &WorkService{
		store:     s,
		works:     repositories.NewWorkRepository(),
		users:     repositories.NewUserRepository(),
		validator: v,
	}
}

// Post creates a work posting owned by the caller. The posting is written
// to the owner's collection and the global feed together.
func (s *WorkService) Post(ctx context.Context, userID string, req dto.PostWorkRequest) (*models.WorkPosting, error) {
	if err := s.validator.Validate(req); err != nil {
		if ve, ok := err.(*validator.ValidationError); ok {
			return nil, apperrors.ValidationError(ve.Errors)
		}
		return nil, apperrors.InternalError(err)
	}

	owner, err := s.users.FindByID(ctx, s.store, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	work := models.WorkPosting{
		ID:                  store.NewID(),
		Title:               strings.TrimSpace(req.Title),
		Description:         strings.TrimSpace(req.Description),
		Category:            req.Category,
		RequiredSkills:      req.RequiredSkills,
		Budget:              req.Budget,
		Duration:            req.Duration,
		Location:            req.Location,
		ExperienceLevel:     req.ExperienceLevel,
		Urgency:             req.Urgency,
		StartDate:           req.StartDate,
		Deadline:            req.Deadline,
		SpecialRequirements: req.SpecialRequirements,
		ContactPreference:   req.ContactPreference,
		PostedByID:          owner.ID,
		PostedBy:            owner.FullName,
		PostedByEmail:       owner.Email,
		PostedOn:            time.Now().UTC(),
		Status:              models.WorkStatusActive,
		Urgent:              req.Urgent || req.Urgency == "High",
	}

	if err := s.works.Create(ctx, s.store, work); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "work posted", "work_id", work.ID, "owner_id", owner.ID)

	return &work, nil
}

// Browse returns the global feed, newest first, with the caller's own
// postings filtered out.
func (s *WorkService) Browse(ctx context.Context, viewerID string) ([]models.WorkPosting, error) {
	projects, err := s.works.AllProjects(ctx, s.store)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	visible := make([]models.WorkPosting, 0, len(projects))
	for _, p := range projects {
		if p.PostedByID == viewerID {
			continue
		}
		visible = append(visible, p)
	}
	return visible, nil
}

// Mine returns the caller's own postings, newest first.
func (s *WorkService) Mine(ctx context.Context, userID string) ([]models.WorkPosting, error) {
	works, err := s.works.PostedBy(ctx, s.store, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return works, nil
}

func (s *WorkService) Find(ctx context.Context, workID string) (*models.WorkPosting, error) {
	work, err := s.works.FindProject(ctx, s.store, workID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrWorkNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return work, nil
}
