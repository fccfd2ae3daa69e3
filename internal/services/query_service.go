package services

import (
	"context"
	"fmt"
	"time"

	"hirenexus_backend/internal/email"
	"hirenexus_backend/internal/logger"
	"hirenexus_backend/internal/models"
	"hirenexus_backend/internal/repositories"
	"hirenexus_backend/internal/services/dto"
	"hirenexus_backend/internal/store"
	"hirenexus_backend/internal/validator"
	"hirenexus_backend/pkg/apperrors"
)

// QueryService stores landing-page contact form submissions and sends an
// acknowledgement email. The email is best-effort: a failed send is
// logged and the submission still succeeds.
type QueryService struct {
	store     store.Store
	queries   *repositories.QueryRepository
	mailer    email.Provider
	validator *validator.Validator
}

func NewQueryService(s store.Store, mailer email.Provider, v *validator.Validator) *QueryService {
	return &QueryService{
		store:     s,
		queries:   repositories.NewQueryRepository(),
		mailer:    mailer,
		validator: v,
	}
}

func (s *QueryService) Submit(ctx context.Context, req dto.QueryRequest) (*models.ContactQuery, error) {
	if err := s.validator.Validate(req); err != nil {
		if ve, ok := err.(*validator.ValidationError); ok {
			return nil, apperrors.ValidationError(ve.Errors)
		}
		return nil, apperrors.InternalError(err)
	}

	query := models.ContactQuery{
		ID:          store.NewID(),
		Name:        req.Name,
		Email:       req.Email,
		Query:       req.Query,
		SubmittedAt: time.Now().UTC(),
	}

	if err := s.queries.Append(ctx, s.store, query); err != nil {
		return nil, apperrors.InternalError(err)
	}

	ack := &email.Email{
		To:      []string{query.Email},
		Subject: "We received your message",
		Body: fmt.Sprintf("Hi %s,\n\nThanks for reaching out. We received your message and will get back to you shortly.\n\nYour message:\n%s\n",
			query.Name, query.Query),
	}
	if err := s.mailer.Send(ack); err != nil {
		logger.CtxWarn(ctx, "query acknowledgement email failed", "query_id", query.ID, "error", err)
	}

	return &query, nil
}

func (s *QueryService) All(ctx context.Context) ([]models.ContactQuery, error) {
	queries, err := s.queries.All(ctx, s.store)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return queries, nil
}
