package services

import (
	"context"
	"fmt"
	"time"

	"hirenexus_backend/internal/cache"
	"hirenexus_backend/internal/logger"
	"hirenexus_backend/internal/models"
	"hirenexus_backend/internal/notify"
	"hirenexus_backend/internal/repositories"
	"hirenexus_backend/internal/services/dto"
	"hirenexus_backend/internal/store"
	"hirenexus_backend/internal/validator"
	"hirenexus_backend/pkg/apperrors"
)

// ApplicationService handles providers applying to work postings. The
// application record, the conversation, the synthesized thread message,
// and the posting's applications counter are written in one store
// transaction: either all of them land or none do.
type ApplicationService struct {
	store         store.Store
	applications  *repositories.ApplicationRepository
	works         *repositories.WorkRepository
	users         *repositories.UserRepository
	conversations *repositories.ConversationRepository
	messages      *repositories.MessageRepository
	cache         cache.UnreadCache
	bus           *notify.Bus
	validator     *validator.Validator
}

func NewApplicationService(s store.Store, c cache.UnreadCache, bus *notify.Bus, v *validator.Validator) *ApplicationService {
	return &ApplicationService{
		store:         s,
		applications:  repositories.NewApplicationRepository(),
		works:         repositories.NewWorkRepository(),
		users:         repositories.NewUserRepository(),
		conversations: repositories.NewConversationRepository(),
		messages:      repositories.NewMessageRepository(),
		cache:         c,
		bus:           bus,
		validator:     v,
	}
}

// Apply submits an application against a posting. Validation runs before
// any write, so a rejected submission leaves zero records behind.
func (s *ApplicationService) Apply(ctx context.Context, userID string, req dto.ApplyRequest) (*models.Application, error) {
	if err := s.validator.Validate(req); err != nil {
		if ve, ok := err.(*validator.ValidationError); ok {
			return nil, apperrors.ValidationError(ve.Errors)
		}
		return nil, apperrors.InternalError(err)
	}
	if req.ResumeSize > dto.MaxResumeSize {
		return nil, apperrors.ErrFileTooLarge
	}

	applicant, err := s.users.FindByID(ctx, s.store, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	work, err := s.works.FindProject(ctx, s.store, req.ServiceID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrWorkNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if work.PostedByID == userID {
		return nil, apperrors.ErrInvalidOperation("application", "Cannot apply to your own posting")
	}

	application := models.Application{
		ID:            store.NewID(),
		ServiceID:     work.ID,
		ServiceTitle:  work.Title,
		ApplicantID:   applicant.ID,
		ApplicantName: applicant.FullName,
		Description:   req.Description,
		ResumeName:    req.ResumeName,
		ResumeSize:    req.ResumeSize,
		AppliedAt:     time.Now().UTC(),
		Status:        models.ApplicationStatusPending,
	}

	message := models.Message{
		ID:         store.NewID(),
		SenderID:   applicant.ID,
		ReceiverID: work.PostedByID,
		Content:    fmt.Sprintf("New application for %q: %s", work.Title, req.Description),
		Timestamp:  application.AppliedAt,
		Type:       models.MessageTypeApplication,
		FileName:   req.ResumeName,
		FileSize:   req.ResumeSize,
	}

	err = s.store.Txn(ctx, func(tx store.Store) error {
		if err := s.appendUnique(ctx, tx, application); err != nil {
			return err
		}

		conversation, _, err := s.conversations.FindOrCreate(ctx, tx, applicant.ID, work.PostedByID)
		if err != nil {
			return err
		}
		if err := s.messages.Append(ctx, tx, conversation.ID, message); err != nil {
			return err
		}
		if err := s.conversations.SetLastMessage(ctx, tx, conversation.ID, message); err != nil {
			return err
		}

		return s.works.IncrementApplications(ctx, tx, work.ID, work.PostedByID)
	})
	if err != nil {
		if appErr, ok := apperrors.AsAppError(err); ok {
			return nil, appErr
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "application submitted",
		"application_id", application.ID,
		"work_id", work.ID,
		"applicant_id", applicant.ID)

	if err := s.cache.Invalidate(ctx, work.PostedByID); err != nil {
		logger.CtxWarn(ctx, "unread cache invalidation failed", "user_id", work.PostedByID, "error", err)
	}
	s.bus.Publish(work.PostedByID)

	return &application, nil
}

// appendUnique appends the application after re-checking, under the
// transaction, that the applicant has not already applied to the posting.
func (s *ApplicationService) appendUnique(ctx context.Context, tx store.Store, application models.Application) error {
	return store.UpdateCollection(ctx, tx, store.KeyApplications, func(applications []models.Application) ([]models.Application, error) {
		for _, a := range applications {
			if a.ServiceID == application.ServiceID && a.ApplicantID == application.ApplicantID {
				return nil, apperrors.ErrInvalidOperation("application", "You have already applied to this posting")
			}
		}
		return append(applications, application), nil
	})
}

// Mine returns the caller's submitted applications.
func (s *ApplicationService) Mine(ctx context.Context, userID string) ([]models.Application, error) {
	applications, err := s.applications.ForApplicant(ctx, s.store, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return applications, nil
}

// ForWork returns the applications received by a posting. Only the
// posting's owner may see them.
func (s *ApplicationService) ForWork(ctx context.Context, userID, workID string) ([]models.Application, error) {
	work, err := s.works.FindProject(ctx, s.store, workID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrWorkNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if work.PostedByID != userID {
		return nil, apperrors.NewForbiddenError("Only the posting owner can view its applications")
	}

	applications, err := s.applications.ForService(ctx, s.store, workID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return applications, nil
}
