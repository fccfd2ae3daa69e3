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

// HiringService handles seekers sending direct hiring requests to
// freelancers. Like applications, the request record and the synthesized
// conversation message commit in one transaction, and the conversation is
// resolved idempotently: hiring someone you already have a thread with
// reuses that thread.
type HiringService struct {
	store         store.Store
	hirings       *repositories.HiringRepository
	users         *repositories.UserRepository
	conversations *repositories.ConversationRepository
	messages      *repositories.MessageRepository
	cache         cache.UnreadCache
	bus           *notify.Bus
	validator     *validator.Validator
}

func NewHiringService(s store.Store, c cache.UnreadCache, bus *notify.Bus, v *validator.Validator) *HiringService {
	return &HiringService{
		store:         s,
		hirings:       repositories.NewHiringRepository(),
		users:         repositories.NewUserRepository(),
		conversations: repositories.NewConversationRepository(),
		messages:      repositories.NewMessageRepository(),
		cache:         c,
		bus:           bus,
		validator:     v,
	}
}

// Hire submits a hiring request to a freelancer.
func (s *HiringService) Hire(ctx context.Context, userID string, req dto.HireRequest) (*models.HiringRequest, error) {
	if err := s.validator.Validate(req); err != nil {
		if ve, ok := err.(*validator.ValidationError); ok {
			return nil, apperrors.ValidationError(ve.Errors)
		}
		return nil, apperrors.InternalError(err)
	}
	if req.FreelancerID == userID {
		return nil, apperrors.ErrInvalidOperation("hiring", "Cannot hire yourself")
	}

	freelancer, err := s.users.FindByID(ctx, s.store, req.FreelancerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if freelancer.Role != models.UserRoleProvider {
		return nil, apperrors.ErrInvalidOperation("hiring", "Hiring requests can only be sent to service providers")
	}

	request := models.HiringRequest{
		ID:           store.NewID(),
		HirerID:      userID,
		FreelancerID: freelancer.ID,
		ProjectTitle: req.ProjectTitle,
		Description:  req.Description,
		Budget:       req.Budget,
		Timeline:     req.Timeline,
		Urgency:      req.Urgency,
		Requirements: req.Requirements,
		CreatedAt:    time.Now().UTC(),
		Status:       models.ApplicationStatusPending,
	}

	message := models.Message{
		ID:         store.NewID(),
		SenderID:   userID,
		ReceiverID: freelancer.ID,
		Content: fmt.Sprintf("Hiring request: %s. Budget: %s, timeline: %s. %s",
			req.ProjectTitle, req.Budget, req.Timeline, req.Description),
		Timestamp: request.CreatedAt,
		Type:      models.MessageTypeHiring,
	}

	err = s.store.Txn(ctx, func(tx store.Store) error {
		if err := s.hirings.Append(ctx, tx, request); err != nil {
			return err
		}

		conversation, _, err := s.conversations.FindOrCreate(ctx, tx, userID, freelancer.ID)
		if err != nil {
			return err
		}
		if err := s.messages.Append(ctx, tx, conversation.ID, message); err != nil {
			return err
		}
		return s.conversations.SetLastMessage(ctx, tx, conversation.ID, message)
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "hiring request submitted",
		"request_id", request.ID,
		"hirer_id", userID,
		"freelancer_id", freelancer.ID)

	if err := s.cache.Invalidate(ctx, freelancer.ID); err != nil {
		logger.CtxWarn(ctx, "unread cache invalidation failed", "user_id", freelancer.ID, "error", err)
	}
	s.bus.Publish(freelancer.ID)

	return &request, nil
}

// Sent returns hiring requests the caller has issued.
func (s *HiringService) Sent(ctx context.Context, userID string) ([]models.HiringRequest, error) {
	requests, err := s.hirings.ForHirer(ctx, s.store, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return requests, nil
}

// Received returns hiring requests addressed to the caller.
func (s *HiringService) Received(ctx context.Context, userID string) ([]models.HiringRequest, error) {
	requests, err := s.hirings.ForFreelancer(ctx, s.store, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return requests, nil
}
