package services

import (
	"context"

	"hirenexus_backend/internal/cache"
	"hirenexus_backend/internal/logger"
	"hirenexus_backend/internal/repositories"
	"hirenexus_backend/internal/store"
	"hirenexus_backend/pkg/apperrors"
)

// UnreadService aggregates a user's total unread count across every
// conversation they participate in. The total is always derived from the
// message threads; the cache in front only shortcuts the rescan and is
// invalidated on every send and read.
type UnreadService struct {
	store         store.Store
	conversations *repositories.ConversationRepository
	messages      *repositories.MessageRepository
	cache         cache.UnreadCache
}

func NewUnreadService(s store.Store, c cache.UnreadCache) *UnreadService {
	return &UnreadService{
		store:         s,
		conversations: repositories.NewConversationRepository(),
		messages:      repositories.NewMessageRepository(),
		cache:         c,
	}
}

// CountFor returns the user's total unread count, serving from cache when
// possible. Cache errors degrade to a recompute.
func (s *UnreadService) CountFor(ctx context.Context, userID string) (int, error) {
	count, ok, err := s.cache.Get(ctx, userID)
	if err != nil {
		logger.CtxWarn(ctx, "unread cache read failed", "user_id", userID, "error", err)
	} else if ok {
		return count, nil
	}

	count, err = s.Recompute(ctx, userID)
	if err != nil {
		return 0, err
	}

	if err := s.cache.Set(ctx, userID, count); err != nil {
		logger.CtxWarn(ctx, "unread cache write failed", "user_id", userID, "error", err)
	}
	return count, nil
}

// Recompute scans the user's threads and sums messages addressed to them
// that are not yet read. It never consults the cache.
func (s *UnreadService) Recompute(ctx context.Context, userID string) (int, error) {
	mine, err := s.conversations.ForUser(ctx, s.store, userID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}

	total := 0
	for _, c := range mine {
		unread, err := s.messages.CountUnreadFor(ctx, s.store, c.ID, userID)
		if err != nil {
			return 0, apperrors.InternalError(err)
		}
		total += unread
	}
	return total, nil
}
