package services

import (
	"context"
	"path/filepath"
	"sort"
	"strings"
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

// ChatService owns conversations and message threads: resolving the
// thread for a participant pair, listing the inbox, reading threads, and
// sending messages.
type ChatService struct {
	store         store.Store
	conversations *repositories.ConversationRepository
	messages      *repositories.MessageRepository
	users         *repositories.UserRepository
	cache         cache.UnreadCache
	bus           *notify.Bus
	validator     *validator.Validator
}

func NewChatService(s store.Store, c cache.UnreadCache, bus *notify.Bus, v *validator.Validator) *ChatService {
	return &ChatService{
		store:         s,
		conversations: repositories.NewConversationRepository(),
		messages:      repositories.NewMessageRepository(),
		users:         repositories.NewUserRepository(),
		cache:         c,
		bus:           bus,
		validator:     v,
	}
}

// StartConversation resolves the thread between the caller and a peer,
// creating it if none exists. Resolving twice returns the same thread.
func (s *ChatService) StartConversation(ctx context.Context, userID, peerID string) (*models.Conversation, error) {
	if peerID == userID {
		return nil, apperrors.ErrInvalidOperation("chat", "Cannot start a conversation with yourself")
	}
	if _, err := s.users.FindByID(ctx, s.store, peerID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	conversation, created, err := s.conversations.FindOrCreate(ctx, s.store, userID, peerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if created {
		logger.CtxInfo(ctx, "conversation created", "conversation_id", conversation.ID)
	}
	return conversation, nil
}

// Conversations lists the caller's inbox: every thread they participate
// in, decorated with the peer's profile and the per-thread unread count,
// most recently active first. Unread counts are derived from the threads
// on every call, never read from a stored counter.
func (s *ChatService) Conversations(ctx context.Context, userID string) ([]dto.ConversationSummary, error) {
	mine, err := s.conversations.ForUser(ctx, s.store, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	summaries := make([]dto.ConversationSummary, 0, len(mine))
	for _, c := range mine {
		summary := dto.ConversationSummary{
			ID:        c.ID,
			CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339),
		}
		if c.LastMessage != nil {
			msg := *c.LastMessage
			summary.LastMessage = &msg
		}

		if peerID := c.OtherParticipant(userID); peerID != "" {
			if peer, err := s.users.FindByID(ctx, s.store, peerID); err == nil {
				public := peer.Public()
				summary.Peer = &public
			}
		}

		unread, err := s.messages.CountUnreadFor(ctx, s.store, c.ID, userID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		summary.UnreadCount = unread

		summaries = append(summaries, summary)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return lastActivity(summaries[i]) > lastActivity(summaries[j])
	})

	return summaries, nil
}

func lastActivity(s dto.ConversationSummary) int64 {
	if s.LastMessage != nil {
		return s.LastMessage.Timestamp.UnixNano()
	}
	t, err := time.Parse(time.RFC3339, s.CreatedAt)
	if err != nil {
		return 0
	}
	return t.UnixNano()
}

// Messages returns the thread in order and marks every message addressed
// to the caller as read. Messages addressed to the other participant are
// never touched. When anything was marked, the caller's cached unread
// total is invalidated and a refresh event published.
func (s *ChatService) Messages(ctx context.Context, userID, conversationID string) ([]models.Message, error) {
	if _, err := s.requireParticipant(ctx, userID, conversationID); err != nil {
		return nil, err
	}

	changed, err := s.messages.MarkReadFor(ctx, s.store, conversationID, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if changed > 0 {
		s.invalidateAndNotify(ctx, userID)
	}

	thread, err := s.messages.Thread(ctx, s.store, conversationID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return thread, nil
}

// SendMessage appends a message to the conversation and refreshes its
// last-message pointer in the same transaction.
func (s *ChatService) SendMessage(ctx context.Context, userID, conversationID string, req dto.SendMessageRequest) (*models.Message, error) {
	if err := s.validator.Validate(req); err != nil {
		if ve, ok := err.(*validator.ValidationError); ok {
			return nil, apperrors.ValidationError(ve.Errors)
		}
		return nil, apperrors.InternalError(err)
	}

	conversation, err := s.requireParticipant(ctx, userID, conversationID)
	if err != nil {
		return nil, err
	}

	msgType := models.MessageType(req.Type)
	if req.Type == "" {
		msgType = models.MessageTypeText
		if req.FileName != "" {
			msgType = models.MessageTypeFile
		}
	}
	if msgType == models.MessageTypeFile {
		if req.FileName == "" {
			return nil, apperrors.NewBadRequestError("File messages require a file name")
		}
		if !allowedAttachment(req.FileName) {
			return nil, apperrors.ErrInvalidFileType
		}
		if req.FileSize > dto.MaxAttachmentSize {
			return nil, apperrors.ErrFileTooLarge
		}
	}

	message := models.Message{
		ID:         store.NewID(),
		SenderID:   userID,
		ReceiverID: conversation.OtherParticipant(userID),
		Content:    req.Content,
		Timestamp:  time.Now().UTC(),
		Type:       msgType,
		FileName:   req.FileName,
		FileSize:   req.FileSize,
	}

	err = s.store.Txn(ctx, func(tx store.Store) error {
		if err := s.messages.Append(ctx, tx, conversationID, message); err != nil {
			return err
		}
		return s.conversations.SetLastMessage(ctx, tx, conversationID, message)
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.invalidateAndNotify(ctx, message.ReceiverID)

	return &message, nil
}

// allowedAttachment whitelists chat attachment types. Only metadata is
// stored, but the listing still gates what clients will be told to render.
func allowedAttachment(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf", ".doc", ".docx", ".txt", ".png", ".jpg", ".jpeg", ".gif", ".zip":
		return true
	}
	return false
}

// requireParticipant loads the conversation and checks membership.
func (s *ChatService) requireParticipant(ctx context.Context, userID, conversationID string) (*models.Conversation, error) {
	conversation, err := s.conversations.FindByID(ctx, s.store, conversationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrConversationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if !conversation.HasParticipant(userID) {
		return nil, apperrors.ErrNotParticipant
	}
	return conversation, nil
}

// invalidateAndNotify drops the user's cached unread total and signals
// the notification worker. Cache failures are logged, not surfaced.
func (s *ChatService) invalidateAndNotify(ctx context.Context, userID string) {
	if userID == "" {
		return
	}
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		logger.CtxWarn(ctx, "unread cache invalidation failed", "user_id", userID, "error", err)
	}
	s.bus.Publish(userID)
}
