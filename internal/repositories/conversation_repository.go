package repositories

import (
	"context"
	"errors"
	"time"

	"hirenexus_backend/internal/models"
	"hirenexus_backend/internal/store"
)

var ErrConversationNotFound = errors.New("conversation not found")

// ConversationRepository reads and writes the "conversations" collection.
type ConversationRepository struct{}

func NewConversationRepository() *ConversationRepository {
	return &ConversationRepository{}
}

func (r *ConversationRepository) All(ctx context.Context, s store.Store) ([]models.Conversation, error) {
	conversations, _, err := store.LoadCollection[models.Conversation](ctx, s, store.KeyConversations)
	return conversations, err
}

func (r *ConversationRepository) FindByID(ctx context.Context, s store.Store, id string) (*models.Conversation, error) {
	conversations, err := r.All(ctx, s)
	if err != nil {
		return nil, err
	}
	for i := range conversations {
		if conversations[i].ID == id {
			return &conversations[i], nil
		}
	}
	return nil, ErrConversationNotFound
}

// FindBetween scans for the conversation whose participant pair, compared
// as a set, equals {userA, userB}.
func (r *ConversationRepository) FindBetween(ctx context.Context, s store.Store, userA, userB string) (*models.Conversation, error) {
	conversations, err := r.All(ctx, s)
	if err != nil {
		return nil, err
	}
	for i := range conversations {
		if conversations[i].Matches(userA, userB) {
			return &conversations[i], nil
		}
	}
	return nil, ErrConversationNotFound
}

// ForUser returns every conversation the user participates in.
func (r *ConversationRepository) ForUser(ctx context.Context, s store.Store, userID string) ([]models.Conversation, error) {
	conversations, err := r.All(ctx, s)
	if err != nil {
		return nil, err
	}
	mine := make([]models.Conversation, 0)
	for _, c := range conversations {
		if c.HasParticipant(userID) {
			mine = append(mine, c)
		}
	}
	return mine, nil
}

// FindOrCreate resolves the conversation for a participant pair, creating
// it only when no match exists. Scan and insert happen under one
// transaction, so concurrent resolutions for the same pair converge on a
// single conversation. Returns whether a new conversation was created.
func (r *ConversationRepository) FindOrCreate(ctx context.Context, s store.Store, userA, userB string) (*models.Conversation, bool, error) {
	var result models.Conversation
	created := false

	err := store.UpdateCollection(ctx, s, store.KeyConversations, func(conversations []models.Conversation) ([]models.Conversation, error) {
		for i := range conversations {
			if conversations[i].Matches(userA, userB) {
				result = conversations[i]
				return conversations, nil
			}
		}
		created = true
		result = models.Conversation{
			ID:           store.NewID(),
			Participants: []string{userA, userB},
			CreatedAt:    time.Now().UTC(),
		}
		return append(conversations, result), nil
	})
	if err != nil {
		return nil, false, err
	}
	return &result, created, nil
}

func (r *ConversationRepository) Create(ctx context.Context, s store.Store, conversation models.Conversation) error {
	return store.UpdateCollection(ctx, s, store.KeyConversations, func(conversations []models.Conversation) ([]models.Conversation, error) {
		return append(conversations, conversation), nil
	})
}

// SetLastMessage refreshes the denormalized last-message pointer used by
// inbox listings.
func (r *ConversationRepository) SetLastMessage(ctx context.Context, s store.Store, conversationID string, message models.Message) error {
	return store.UpdateCollection(ctx, s, store.KeyConversations, func(conversations []models.Conversation) ([]models.Conversation, error) {
		for i := range conversations {
			if conversations[i].ID == conversationID {
				msg := message
				conversations[i].LastMessage = &msg
				return conversations, nil
			}
		}
		return nil, ErrConversationNotFound
	})
}
