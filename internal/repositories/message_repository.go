package repositories

import (
	"context"

	"hirenexus_backend/internal/models"
	"hirenexus_backend/internal/store"
)

// MessageRepository reads and writes per-conversation threads
// ("messages-<conversationId>" keys). Threads are append-only; the read
// flag is the only field ever rewritten.
type MessageRepository struct{}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{}
}

// Thread returns the whole thread in storage order, which equals append
// order and temporal order.
func (r *MessageRepository) Thread(ctx context.Context, s store.Store, conversationID string) ([]models.Message, error) {
	messages, _, err := store.LoadCollection[models.Message](ctx, s, store.MessagesKey(conversationID))
	return messages, err
}

// Append adds the message to the end of the thread.
func (r *MessageRepository) Append(ctx context.Context, s store.Store, conversationID string, message models.Message) error {
	return store.UpdateCollection(ctx, s, store.MessagesKey(conversationID), func(messages []models.Message) ([]models.Message, error) {
		return append(messages, message), nil
	})
}

// MarkReadFor flips read=true on every message in the thread addressed to
// the receiver, leaving other receivers' messages untouched. Returns how
// many messages changed.
func (r *MessageRepository) MarkReadFor(ctx context.Context, s store.Store, conversationID, receiverID string) (int, error) {
	changed := 0
	err := store.UpdateCollection(ctx, s, store.MessagesKey(conversationID), func(messages []models.Message) ([]models.Message, error) {
		for i := range messages {
			if messages[i].ReceiverID == receiverID && !messages[i].Read {
				messages[i].Read = true
				changed++
			}
		}
		return messages, nil
	})
	if err != nil {
		return 0, err
	}
	return changed, nil
}

// CountUnreadFor counts messages in the thread addressed to the user and
// not yet read.
func (r *MessageRepository) CountUnreadFor(ctx context.Context, s store.Store, conversationID, userID string) (int, error) {
	messages, err := r.Thread(ctx, s, conversationID)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, m := range messages {
		if m.ReceiverID == userID && !m.Read {
			count++
		}
	}
	return count, nil
}
