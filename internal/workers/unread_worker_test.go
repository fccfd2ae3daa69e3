package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hirenexus_backend/internal/cache"
	"hirenexus_backend/internal/models"
	"hirenexus_backend/internal/notify"
	"hirenexus_backend/internal/repositories"
	"hirenexus_backend/internal/services"
	"hirenexus_backend/internal/store"
)

type fakeNotifier struct {
	mu        sync.Mutex
	pushes    map[string][]UnreadPayload
	connected []string
}

func newFakeNotifier(connected ...string) *fakeNotifier {
	return &fakeNotifier{
		pushes:    make(map[string][]UnreadPayload),
		connected: connected,
	}
}

func (f *fakeNotifier) PushToUser(userID string, payload any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pushes[userID] = append(f.pushes[userID], payload.(UnreadPayload))
}

func (f *fakeNotifier) ConnectedUsers() []string {
	return f.connected
}

func (f *fakeNotifier) lastPush(userID string) (UnreadPayload, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	pushes := f.pushes[userID]
	if len(pushes) == 0 {
		return UnreadPayload{}, false
	}
	return pushes[len(pushes)-1], true
}

func seedUnread(t *testing.T, s store.Store, receiverID string, count int) {
	t.Helper()
	ctx := context.Background()

	conversations := repositories.NewConversationRepository()
	messages := repositories.NewMessageRepository()

	conv := models.Conversation{
		ID:           store.NewID(),
		Participants: []string{"sender", receiverID},
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, conversations.Create(ctx, s, conv))

	for i := 0; i < count; i++ {
		msg := models.Message{
			ID:         store.NewID(),
			SenderID:   "sender",
			ReceiverID: receiverID,
			Content:    "hello",
			Timestamp:  time.Now().UTC(),
			Type:       models.MessageTypeText,
		}
		require.NoError(t, messages.Append(ctx, s, conv.ID, msg))
	}
}

func TestWorkerPushesOnBusEvent(t *testing.T) {
	s := store.NewMemoryStore()
	seedUnread(t, s, "user-1", 2)

	bus := notify.NewBus()
	defer bus.Close()
	notifier := newFakeNotifier()
	unread := services.NewUnreadService(s, cache.NewNoop())

	worker := NewUnreadWorker(unread, bus, notifier, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	worker.Start(ctx)

	// Give the event loop a moment to subscribe before publishing.
	time.Sleep(50 * time.Millisecond)
	bus.Publish("user-1")

	require.Eventually(t, func() bool {
		payload, ok := notifier.lastPush("user-1")
		return ok && payload.UnreadCount == 2
	}, 2*time.Second, 10*time.Millisecond)

	payload, _ := notifier.lastPush("user-1")
	assert.Equal(t, "unread_count", payload.Type)
}

func TestWorkerSweepRefreshesConnectedUsers(t *testing.T) {
	s := store.NewMemoryStore()
	seedUnread(t, s, "user-2", 3)

	bus := notify.NewBus()
	defer bus.Close()
	notifier := newFakeNotifier("user-2")
	unread := services.NewUnreadService(s, cache.NewNoop())

	worker := NewUnreadWorker(unread, bus, notifier, 20*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	worker.Start(ctx)

	// No bus event is published; the sweep alone must deliver the count.
	require.Eventually(t, func() bool {
		payload, ok := notifier.lastPush("user-2")
		return ok && payload.UnreadCount == 3
	}, 2*time.Second, 10*time.Millisecond)
}

func TestWorkerRefreshDirect(t *testing.T) {
	s := store.NewMemoryStore()
	seedUnread(t, s, "user-3", 1)

	bus := notify.NewBus()
	defer bus.Close()
	notifier := newFakeNotifier()
	unread := services.NewUnreadService(s, cache.NewNoop())

	worker := NewUnreadWorker(unread, bus, notifier, time.Hour)
	worker.Refresh(context.Background(), "user-3")

	payload, ok := notifier.lastPush("user-3")
	require.True(t, ok)
	assert.Equal(t, 1, payload.UnreadCount)
}
