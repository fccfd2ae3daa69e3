package workers

import (
	"context"
	"time"

	"hirenexus_backend/internal/logger"
	"hirenexus_backend/internal/notify"
	"hirenexus_backend/internal/services"
)

// Notifier delivers a payload to a connected user. Satisfied by the
// websocket manager.
type Notifier interface {
	PushToUser(userID string, payload any)
	ConnectedUsers() []string
}

// UnreadPayload is the frame pushed to clients when their unread total
// changes.
type UnreadPayload struct {
	Type        string `json:"type"`
	UnreadCount int    `json:"unread_count"`
}

// UnreadWorker keeps connected clients' unread badges fresh. The normal
// path is event-driven: every message append and thread read publishes
// the affected user on the bus, and the worker recomputes and pushes
// their total. A periodic sweep over connected users catches events that
// were dropped or writes that bypassed the bus.
type UnreadWorker struct {
	unread   *services.UnreadService
	bus      *notify.Bus
	notifier Notifier
	sweep    time.Duration
}

func NewUnreadWorker(unread *services.UnreadService, bus *notify.Bus, notifier Notifier, sweep time.Duration) *UnreadWorker {
	if sweep <= 0 {
		sweep = 5 * time.Second
	}
	return &UnreadWorker{
		unread:   unread,
		bus:      bus,
		notifier: notifier,
		sweep:    sweep,
	}
}

// Start launches the event loop and the fallback sweep. Both stop when
// the context is cancelled.
func (w *UnreadWorker) Start(ctx context.Context) {
	go w.runEvents(ctx)
	go w.runSweep(ctx)
}

func (w *UnreadWorker) runEvents(ctx context.Context) {
	events, cancel := w.bus.Subscribe()
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			logger.Info("unread worker stopped")
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			w.Refresh(ctx, event.UserID)
		}
	}
}

func (w *UnreadWorker) runSweep(ctx context.Context) {
	ticker := time.NewTicker(w.sweep)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, userID := range w.notifier.ConnectedUsers() {
				w.Refresh(ctx, userID)
			}
		}
	}
}

// Refresh recomputes the user's unread total from the threads and pushes
// it to their connection. Used by the event loop, the sweep, and the
// websocket handler's on-connect seed.
func (w *UnreadWorker) Refresh(ctx context.Context, userID string) {
	count, err := w.unread.Recompute(ctx, userID)
	if err != nil {
		logger.CtxWarn(ctx, "unread recompute failed", "user_id", userID, "error", err)
		return
	}
	w.notifier.PushToUser(userID, UnreadPayload{Type: "unread_count", UnreadCount: count})
}
