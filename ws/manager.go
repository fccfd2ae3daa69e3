package ws

import (
	"sync"

	"hirenexus_backend/internal/logger"
)

// WebSocketManager tracks connected clients by user ID and pushes
// payloads to them. One connection per user; a new connection replaces
// the old one.
type WebSocketManager struct {
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

func NewWebSocketManager() *WebSocketManager {
	return &WebSocketManager{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run processes register/unregister events. Call in its own goroutine.
func (manager *WebSocketManager) Run() {
	for {
		select {
		case client := <-manager.register:
			manager.mu.Lock()
			if old, ok := manager.clients[client.UserID]; ok {
				close(old.Send)
			}
			manager.clients[client.UserID] = client
			total := len(manager.clients)
			manager.mu.Unlock()
			logger.Debug("ws client registered", "user_id", client.UserID, "total", total)

		case client := <-manager.unregister:
			manager.mu.Lock()
			if current, ok := manager.clients[client.UserID]; ok && current == client {
				close(client.Send)
				delete(manager.clients, client.UserID)
			}
			total := len(manager.clients)
			manager.mu.Unlock()
			logger.Debug("ws client unregistered", "user_id", client.UserID, "total", total)
		}
	}
}

// PushToUser delivers a payload to the user's connection, if any. A full
// send buffer drops the payload; the worker's fallback sweep resends.
func (manager *WebSocketManager) PushToUser(userID string, payload any) {
	manager.mu.RLock()
	client, ok := manager.clients[userID]
	manager.mu.RUnlock()
	if !ok {
		return
	}

	select {
	case client.Send <- payload:
	default:
		logger.Warn("ws send buffer full, payload dropped", "user_id", userID)
	}
}

// ConnectedUsers returns the IDs of all connected users.
func (manager *WebSocketManager) ConnectedUsers() []string {
	manager.mu.RLock()
	defer manager.mu.RUnlock()

	ids := make([]string, 0, len(manager.clients))
	for id := range manager.clients {
		ids = append(ids, id)
	}
	return ids
}

// IsClientConnected reports whether the user has an open connection.
func (manager *WebSocketManager) IsClientConnected(userID string) bool {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	_, exists := manager.clients[userID]
	return exists
}
