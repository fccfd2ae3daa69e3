package ws

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"hirenexus_backend/internal/auth"
	"hirenexus_backend/internal/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WebSocketHandler upgrades notification connections. Browsers cannot set
// headers on websocket requests, so the JWT arrives as a query parameter.
type WebSocketHandler struct {
	Manager   *WebSocketManager
	onRefresh func(userID string)
}

// NewWebSocketHandler builds the handler. onRefresh is called whenever a
// client connects or asks for its unread total.
func NewWebSocketHandler(manager *WebSocketManager, onRefresh func(userID string)) *WebSocketHandler {
	return &WebSocketHandler{
		Manager:   manager,
		onRefresh: onRefresh,
	}
}

func (h *WebSocketHandler) ServeWS(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized. 'token' query parameter is required."})
		return
	}

	claims, err := auth.ParseToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("ws upgrade failed", "error", err)
		return
	}

	client := &Client{
		UserID:    claims.UserID,
		Conn:      conn,
		Send:      make(chan any, 8),
		Manager:   h.Manager,
		onRefresh: h.onRefresh,
	}

	h.Manager.register <- client

	go client.readPump()
	go client.writePump()

	// Seed the badge immediately on connect.
	if h.onRefresh != nil {
		h.onRefresh(client.UserID)
	}
}
