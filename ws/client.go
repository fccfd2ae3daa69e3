package ws

import (
	"encoding/json"

	"github.com/gorilla/websocket"

	"hirenexus_backend/internal/logger"
)

// IncomingWSMessage is the envelope clients send over the socket.
type IncomingWSMessage struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

// Client is one websocket connection owned by a user.
type Client struct {
	UserID string
	Conn   *websocket.Conn
	Send   chan any

	Manager *WebSocketManager

	// onRefresh is invoked when the client explicitly asks for its
	// unread total, typically right after connecting.
	onRefresh func(userID string)
}

func (c *Client) readPump() {
	defer func() {
		c.Manager.unregister <- c
		c.Conn.Close()
	}()

	for {
		_, msgBytes, err := c.Conn.ReadMessage()
		if err != nil {
			return
		}

		var msg IncomingWSMessage
		if err := json.Unmarshal(msgBytes, &msg); err != nil {
			logger.Debug("ws message parse failed", "user_id", c.UserID, "error", err)
			continue
		}
		c.handleMessage(msg)
	}
}

func (c *Client) writePump() {
	for msg := range c.Send {
		if err := c.Conn.WriteJSON(msg); err != nil {
			logger.Debug("ws write failed", "user_id", c.UserID, "error", err)
			return
		}
	}
}

func (c *Client) handleMessage(msg IncomingWSMessage) {
	switch msg.Action {
	case "refresh_unread":
		if c.onRefresh != nil {
			c.onRefresh(c.UserID)
		}
	default:
		logger.Debug("ws unhandled action", "action", msg.Action)
	}
}
