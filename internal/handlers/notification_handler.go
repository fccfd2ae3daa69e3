package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hirenexus_backend/internal/middleware"
	"hirenexus_backend/internal/services"
)

// NotificationHandler serves the unread badge over plain HTTP for
// clients without a websocket connection.
type NotificationHandler struct {
	*BaseHandler
	unreadService *services.UnreadService
}

func NewNotificationHandler(base *BaseHandler, unreadService *services.UnreadService) *NotificationHandler {
	return &NotificationHandler{
		BaseHandler:   base,
		unreadService: unreadService,
	}
}

func (h *NotificationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	notifications := rg.Group("/notifications")
	{
		notifications.GET("/unread-count", h.UnreadCount)
	}
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	userID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}

	count, err := h.unreadService.CountFor(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"unreadCount": count})
}
