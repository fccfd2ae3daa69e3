package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hirenexus_backend/internal/handlers"
	"hirenexus_backend/internal/middleware"
	"hirenexus_backend/ws"
)

// SetupRouter builds the gin engine and registers all routes.
func SetupRouter(h *handlers.AppHandlers, wsHandler *ws.WebSocketHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")

	// Public endpoints.
	h.Auth.RegisterRoutes(api)
	h.Query.RegisterRoutes(api)

	// Everything else requires a valid token.
	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware())
	{
		h.Profile.RegisterRoutes(authed)
		h.User.RegisterRoutes(authed)
		h.Work.RegisterRoutes(authed)
		h.Application.RegisterRoutes(authed)
		h.Hiring.RegisterRoutes(authed)
		h.Chat.RegisterRoutes(authed)
		h.Notification.RegisterRoutes(authed)
	}

	// Websocket authenticates via query token inside the handler.
	r.GET("/ws", wsHandler.ServeWS)

	return r
}
