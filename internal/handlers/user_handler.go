package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hirenexus_backend/internal/services"
)

// UserHandler serves the freelancer directory used by the hire flow.
type UserHandler struct {
	*BaseHandler
	profileService *services.ProfileService
}

func NewUserHandler(base *BaseHandler, profileService *services.ProfileService) *UserHandler {
	return &UserHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.GET("/providers", h.Providers)
		users.GET("/:id", h.ByID)
	}
}

func (h *UserHandler) ByID(c *gin.Context) {
	user, err := h.profileService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Providers(c *gin.Context) {
	providers, err := h.profileService.Providers(c.Request.Context(), c.Query("service"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"providers": providers})
}
