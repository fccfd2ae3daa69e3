package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hirenexus_backend/internal/middleware"
	"hirenexus_backend/internal/services"
	"hirenexus_backend/internal/services/dto"
)

type WorkHandler struct {
	*BaseHandler
	workService *services.WorkService
}

func NewWorkHandler(base *BaseHandler, workService *services.WorkService) *WorkHandler {
	return &WorkHandler{
		BaseHandler: base,
		workService: workService,
	}
}

func (h *WorkHandler) RegisterRoutes(rg *gin.RouterGroup) {
	works := rg.Group("/works")
	{
		works.POST("", h.Post)
		works.GET("", h.Browse)
		works.GET("/mine", h.Mine)
		works.GET("/:id", h.Find)
	}
}

func (h *WorkHandler) Post(c *gin.Context) {
	userID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}

	var req dto.PostWorkRequest
	if !h.BindJSON(c, &req) {
		return
	}

	work, err := h.workService.Post(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, work)
}

func (h *WorkHandler) Browse(c *gin.Context) {
	userID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}

	works, err := h.workService.Browse(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"works": works})
}

func (h *WorkHandler) Mine(c *gin.Context) {
	userID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}

	works, err := h.workService.Mine(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"works": works})
}

func (h *WorkHandler) Find(c *gin.Context) {
	work, err := h.workService.Find(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, work)
}
