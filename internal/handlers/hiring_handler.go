package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hirenexus_backend/internal/middleware"
	"hirenexus_backend/internal/services"
	"hirenexus_backend/internal/services/dto"
)

type HiringHandler struct {
	*BaseHandler
	hiringService *services.HiringService
}

func NewHiringHandler(base *BaseHandler, hiringService *services.HiringService) *HiringHandler {
	return &HiringHandler{
		BaseHandler:   base,
		hiringService: hiringService,
	}
}

func (h *HiringHandler) RegisterRoutes(rg *gin.RouterGroup) {
	hiring := rg.Group("/hiring-requests")
	{
		hiring.POST("", h.Hire)
		hiring.GET("/sent", h.Sent)
		hiring.GET("/received", h.Received)
	}
}

func (h *HiringHandler) Hire(c *gin.Context) {
	userID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}

	var req dto.HireRequest
	if !h.BindJSON(c, &req) {
		return
	}

	request, err := h.hiringService.Hire(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, request)
}

func (h *HiringHandler) Sent(c *gin.Context) {
	userID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}

	requests, err := h.hiringService.Sent(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"hiringRequests": requests})
}

func (h *HiringHandler) Received(c *gin.Context) {
	userID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}

	requests, err := h.hiringService.Received(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"hiringRequests": requests})
}
