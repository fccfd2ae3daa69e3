package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hirenexus_backend/internal/services"
	"hirenexus_backend/internal/services/dto"
)

// QueryHandler accepts landing-page contact form submissions. Public, no
// authentication.
type QueryHandler struct {
	*BaseHandler
	queryService *services.QueryService
}

func NewQueryHandler(base *BaseHandler, queryService *services.QueryService) *QueryHandler {
	return &QueryHandler{
		BaseHandler:  base,
		queryService: queryService,
	}
}

func (h *QueryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/queries", h.Submit)
}

func (h *QueryHandler) Submit(c *gin.Context) {
	var req dto.QueryRequest
	if !h.BindJSON(c, &req) {
		return
	}

	query, err := h.queryService.Submit(c.Request.Context(), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": query.ID, "message": "Query submitted successfully"})
}
