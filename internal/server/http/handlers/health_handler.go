package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/feastline/orderd/internal/server/http/dto"
)

// HealthHandler serves the liveness endpoint.
type HealthHandler struct{}

// NewHealthHandler constructs HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check handles GET /health.
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "OK",
		Timestamp: time.Now().UTC(),
	})
}
