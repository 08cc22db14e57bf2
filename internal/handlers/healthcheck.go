package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/teachsmart-backend/internal/services"
)

type HealthHandler struct {
	service services.ResourceService
}

func NewHealthHandler(service services.ResourceService) *HealthHandler {
	return &HealthHandler{service: service}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "healthy",
		"model_loaded": h.service.ModelAvailable(),
	})
}
