// controllers/metrics_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/raphaeljcm/daily-diet-api/services"
)

type MetricsController struct {
	Svc *services.MetricsService
}

func NewMetricsController(svc *services.MetricsService) *MetricsController {
	return &MetricsController{Svc: svc}
}

func (h *MetricsController) GetMetrics(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	metrics, err := h.Svc.Metrics(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"metrics": metrics})
}
