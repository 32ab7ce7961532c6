package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pageza/fittrack/backend/internal/service"
)

// HealthCheck reports that the API and the detector are up.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"model":     service.DetectionModel,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
