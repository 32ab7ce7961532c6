package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/fittrack/backend/internal/fitness"
	"github.com/pageza/fittrack/backend/internal/service"
)

// respondError maps service errors onto HTTP statuses. Anything unexpected is
// logged and reported with the generic message.
func respondError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, fitness.ErrInvalidInput), errors.Is(err, fitness.ErrUnknownActivity):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		log.Printf("[API] %s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": message})
	}
}

func invalidBody(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "invalid request body",
		"message": err.Error(),
	})
}
