package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/fittrack/backend/internal/middleware"
	"github.com/pageza/fittrack/backend/internal/service"
)

// maxImageBytes bounds a food photo upload.
const maxImageBytes = 10 << 20

// DetectionHandler serves food photo analysis.
type DetectionHandler struct {
	detection service.IDetectionService
	limiter   *middleware.RateLimiter
}

// NewDetectionHandler creates a detection handler. limiter may be nil.
func NewDetectionHandler(detection service.IDetectionService, limiter *middleware.RateLimiter) *DetectionHandler {
	return &DetectionHandler{
		detection: detection,
		limiter:   limiter,
	}
}

// RegisterRoutes mounts the upload endpoint on router.
func (h *DetectionHandler) RegisterRoutes(router *gin.RouterGroup) {
	handlers := []gin.HandlerFunc{h.DetectFood}
	if h.limiter != nil {
		handlers = append([]gin.HandlerFunc{h.limiter.RateLimitMiddleware()}, handlers...)
	}
	router.POST("/detect-food", handlers...)
}

// DetectFood accepts a multipart upload in the "image" field.
func (h *DetectionHandler) DetectFood(c *gin.Context) {
	header, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image file provided"})
		return
	}
	if header.Size > maxImageBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Image file too large"})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image file provided"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Failed to read image",
			"details": err.Error(),
		})
		return
	}

	resp, err := h.detection.DetectFood(c.Request.Context(), &service.FoodUpload{
		UserID:      middleware.UserID(c),
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Data:        data,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Food detection failed",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}
