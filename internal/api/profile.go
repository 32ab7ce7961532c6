package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/fittrack/backend/internal/middleware"
	"github.com/pageza/fittrack/backend/internal/service"
	"github.com/pageza/fittrack/backend/internal/types"
)

type ProfileHandler struct {
	profileService service.IProfileService
}

func NewProfileHandler(profileService service.IProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	profile := router.Group("/profile")
	{
		profile.GET("", h.GetProfile)
		profile.PUT("", h.UpdateProfile)
		profile.GET("/history", h.GetProfileHistory)
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileService.GetProfile(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err, "failed to get profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		respondError(c, err, "failed to update profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetProfileHistory lists profile changes, newest first.
func (h *ProfileHandler) GetProfileHistory(c *gin.Context) {
	history, err := h.profileService.GetProfileHistory(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err, "failed to get profile history")
		return
	}
	c.JSON(http.StatusOK, history)
}
