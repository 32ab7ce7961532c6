package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/fittrack/backend/internal/service"
	"github.com/pageza/fittrack/backend/internal/types"
)

type SessionHandler struct {
	sessions service.ISessionService
}

func NewSessionHandler(sessions service.ISessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

func (h *SessionHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/session", h.CreateSession)
}

// CreateSession issues a guest token. The body is optional.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req types.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		invalidBody(c, err)
		return
	}

	session, err := h.sessions.CreateSession(req.DisplayName)
	if err != nil {
		respondError(c, err, "failed to create session")
		return
	}
	c.JSON(http.StatusCreated, session)
}
