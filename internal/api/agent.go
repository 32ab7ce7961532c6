package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/pageza/fittrack/backend/internal/fitness"
	"github.com/pageza/fittrack/backend/internal/middleware"
	"github.com/pageza/fittrack/backend/internal/service"
	"github.com/pageza/fittrack/backend/internal/types"
)

const wsPingInterval = 25 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// AgentHandler serves the health agent chat over HTTP and websocket.
type AgentHandler struct {
	agent service.IAgentService
}

func NewAgentHandler(agent service.IAgentService) *AgentHandler {
	return &AgentHandler{agent: agent}
}

func (h *AgentHandler) RegisterRoutes(router *gin.RouterGroup) {
	agent := router.Group("/agent")
	{
		agent.POST("/ask", h.Ask)
		agent.GET("/questions", h.Questions)
		agent.GET("/history", h.History)
		agent.GET("/ws", h.Chat)
	}
}

func (h *AgentHandler) Ask(c *gin.Context) {
	var req types.AgentAskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	answer, err := h.agent.Ask(c.Request.Context(), middleware.UserID(c), req.Message)
	if err != nil {
		respondError(c, err, "failed to get agent response")
		return
	}
	c.JSON(http.StatusOK, answer)
}

func (h *AgentHandler) Questions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": h.agent.QuickQuestions()})
}

func (h *AgentHandler) History(c *gin.Context) {
	history, err := h.agent.History(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err, "failed to load chat history")
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": history})
}

// Chat upgrades to a websocket. Each text frame is an AgentAskRequest and is
// answered with a ChatMessage, or {"error": ...} when the message is rejected.
func (h *AgentHandler) Chat(c *gin.Context) {
	userID := middleware.UserID(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// WriteControl may run concurrently with the reply writer below.
	go func() {
		t := time.NewTicker(wsPingInterval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second)); err != nil {
					cancel()
					return
				}
			}
		}
	}()

	// read loop ends on client close or error
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			var closeErr *websocket.CloseError
			if !errors.As(err, &closeErr) {
				log.Printf("[AgentHandler] websocket read for %s: %v", userID, err)
			}
			return
		}

		var reply any
		var req types.AgentAskRequest
		if err := json.Unmarshal(data, &req); err != nil {
			if err := conn.WriteJSON(gin.H{"error": "invalid message"}); err != nil {
				return
			}
			continue
		}

		answer, err := h.agent.Ask(ctx, userID, req.Message)
		switch {
		case err == nil:
			reply = answer
		case errors.Is(err, fitness.ErrInvalidInput):
			reply = gin.H{"error": err.Error()}
		default:
			log.Printf("[AgentHandler] websocket ask for %s: %v", userID, err)
			reply = gin.H{"error": "failed to get agent response"}
		}

		if err := conn.WriteJSON(reply); err != nil {
			return
		}
	}
}
