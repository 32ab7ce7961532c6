package server

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pageza/fittrack/backend/config"
	"github.com/pageza/fittrack/backend/internal/api"
	"github.com/pageza/fittrack/backend/internal/middleware"
	"github.com/pageza/fittrack/backend/internal/router"
	"github.com/pageza/fittrack/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *gorm.DB
}

// New wires services and handlers. redisClient and images may be nil, which
// turns off rate limiting, shared chat history and photo storage.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, images service.ImageStore) *Server {
	profiles := service.NewProfileService(db)
	dashboard := service.NewDashboardService(db, profiles)
	sessions := service.NewSessionService(cfg.JWTSecret)

	var history service.ChatHistory
	var limiter *middleware.RateLimiter
	if redisClient != nil {
		history = service.NewRedisChatHistory(redisClient)
		limiter = middleware.NewDetectionRateLimiter(redisClient, cfg.RateLimitPerHour)
	}

	handlers := &router.Handlers{
		Detection: api.NewDetectionHandler(service.NewDetectionService(db, images, cfg.DetectionDelay), limiter),
		Calorie:   api.NewCalorieHandler(service.NewBurnService()),
		Meal:      api.NewMealHandler(),
		Journal:   api.NewJournalHandler(service.NewJournalService(db, profiles)),
		Dashboard: api.NewDashboardHandler(dashboard),
		Agent:     api.NewAgentHandler(service.NewAgentService(profiles, dashboard, history, cfg.AgentDelay)),
		Session:   api.NewSessionHandler(sessions),
		Profile:   api.NewProfileHandler(profiles),
	}

	engine := router.SetupRouter(handlers, sessions)
	return &Server{
		router: engine,
		db:     db,
		http: &http.Server{
			Addr:    net.JoinHostPort(cfg.ServerHost, cfg.ServerPort),
			Handler: engine,
		},
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until Shutdown is called.
func (s *Server) Start() error {
	log.Printf("[Server] Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
