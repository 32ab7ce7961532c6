package router

import (
	"github.com/gin-gonic/gin"
	"github.com/pageza/fittrack/backend/internal/api"
	"github.com/pageza/fittrack/backend/internal/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Detection *api.DetectionHandler
	Calorie   *api.CalorieHandler
	Meal      *api.MealHandler
	Journal   *api.JournalHandler
	Dashboard *api.DashboardHandler
	Agent     *api.AgentHandler
	Session   *api.SessionHandler
	Profile   *api.ProfileHandler
}

// SetupRouter configures the application routes
func SetupRouter(h *Handlers, tokens middleware.TokenValidator) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), middleware.ErrorHandler(), middleware.CORS())

	// Health checks sit outside Identity so a stale token cannot fail them
	router.GET("/health", api.HealthCheck)
	router.GET("/api/health", api.HealthCheck)

	identified := router.Group("", middleware.Identity(tokens))

	// Detection is served at both the legacy and the versioned path
	h.Detection.RegisterRoutes(identified.Group("/api"))

	v1 := identified.Group("/api/v1")
	h.Detection.RegisterRoutes(v1)
	h.Calorie.RegisterRoutes(v1)
	h.Meal.RegisterRoutes(v1)
	h.Journal.RegisterRoutes(v1)
	h.Dashboard.RegisterRoutes(v1)
	h.Agent.RegisterRoutes(v1)
	h.Session.RegisterRoutes(v1)
	h.Profile.RegisterRoutes(v1)

	return router
}
