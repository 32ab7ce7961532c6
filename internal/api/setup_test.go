package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pageza/fittrack/backend/internal/middleware"
	"github.com/pageza/fittrack/backend/internal/service"
	"github.com/pageza/fittrack/backend/internal/testhelpers"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testJWTSecret = "test-secret"

// testAPI wires every handler against real services on a sqlite database.
type testAPI struct {
	router   *gin.Engine
	db       *gorm.DB
	sessions *service.SessionService
}

func newTestAPI(t *testing.T, images service.ImageStore) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDB(t)
	profiles := service.NewProfileService(db)
	dashboard := service.NewDashboardService(db, profiles)
	sessions := service.NewSessionService(testJWTSecret)

	router := gin.New()
	router.Use(middleware.ErrorHandler(), middleware.Identity(sessions))
	router.GET("/api/health", HealthCheck)

	detection := NewDetectionHandler(service.NewDetectionService(db, images, 0), nil)
	detection.RegisterRoutes(router.Group("/api"))

	v1 := router.Group("/api/v1")
	detection.RegisterRoutes(v1)
	NewCalorieHandler(service.NewBurnService()).RegisterRoutes(v1)
	NewMealHandler().RegisterRoutes(v1)
	NewJournalHandler(service.NewJournalService(db, profiles)).RegisterRoutes(v1)
	NewDashboardHandler(dashboard).RegisterRoutes(v1)
	NewAgentHandler(service.NewAgentService(profiles, dashboard, service.NewMemoryChatHistory(), 0)).RegisterRoutes(v1)
	NewSessionHandler(sessions).RegisterRoutes(v1)
	NewProfileHandler(profiles).RegisterRoutes(v1)

	return &testAPI{router: router, db: db, sessions: sessions}
}

// do sends a JSON request as userID and returns the recorder.
func (a *testAPI) do(t *testing.T, method, path, userID string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(middleware.UserIDHeader, userID)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func intPtr(v int) *int { return &v }
