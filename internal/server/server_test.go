package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pageza/fittrack/backend/config"
	"github.com/pageza/fittrack/backend/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		ServerHost:       "127.0.0.1",
		ServerPort:       "0",
		JWTSecret:        "test-secret",
		RateLimitPerHour: 30,
	}
}

func TestNew(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := New(testConfig(), testhelpers.SetupTestDB(t), nil, nil)
	require.NotNil(t, srv)

	for _, path := range []string{"/health", "/api/health"} {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/workouts/quick", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var profile map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, "anonymous", profile["user_id"])
}

func TestHealthIgnoresStaleToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := New(testConfig(), testhelpers.SetupTestDB(t), nil, nil)

	for _, tc := range []struct {
		path   string
		status int
	}{
		{"/health", http.StatusOK},
		{"/api/health", http.StatusOK},
		{"/api/v1/profile", http.StatusUnauthorized},
	} {
		req := httptest.NewRequest(http.MethodGet, tc.path, nil)
		req.Header.Set("Authorization", "Bearer expired-or-forged")
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)
		assert.Equal(t, tc.status, w.Code, tc.path)
	}
}

func TestCORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := New(testConfig(), testhelpers.SetupTestDB(t), nil, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/journal", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestStartAndShutdown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := New(testConfig(), testhelpers.SetupTestDB(t), nil, nil)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))
	assert.NoError(t, <-errCh)
}
