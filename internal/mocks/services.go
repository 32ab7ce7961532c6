package mocks

import (
	"context"
	"time"

	"github.com/pageza/fittrack/backend/internal/types"
	"github.com/stretchr/testify/mock"
)

// MockImageStore is a mock implementation of the ImageStore interface
type MockImageStore struct {
	mock.Mock
}

func (m *MockImageStore) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	args := m.Called(ctx, key, contentType, data)
	return args.String(0), args.Error(1)
}

// MockDashboardService is a mock implementation of the IDashboardService interface
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) DailyStats(ctx context.Context, userID string, day time.Time) (*types.DailyStats, error) {
	args := m.Called(ctx, userID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.DailyStats), args.Error(1)
}

func (m *MockDashboardService) WeeklyStats(ctx context.Context, userID string, day time.Time) (*types.WeeklyStats, error) {
	args := m.Called(ctx, userID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.WeeklyStats), args.Error(1)
}

// MockSessionService is a mock implementation of the ISessionService interface
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(displayName string) (*types.SessionResponse, error) {
	args := m.Called(displayName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.SessionResponse), args.Error(1)
}

func (m *MockSessionService) ValidateToken(token string) (*types.SessionClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.SessionClaims), args.Error(1)
}

// MockChatHistory is a mock implementation of the ChatHistory interface
type MockChatHistory struct {
	mock.Mock
}

func (m *MockChatHistory) Append(ctx context.Context, userID string, msgs ...types.ChatMessage) error {
	args := m.Called(ctx, userID, msgs)
	return args.Error(0)
}

func (m *MockChatHistory) Recent(ctx context.Context, userID string) ([]types.ChatMessage, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.ChatMessage), args.Error(1)
}
