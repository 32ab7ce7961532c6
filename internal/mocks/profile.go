package mocks

import (
	"context"

	"github.com/pageza/fittrack/backend/internal/models"
	"github.com/pageza/fittrack/backend/internal/types"
	"github.com/stretchr/testify/mock"
)

// MockProfileService is a mock implementation of the IProfileService interface
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetProfile(ctx context.Context, userID string) (*models.HealthProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HealthProfile), args.Error(1)
}

func (m *MockProfileService) UpdateProfile(ctx context.Context, userID string, req *types.UpdateProfileRequest) (*models.HealthProfile, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HealthProfile), args.Error(1)
}

func (m *MockProfileService) GetProfileHistory(ctx context.Context, userID string) ([]models.ProfileHistory, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProfileHistory), args.Error(1)
}
