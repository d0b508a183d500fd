package mocks

import (
	"github.com/stretchr/testify/mock"

	"payguard-risk-system/internal/models"
	"payguard-risk-system/internal/velocity"
)

// MockTracker является моком для velocity.TrackerInterface интерфейса
type MockTracker struct {
	mock.Mock
}

// TrackTransaction мок для TrackTransaction
func (m *MockTracker) TrackTransaction(s velocity.Signals, amountCents int64) {
	m.Called(s, amountCents)
}

// GetVelocityCounts мок для GetVelocityCounts
func (m *MockTracker) GetVelocityCounts(s velocity.Signals) models.VelocityCounts {
	args := m.Called(s)
	return args.Get(0).(models.VelocityCounts)
}
