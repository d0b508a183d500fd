package mocks

import (
	"github.com/stretchr/testify/mock"

	"payguard-risk-system/internal/models"
)

// MockProducer является моком для kafka.Producer интерфейса
type MockProducer struct {
	mock.Mock
}

// SendScoredEvent мок для SendScoredEvent
func (m *MockProducer) SendScoredEvent(event *models.KafkaScoredEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

// Close мок для Close
func (m *MockProducer) Close() error {
	args := m.Called()
	return args.Error(0)
}
