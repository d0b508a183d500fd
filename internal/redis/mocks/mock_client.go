package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"

	"payguard-risk-system/internal/models"
	"payguard-risk-system/internal/velocity"
)

// MockClientInterface является моком для redis.ClientInterface интерфейса
type MockClientInterface struct {
	mock.Mock
}

// Record мок для Record
func (m *MockClientInterface) Record(signal velocity.Signal, value string, at time.Time, member string) error {
	args := m.Called(signal, value, at, member)
	return args.Error(0)
}

// Count мок для Count
func (m *MockClientInterface) Count(signal velocity.Signal, value string, since time.Time) (int64, error) {
	args := m.Called(signal, value, since)
	return args.Get(0).(int64), args.Error(1)
}

// Evict мок для Evict
func (m *MockClientInterface) Evict(olderThan time.Time) error {
	args := m.Called(olderThan)
	return args.Error(0)
}

// SaveScore мок для SaveScore
func (m *MockClientInterface) SaveScore(transactionID string, response *models.RiskScoreResponse) error {
	args := m.Called(transactionID, response)
	return args.Error(0)
}

// GetScore мок для GetScore
func (m *MockClientInterface) GetScore(transactionID string) (*models.RiskScoreResponse, error) {
	args := m.Called(transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RiskScoreResponse), args.Error(1)
}

// IncrementDecisionStats мок для IncrementDecisionStats
func (m *MockClientInterface) IncrementDecisionStats(decision string) error {
	args := m.Called(decision)
	return args.Error(0)
}

// GetDecisionStats мок для GetDecisionStats
func (m *MockClientInterface) GetDecisionStats() (map[string]int64, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

// ClearScoringData мок для ClearScoringData
func (m *MockClientInterface) ClearScoringData() error {
	args := m.Called()
	return args.Error(0)
}

// Close мок для Close
func (m *MockClientInterface) Close() error {
	args := m.Called()
	return args.Error(0)
}
