package mocks

import (
	"github.com/stretchr/testify/mock"

	"payguard-risk-system/internal/models"
)

// MockDecisionRepository является моком для storage.DecisionRepository интерфейса
type MockDecisionRepository struct {
	mock.Mock
}

// SaveDecision мок для SaveDecision
func (m *MockDecisionRepository) SaveDecision(req *models.RiskScoreRequest, resp *models.RiskScoreResponse) error {
	args := m.Called(req, resp)
	return args.Error(0)
}

// GetDecisionByTransactionID мок для GetDecisionByTransactionID
func (m *MockDecisionRepository) GetDecisionByTransactionID(transactionID string) (*models.DecisionRecord, error) {
	args := m.Called(transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DecisionRecord), args.Error(1)
}

// GetAllDecisions мок для GetAllDecisions
func (m *MockDecisionRepository) GetAllDecisions(limit int) ([]*models.DecisionRecord, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.DecisionRecord), args.Error(1)
}

// GetReviewQueue мок для GetReviewQueue
func (m *MockDecisionRepository) GetReviewQueue(limit int) ([]*models.DecisionRecord, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.DecisionRecord), args.Error(1)
}

// UpdateReviewStatus мок для UpdateReviewStatus
func (m *MockDecisionRepository) UpdateReviewStatus(transactionID string, status string) error {
	args := m.Called(transactionID, status)
	return args.Error(0)
}

// ClearAllDecisions мок для ClearAllDecisions
func (m *MockDecisionRepository) ClearAllDecisions() error {
	args := m.Called()
	return args.Error(0)
}
