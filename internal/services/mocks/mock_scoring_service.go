package mocks

import (
	"github.com/stretchr/testify/mock"

	"payguard-risk-system/internal/models"
)

// MockScoringService является моком для services.ScoringService интерфейса
type MockScoringService struct {
	mock.Mock
}

// ScoreTransaction мок для ScoreTransaction
func (m *MockScoringService) ScoreTransaction(req *models.ScoreRequest) (*models.RiskScoreResponse, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RiskScoreResponse), args.Error(1)
}

// GetDecision мок для GetDecision
func (m *MockScoringService) GetDecision(transactionID string) (*models.DecisionResponse, error) {
	args := m.Called(transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DecisionResponse), args.Error(1)
}

// GetAllDecisions мок для GetAllDecisions
func (m *MockScoringService) GetAllDecisions(limit int) ([]*models.DecisionResponse, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.DecisionResponse), args.Error(1)
}

// ClearAllDecisions мок для ClearAllDecisions
func (m *MockScoringService) ClearAllDecisions() error {
	args := m.Called()
	return args.Error(0)
}

// MockRiskScorer является моком для services.RiskScorer интерфейса
type MockRiskScorer struct {
	mock.Mock
}

// CalculateRiskScore мок для CalculateRiskScore
func (m *MockRiskScorer) CalculateRiskScore(req *models.RiskScoreRequest, rctx *models.RiskContext) *models.RiskScoreResponse {
	args := m.Called(req, rctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*models.RiskScoreResponse)
}
