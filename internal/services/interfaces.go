package services

import (
	"payguard-risk-system/internal/models"
)

// ScoringService определяет интерфейс для оценки риска транзакций
type ScoringService interface {
	// ScoreTransaction оценивает риск транзакции и сохраняет решение
	ScoreTransaction(req *models.ScoreRequest) (*models.RiskScoreResponse, error)

	// GetDecision возвращает сохраненное решение по transaction_id
	GetDecision(transactionID string) (*models.DecisionResponse, error)

	// GetAllDecisions возвращает последние решения
	GetAllDecisions(limit int) ([]*models.DecisionResponse, error)

	// ClearAllDecisions очищает все решения
	ClearAllDecisions() error
}

// RiskScorer определяет интерфейс для вычисления балла риска
type RiskScorer interface {
	// CalculateRiskScore вычисляет балл риска транзакции в контексте мерчанта
	CalculateRiskScore(req *models.RiskScoreRequest, rctx *models.RiskContext) *models.RiskScoreResponse
}
