package storage

import (
	"payguard-risk-system/internal/models"
)

// DecisionRepository определяет интерфейс для работы с решениями в хранилище
type DecisionRepository interface {
	// SaveDecision сохраняет решение по транзакции в БД
	SaveDecision(req *models.RiskScoreRequest, resp *models.RiskScoreResponse) error

	// GetDecisionByTransactionID получает решение по transaction_id
	GetDecisionByTransactionID(transactionID string) (*models.DecisionRecord, error)

	// GetAllDecisions получает последние решения из БД
	GetAllDecisions(limit int) ([]*models.DecisionRecord, error)

	// GetReviewQueue получает решения, поставленные в очередь на ручную проверку
	GetReviewQueue(limit int) ([]*models.DecisionRecord, error)

	// UpdateReviewStatus обновляет статус ручной проверки решения
	UpdateReviewStatus(transactionID string, status string) error

	// ClearAllDecisions удаляет все решения из БД
	ClearAllDecisions() error
}
