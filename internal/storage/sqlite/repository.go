package sqlite

import (
	"payguard-risk-system/internal/models"
	"payguard-risk-system/internal/storage"
)

// Repository реализует интерфейс DecisionRepository для SQLite
type Repository struct {
	storage *SQLiteStorage
}

// NewRepository создает новый репозиторий SQLite
func NewRepository(storage *SQLiteStorage) storage.DecisionRepository {
	return &Repository{storage: storage}
}

// SaveDecision сохраняет решение по транзакции в БД
func (r *Repository) SaveDecision(req *models.RiskScoreRequest, resp *models.RiskScoreResponse) error {
	return r.storage.SaveDecision(req, resp)
}

// GetDecisionByTransactionID получает решение по transaction_id
func (r *Repository) GetDecisionByTransactionID(transactionID string) (*models.DecisionRecord, error) {
	return r.storage.GetDecisionByTransactionID(transactionID)
}

// GetAllDecisions получает последние решения из БД
func (r *Repository) GetAllDecisions(limit int) ([]*models.DecisionRecord, error) {
	return r.storage.GetAllDecisions(limit)
}

// GetReviewQueue получает решения, поставленные в очередь на ручную проверку
func (r *Repository) GetReviewQueue(limit int) ([]*models.DecisionRecord, error) {
	return r.storage.GetReviewQueue(limit)
}

// UpdateReviewStatus обновляет статус ручной проверки решения
func (r *Repository) UpdateReviewStatus(transactionID string, status string) error {
	return r.storage.UpdateReviewStatus(transactionID, status)
}

// ClearAllDecisions удаляет все решения из БД
func (r *Repository) ClearAllDecisions() error {
	return r.storage.ClearAllDecisions()
}
