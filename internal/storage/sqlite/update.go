package sqlite

import (
	"time"
)

// UpdateReviewStatus обновляет статус ручной проверки решения
func (s *SQLiteStorage) UpdateReviewStatus(transactionID string, status string) error {
	query := `
		UPDATE decisions
		SET review_status = ?
		WHERE transaction_id = ?
	`

	return retryOperation(func() error {
		_, err := s.DB.Exec(query, status, transactionID)
		return err
	}, 3, 50*time.Millisecond)
}
