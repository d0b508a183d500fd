package sqlite

import (
	"database/sql"

	"payguard-risk-system/internal/models"
)

const decisionColumns = `
	id, transaction_id, amount_cents, currency, card_bin, customer_email,
	customer_ip, customer_country, risk_score, decision, factors,
	processing_time_ms, review_status, created_at
`

// scanDecision читает одну строку решения
func scanDecision(row interface{ Scan(...any) error }) (*models.DecisionRecord, error) {
	var d models.DecisionRecord
	err := row.Scan(
		&d.ID, &d.TransactionID, &d.AmountCents, &d.Currency, &d.CardBIN,
		&d.CustomerEmail, &d.CustomerIP, &d.CustomerCountry, &d.RiskScore,
		&d.Decision, &d.FactorsJSON, &d.ProcessingTimeMs, &d.ReviewStatus,
		&d.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// GetDecisionByTransactionID получает решение по transaction_id
func (s *SQLiteStorage) GetDecisionByTransactionID(transactionID string) (*models.DecisionRecord, error) {
	query := `
		SELECT ` + decisionColumns + `
		FROM decisions
		WHERE transaction_id = ?
	`

	d, err := scanDecision(s.DB.QueryRow(query, transactionID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return d, nil
}

// GetAllDecisions получает последние решения из БД
func (s *SQLiteStorage) GetAllDecisions(limit int) ([]*models.DecisionRecord, error) {
	query := `
		SELECT ` + decisionColumns + `
		FROM decisions
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`

	return s.queryDecisions(query, limit)
}

// GetReviewQueue получает решения, поставленные в очередь на ручную проверку
func (s *SQLiteStorage) GetReviewQueue(limit int) ([]*models.DecisionRecord, error) {
	query := `
		SELECT ` + decisionColumns + `
		FROM decisions
		WHERE review_status = 'queued'
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`

	return s.queryDecisions(query, limit)
}

func (s *SQLiteStorage) queryDecisions(query string, args ...any) ([]*models.DecisionRecord, error) {
	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var decisions []*models.DecisionRecord
	for rows.Next() {
		d, err := scanDecision(rows)
		if err != nil {
			return nil, err
		}
		decisions = append(decisions, d)
	}

	return decisions, rows.Err()
}
