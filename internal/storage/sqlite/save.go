package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"payguard-risk-system/internal/models"
)

// nullableString возвращает NULL для пустой строки
func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// SaveDecision сохраняет решение по транзакции в БД со статусом проверки none
func (s *SQLiteStorage) SaveDecision(req *models.RiskScoreRequest, resp *models.RiskScoreResponse) error {
	factors, err := json.Marshal(resp.RiskFactors)
	if err != nil {
		return fmt.Errorf("failed to marshal risk factors: %w", err)
	}

	query := `
		INSERT INTO decisions (
			transaction_id, amount_cents, currency, card_bin, customer_email,
			customer_ip, customer_country, risk_score, decision, factors,
			processing_time_ms, review_status
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 'none')
	`

	return retryOperation(func() error {
		_, err := s.DB.Exec(
			query,
			resp.TransactionID, req.AmountCents, nullableString(req.Currency),
			nullableString(req.CardBIN), nullableString(req.CustomerEmail),
			nullableString(req.CustomerIP), nullableString(req.CustomerCountry),
			resp.RiskScore, resp.Decision, string(factors), resp.ProcessingTimeMs,
		)
		return err
	}, 3, 50*time.Millisecond)
}
