package sqlite

// initSchema инициализирует схему БД
func (s *SQLiteStorage) initSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS decisions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		transaction_id TEXT UNIQUE NOT NULL,
		amount_cents INTEGER NOT NULL,
		currency TEXT,
		card_bin TEXT,
		customer_email TEXT,
		customer_ip TEXT,
		customer_country TEXT,
		risk_score INTEGER NOT NULL,
		decision TEXT NOT NULL,
		factors TEXT NOT NULL DEFAULT '[]',
		processing_time_ms INTEGER NOT NULL DEFAULT 0,
		review_status TEXT NOT NULL DEFAULT 'none',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_transaction_id ON decisions(transaction_id);
	CREATE INDEX IF NOT EXISTS idx_decision ON decisions(decision);
	CREATE INDEX IF NOT EXISTS idx_review_status ON decisions(review_status);
	CREATE INDEX IF NOT EXISTS idx_created_at ON decisions(created_at);
	`

	_, err := s.DB.Exec(query)
	return err
}
