package sqlite

// ClearAllDecisions удаляет все решения из БД
func (s *SQLiteStorage) ClearAllDecisions() error {
	query := `DELETE FROM decisions`
	_, err := s.DB.Exec(query)
	return err
}
