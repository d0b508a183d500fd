package redis

import (
	"time"

	"payguard-risk-system/internal/models"
	"payguard-risk-system/internal/velocity"
)

// ClientInterface определяет интерфейс для работы с Redis
// Это позволяет легко создавать моки для тестирования
// Реализуется типом Client
type ClientInterface interface {
	// Record записывает событие скорости для сигнала
	Record(signal velocity.Signal, value string, at time.Time, member string) error

	// Count возвращает количество событий сигнала с указанного момента
	Count(signal velocity.Signal, value string, since time.Time) (int64, error)

	// Evict удаляет события старше указанного момента
	Evict(olderThan time.Time) error

	// SaveScore сохраняет результат скоринга в Redis
	SaveScore(transactionID string, response *models.RiskScoreResponse) error

	// GetScore получает результат скоринга из Redis
	GetScore(transactionID string) (*models.RiskScoreResponse, error)

	// IncrementDecisionStats увеличивает счетчик статистики по решению
	IncrementDecisionStats(decision string) error

	// GetDecisionStats возвращает счетчики решений по всем исходам
	GetDecisionStats() (map[string]int64, error)

	// ClearScoringData очищает все данные скоринга из Redis
	ClearScoringData() error

	// Close закрывает соединение с Redis
	Close() error
}

// Убеждаемся, что Client реализует ClientInterface
var _ ClientInterface = (*Client)(nil)
