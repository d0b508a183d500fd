package velocity

import (
	"payguard-risk-system/internal/models"
)

// TrackerInterface определяет интерфейс velocity-трекера
// Это позволяет легко создавать моки для тестирования
// Реализуется типом Tracker
type TrackerInterface interface {
	// TrackTransaction записывает событие для каждого заполненного сигнала
	TrackTransaction(s Signals, amountCents int64)

	// GetVelocityCounts возвращает счетчики событий по каждому сигналу
	GetVelocityCounts(s Signals) models.VelocityCounts
}

// Убеждаемся, что Tracker реализует TrackerInterface
var _ TrackerInterface = (*Tracker)(nil)
