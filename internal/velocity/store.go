package velocity

import (
	"time"
)

// Signal представляет тип идентификационного сигнала транзакции
type Signal string

const (
	SignalIP     Signal = "ip"
	SignalCard   Signal = "card"
	SignalEmail  Signal = "email"
	SignalDevice Signal = "device"
)

// Фиксированные окна подсчета событий
const (
	WindowShort  = 5 * time.Minute
	WindowMedium = 15 * time.Minute
	WindowLong   = 60 * time.Minute

	// RetentionWindow определяет горизонт хранения: события старше
	// самого длинного окна подлежат удалению
	RetentionWindow = WindowLong
)

// Store определяет интерфейс хранилища событий velocity-трекинга.
// Ошибки хранилища возвращаются явно: трекер перехватывает их и
// деградирует до нулевых счетчиков, никогда не блокируя оценку риска.
// Реализуется типами MemoryStore и redis.Client
type Store interface {
	// Record добавляет событие для пары (сигнал, значение)
	Record(signal Signal, value string, at time.Time, member string) error

	// Count возвращает число событий с меткой времени >= since
	Count(signal Signal, value string, since time.Time) (int64, error)

	// Evict удаляет события старше olderThan по всем ключам
	Evict(olderThan time.Time) error
}

// storeKey формирует ключ хранилища для пары (сигнал, значение)
func storeKey(signal Signal, value string) string {
	return string(signal) + ":" + value
}
