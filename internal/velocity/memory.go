package velocity

import (
	"sync"
	"time"
)

type event struct {
	at     time.Time
	member string
}

// MemoryStore представляет потокобезопасное хранилище событий в памяти процесса.
// Один общий мьютекс защищает чтение, запись и очистку: конкуренция низкая,
// блокировка сверх этого не вводится
type MemoryStore struct {
	mu     sync.Mutex
	events map[string][]event
}

// NewMemoryStore создает пустое хранилище событий
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		events: make(map[string][]event),
	}
}

// Record добавляет событие для пары (сигнал, значение)
func (m *MemoryStore) Record(signal Signal, value string, at time.Time, member string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := storeKey(signal, value)
	m.events[key] = append(m.events[key], event{at: at, member: member})
	return nil
}

// Count возвращает число событий с меткой времени >= since
func (m *MemoryStore) Count(signal Signal, value string, since time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var count int64
	for _, e := range m.events[storeKey(signal, value)] {
		if !e.at.Before(since) {
			count++
		}
	}
	return count, nil
}

// Evict удаляет события старше olderThan по всем ключам,
// пустые ключи удаляются целиком
func (m *MemoryStore) Evict(olderThan time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for key, events := range m.events {
		kept := events[:0]
		for _, e := range events {
			if e.at.After(olderThan) {
				kept = append(kept, e)
			}
		}
		if len(kept) == 0 {
			delete(m.events, key)
			continue
		}
		m.events[key] = kept
	}
	return nil
}

// Убеждаемся, что MemoryStore реализует Store
var _ Store = (*MemoryStore)(nil)
