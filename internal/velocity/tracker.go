package velocity

import (
	"fmt"
	"log"
	"strings"
	"time"

	"payguard-risk-system/internal/models"
)

// Signals представляет идентификационные сигналы транзакции,
// участвующие в velocity-трекинге
type Signals struct {
	IP                string
	CardBIN           string
	Email             string
	DeviceFingerprint string
}

// SignalsFromRequest извлекает сигналы из запроса на оценку риска.
// Email приводится к нижнему регистру
func SignalsFromRequest(req *models.RiskScoreRequest) Signals {
	return Signals{
		IP:                req.CustomerIP,
		CardBIN:           req.CardBIN,
		Email:             strings.ToLower(req.CustomerEmail),
		DeviceFingerprint: req.DeviceFingerprint,
	}
}

type signalValue struct {
	signal Signal
	value  string
}

// present возвращает только заполненные сигналы
func (s Signals) present() []signalValue {
	var result []signalValue
	if s.IP != "" {
		result = append(result, signalValue{SignalIP, s.IP})
	}
	if s.CardBIN != "" {
		result = append(result, signalValue{SignalCard, s.CardBIN})
	}
	if s.Email != "" {
		result = append(result, signalValue{SignalEmail, s.Email})
	}
	if s.DeviceFingerprint != "" {
		result = append(result, signalValue{SignalDevice, s.DeviceFingerprint})
	}
	return result
}

// Tracker ведет учет частоты транзакций по идентификационным сигналам.
// Все операции best-effort: ошибки хранилища логируются и не
// распространяются на вызывающую сторону
type Tracker struct {
	store Store
}

// NewTracker создает трекер поверх заданного хранилища
func NewTracker(store Store) *Tracker {
	return &Tracker{store: store}
}

// TrackTransaction записывает событие для каждого заполненного сигнала
// и запускает очистку событий старше горизонта хранения
func (t *Tracker) TrackTransaction(s Signals, amountCents int64) {
	now := time.Now()
	// Токен события используется только для уникальности и отладки,
	// обратно не разбирается
	member := fmt.Sprintf("%d:%d", now.UnixNano(), amountCents)

	for _, sv := range s.present() {
		if err := t.store.Record(sv.signal, sv.value, now, member); err != nil {
			log.Printf("Warning: velocity tracking failed for %s: %v", sv.signal, err)
		}
	}

	if err := t.store.Evict(now.Add(-RetentionWindow)); err != nil {
		log.Printf("Warning: velocity eviction failed: %v", err)
	}
}

// GetVelocityCounts возвращает счетчики событий по каждому сигналу за
// 5-минутное и 15-минутное окна. Незаполненные или не встречавшиеся
// сигналы дают ноль; ошибки хранилища также деградируют до нуля
func (t *Tracker) GetVelocityCounts(s Signals) models.VelocityCounts {
	now := time.Now()
	shortSince := now.Add(-WindowShort)
	mediumSince := now.Add(-WindowMedium)

	return models.VelocityCounts{
		IP5m:      t.count(SignalIP, s.IP, shortSince),
		IP15m:     t.count(SignalIP, s.IP, mediumSince),
		Card5m:    t.count(SignalCard, s.CardBIN, shortSince),
		Card15m:   t.count(SignalCard, s.CardBIN, mediumSince),
		Email5m:   t.count(SignalEmail, s.Email, shortSince),
		Email15m:  t.count(SignalEmail, s.Email, mediumSince),
		Device5m:  t.count(SignalDevice, s.DeviceFingerprint, shortSince),
		Device15m: t.count(SignalDevice, s.DeviceFingerprint, mediumSince),
	}
}

func (t *Tracker) count(signal Signal, value string, since time.Time) int64 {
	if value == "" {
		return 0
	}
	n, err := t.store.Count(signal, value, since)
	if err != nil {
		log.Printf("Warning: velocity lookup failed for %s: %v", signal, err)
		return 0
	}
	return n
}
