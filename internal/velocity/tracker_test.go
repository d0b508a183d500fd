package velocity

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payguard-risk-system/internal/models"
)

type recordCall struct {
	signal Signal
	value  string
	at     time.Time
	member string
}

type countCall struct {
	signal Signal
	value  string
	since  time.Time
}

// spyStore записывает вызовы и позволяет подставлять ошибки
type spyStore struct {
	records  []recordCall
	counts   []countCall
	evicted  []time.Time
	countVal int64
	err      error
}

func (s *spyStore) Record(signal Signal, value string, at time.Time, member string) error {
	s.records = append(s.records, recordCall{signal, value, at, member})
	return s.err
}

func (s *spyStore) Count(signal Signal, value string, since time.Time) (int64, error) {
	s.counts = append(s.counts, countCall{signal, value, since})
	return s.countVal, s.err
}

func (s *spyStore) Evict(olderThan time.Time) error {
	s.evicted = append(s.evicted, olderThan)
	return s.err
}

var _ Store = (*spyStore)(nil)

func TestSignalsFromRequest(t *testing.T) {
	req := &models.RiskScoreRequest{
		CardBIN:           "424242",
		CustomerEmail:     "Alice@Example.COM",
		CustomerIP:        "10.0.0.1",
		DeviceFingerprint: "fp_1",
	}

	signals := SignalsFromRequest(req)

	assert.Equal(t, "10.0.0.1", signals.IP)
	assert.Equal(t, "424242", signals.CardBIN)
	assert.Equal(t, "alice@example.com", signals.Email)
	assert.Equal(t, "fp_1", signals.DeviceFingerprint)
}

func TestTrackTransaction_RecordsPresentSignals(t *testing.T) {
	store := &spyStore{}
	tracker := NewTracker(store)

	tracker.TrackTransaction(Signals{
		IP:      "10.0.0.1",
		CardBIN: "424242",
	}, 12345)

	require.Len(t, store.records, 2)
	assert.Equal(t, SignalIP, store.records[0].signal)
	assert.Equal(t, "10.0.0.1", store.records[0].value)
	assert.Equal(t, SignalCard, store.records[1].signal)
	assert.Equal(t, "424242", store.records[1].value)

	// Токен события одинаков для всех сигналов одной транзакции
	assert.Equal(t, store.records[0].member, store.records[1].member)
	assert.Contains(t, store.records[0].member, ":12345")
}

func TestTrackTransaction_AllSignals(t *testing.T) {
	store := &spyStore{}
	tracker := NewTracker(store)

	tracker.TrackTransaction(Signals{
		IP:                "10.0.0.1",
		CardBIN:           "424242",
		Email:             "alice@example.com",
		DeviceFingerprint: "fp_1",
	}, 100)

	require.Len(t, store.records, 4)
	assert.Equal(t, SignalEmail, store.records[2].signal)
	assert.Equal(t, SignalDevice, store.records[3].signal)
}

func TestTrackTransaction_EmptySignalsRecordNothing(t *testing.T) {
	store := &spyStore{}
	tracker := NewTracker(store)

	tracker.TrackTransaction(Signals{}, 100)

	assert.Empty(t, store.records)
	// Очистка запускается даже без записей
	assert.Len(t, store.evicted, 1)
}

func TestTrackTransaction_EvictsAtRetentionHorizon(t *testing.T) {
	store := &spyStore{}
	tracker := NewTracker(store)

	before := time.Now()
	tracker.TrackTransaction(Signals{IP: "10.0.0.1"}, 100)
	after := time.Now()

	require.Len(t, store.evicted, 1)
	horizon := store.evicted[0]
	assert.False(t, horizon.Before(before.Add(-RetentionWindow)))
	assert.False(t, horizon.After(after.Add(-RetentionWindow)))
}

func TestTrackTransaction_StoreErrorsSwallowed(t *testing.T) {
	store := &spyStore{err: errors.New("store unavailable")}
	tracker := NewTracker(store)

	// Не должно паниковать и не должно ничего возвращать наружу
	tracker.TrackTransaction(Signals{IP: "10.0.0.1", Email: "a@b.com"}, 100)

	assert.Len(t, store.records, 2)
	assert.Len(t, store.evicted, 1)
}

func TestGetVelocityCounts(t *testing.T) {
	store := &spyStore{countVal: 7}
	tracker := NewTracker(store)

	counts := tracker.GetVelocityCounts(Signals{
		IP:                "10.0.0.1",
		CardBIN:           "424242",
		Email:             "alice@example.com",
		DeviceFingerprint: "fp_1",
	})

	assert.Equal(t, int64(7), counts.IP5m)
	assert.Equal(t, int64(7), counts.IP15m)
	assert.Equal(t, int64(7), counts.Card5m)
	assert.Equal(t, int64(7), counts.Card15m)
	assert.Equal(t, int64(7), counts.Email5m)
	assert.Equal(t, int64(7), counts.Email15m)
	assert.Equal(t, int64(7), counts.Device5m)
	assert.Equal(t, int64(7), counts.Device15m)

	// По два окна на каждый из четырех сигналов
	assert.Len(t, store.counts, 8)
}

func TestGetVelocityCounts_EmptySignalsSkipStore(t *testing.T) {
	store := &spyStore{countVal: 7}
	tracker := NewTracker(store)

	counts := tracker.GetVelocityCounts(Signals{IP: "10.0.0.1"})

	assert.Equal(t, int64(7), counts.IP5m)
	assert.Equal(t, int64(0), counts.Card5m)
	assert.Equal(t, int64(0), counts.Email15m)
	assert.Equal(t, int64(0), counts.Device5m)

	// Хранилище опрашивается только по заполненному сигналу
	assert.Len(t, store.counts, 2)
}

func TestGetVelocityCounts_StoreErrorDegradesToZero(t *testing.T) {
	store := &spyStore{countVal: 7, err: errors.New("store unavailable")}
	tracker := NewTracker(store)

	counts := tracker.GetVelocityCounts(Signals{IP: "10.0.0.1", CardBIN: "424242"})

	assert.Equal(t, models.VelocityCounts{}, counts)
}

func TestTrackerWithMemoryStore(t *testing.T) {
	// Сквозной сценарий на реальном хранилище
	tracker := NewTracker(NewMemoryStore())
	signals := Signals{IP: "10.0.0.1", CardBIN: "424242", Email: "alice@example.com"}

	for i := 0; i < 4; i++ {
		tracker.TrackTransaction(signals, 100)
	}

	counts := tracker.GetVelocityCounts(signals)
	assert.Equal(t, int64(4), counts.IP5m)
	assert.Equal(t, int64(4), counts.Card5m)
	assert.Equal(t, int64(4), counts.Email15m)
	assert.Equal(t, int64(0), counts.Device5m)

	// Повторное чтение не меняет счетчики
	again := tracker.GetVelocityCounts(signals)
	assert.Equal(t, counts, again)
}
