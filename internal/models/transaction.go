package models

import (
	"time"
)

// Уровни серьезности риск-фактора
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// Решения по транзакции
const (
	DecisionApprove = "approve"
	DecisionReview  = "review"
	DecisionDecline = "decline"
)

// Статусы ручной проверки решения
const (
	ReviewStatusNone   = "none"
	ReviewStatusQueued = "queued"
)

// RiskScoreRequest представляет запрос на оценку риска транзакции
type RiskScoreRequest struct {
	TransactionID     string `json:"transaction_id"`
	AmountCents       int64  `json:"amount_cents"`
	Currency          string `json:"currency"`
	CardBIN           string `json:"card_bin"`
	CardLastFour      string `json:"card_last_four"`
	CardBrand         string `json:"card_brand"`
	CustomerEmail     string `json:"customer_email"`
	CustomerIP        string `json:"customer_ip"`
	CustomerCountry   string `json:"customer_country"`
	DeviceFingerprint string `json:"device_fingerprint"`
}

// RiskFactor представляет один фактор, внесший вклад в итоговый балл риска
type RiskFactor struct {
	Factor      string `json:"factor"`
	Score       int    `json:"score"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
}

// RiskScoreResponse представляет результат оценки риска одной транзакции
type RiskScoreResponse struct {
	TransactionID    string       `json:"transaction_id"`
	RiskScore        int          `json:"risk_score"`
	Decision         string       `json:"decision"`
	RiskFactors      []RiskFactor `json:"risk_factors"`
	ProcessingTimeMs int64        `json:"processing_time_ms"`
}

// RiskContext представляет контекст мерчанта для одной оценки:
// толерантность к риску и белые/черные списки
type RiskContext struct {
	MerchantRiskTolerance float64
	WhitelistedEmails     map[string]bool
	WhitelistedIPs        map[string]bool
	BlacklistedEmails     map[string]bool
	BlacklistedIPs        map[string]bool
}

// NewRiskContext создает контекст с заданной толерантностью и пустыми списками
func NewRiskContext(tolerance float64) *RiskContext {
	return &RiskContext{
		MerchantRiskTolerance: tolerance,
		WhitelistedEmails:     make(map[string]bool),
		WhitelistedIPs:        make(map[string]bool),
		BlacklistedEmails:     make(map[string]bool),
		BlacklistedIPs:        make(map[string]bool),
	}
}

// MerchantContext представляет контекст мерчанта в теле HTTP-запроса
type MerchantContext struct {
	RiskTolerance     float64  `json:"risk_tolerance"`
	WhitelistedEmails []string `json:"whitelisted_emails"`
	WhitelistedIPs    []string `json:"whitelisted_ips"`
	BlacklistedEmails []string `json:"blacklisted_emails"`
	BlacklistedIPs    []string `json:"blacklisted_ips"`
}

// ScoreRequest представляет полное тело запроса POST /score:
// данные транзакции плюс опциональный контекст мерчанта
type ScoreRequest struct {
	RiskScoreRequest
	MerchantContext *MerchantContext `json:"merchant_context,omitempty"`
}

// VelocityCounts представляет счетчики событий по каждому сигналу
// за 5-минутное и 15-минутное окна
type VelocityCounts struct {
	IP5m     int64
	IP15m    int64
	Card5m   int64
	Card15m  int64
	Email5m  int64
	Email15m int64
	Device5m int64
	Device15m int64
}

// DecisionRecord представляет сохраненное решение в БД
type DecisionRecord struct {
	ID               int64      `db:"id"`
	TransactionID    string     `db:"transaction_id"`
	AmountCents      int64      `db:"amount_cents"`
	Currency         *string    `db:"currency"`
	CardBIN          *string    `db:"card_bin"`
	CustomerEmail    *string    `db:"customer_email"`
	CustomerIP       *string    `db:"customer_ip"`
	CustomerCountry  *string    `db:"customer_country"`
	RiskScore        int        `db:"risk_score"`
	Decision         string     `db:"decision"`
	FactorsJSON      string     `db:"factors"`
	ProcessingTimeMs int64      `db:"processing_time_ms"`
	ReviewStatus     string     `db:"review_status"`
	CreatedAt        time.Time  `db:"created_at"`
}

// DecisionResponse представляет ответ на запрос истории решений
type DecisionResponse struct {
	TransactionID    string       `json:"transaction_id"`
	AmountCents      int64        `json:"amount_cents"`
	Currency         *string      `json:"currency,omitempty"`
	RiskScore        int          `json:"risk_score"`
	Decision         string       `json:"decision"`
	RiskFactors      []RiskFactor `json:"risk_factors"`
	ProcessingTimeMs int64        `json:"processing_time_ms"`
	ReviewStatus     string       `json:"review_status"`
	CreatedAt        time.Time    `json:"created_at"`
}

// KafkaScoredEvent представляет событие оцененной транзакции в Kafka
type KafkaScoredEvent struct {
	EventID   string          `json:"event_id"`
	EventType string          `json:"event_type"`
	Timestamp time.Time       `json:"timestamp"`
	Data      KafkaScoredData `json:"data"`
}

// KafkaScoredData представляет данные оцененной транзакции в Kafka
type KafkaScoredData struct {
	TransactionID    string   `json:"transaction_id"`
	AmountCents      int64    `json:"amount_cents"`
	Currency         string   `json:"currency"`
	RiskScore        int      `json:"risk_score"`
	Decision         string   `json:"decision"`
	FactorTags       []string `json:"factor_tags"`
	ProcessingTimeMs int64    `json:"processing_time_ms"`
}
