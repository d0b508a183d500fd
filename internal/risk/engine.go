package risk

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"payguard-risk-system/internal/models"
	"payguard-risk-system/internal/velocity"
)

// MaxRiskScore задает верхнюю границу итогового балла риска
const MaxRiskScore = 100

// Локальные части email, характерные для автосгенерированных адресов
var (
	allDigitsLocalPattern    = regexp.MustCompile(`^\d+$`)
	letterDigitsLocalPattern = regexp.MustCompile(`^[a-zA-Z]\d{5,}$`)
)

// Engine выполняет оценку риска одной транзакции: упорядоченный набор
// правил с ранним выходом по белым/черным спискам мерчанта
type Engine struct {
	tracker velocity.TrackerInterface
	rules   RuleSet
}

// NewEngine создает движок оценки риска
func NewEngine(tracker velocity.TrackerInterface, rules RuleSet) *Engine {
	return &Engine{
		tracker: tracker,
		rules:   rules,
	}
}

// CalculateRiskScore вычисляет балл риска, список факторов и решение
// для одной транзакции. Метод не возвращает ошибок: единственная
// fallible-подсистема (velocity-трекер) деградирует до нулевых счетчиков
func (e *Engine) CalculateRiskScore(req *models.RiskScoreRequest, rctx *models.RiskContext) *models.RiskScoreResponse {
	start := time.Now()

	transactionID := req.TransactionID
	if transactionID == "" {
		transactionID = "txn_" + uuid.New().String()
	}

	email := strings.ToLower(req.CustomerEmail)

	// 1. Белый список: немедленный approve, velocity не читается и не пишется
	if (email != "" && rctx.WhitelistedEmails[email]) ||
		(req.CustomerIP != "" && rctx.WhitelistedIPs[req.CustomerIP]) {
		return respond(transactionID, start, 0, models.DecisionApprove, []models.RiskFactor{{
			Factor:      "whitelisted",
			Score:       0,
			Description: "Customer email or IP is whitelisted by the merchant",
			Severity:    models.SeverityLow,
		}})
	}

	// 2. Черный список: немедленный decline, проверяется строго после белого
	if (email != "" && rctx.BlacklistedEmails[email]) ||
		(req.CustomerIP != "" && rctx.BlacklistedIPs[req.CustomerIP]) {
		return respond(transactionID, start, MaxRiskScore, models.DecisionDecline, []models.RiskFactor{{
			Factor:      "blacklisted",
			Score:       MaxRiskScore,
			Description: "Customer email or IP is blacklisted by the merchant",
			Severity:    models.SeverityHigh,
		}})
	}

	factors := make([]models.RiskFactor, 0, 8)

	// 3. Velocity-факторы. Счетчики по отпечатку устройства запрашиваются,
	// но правила по ним пока нет: задел под device_velocity
	signals := velocity.SignalsFromRequest(req)
	counts := e.tracker.GetVelocityCounts(signals)

	if counts.IP5m > e.rules.IPVelocityThreshold {
		severity := models.SeverityMedium
		if counts.IP5m > e.rules.IPVelocityHighCount {
			severity = models.SeverityHigh
		}
		factors = append(factors, models.RiskFactor{
			Factor:      "ip_velocity",
			Score:       capScore(int(counts.IP5m)*e.rules.IPVelocityWeight, e.rules.IPVelocityCap),
			Description: fmt.Sprintf("IP address seen in %d transactions in the last 5 minutes", counts.IP5m),
			Severity:    severity,
		})
	}

	if counts.Card5m > e.rules.CardVelocityThreshold {
		severity := models.SeverityMedium
		if counts.Card5m > e.rules.CardVelocityHighCount {
			severity = models.SeverityHigh
		}
		factors = append(factors, models.RiskFactor{
			Factor:      "card_velocity",
			Score:       capScore(int(counts.Card5m)*e.rules.CardVelocityWeight, e.rules.CardVelocityCap),
			Description: fmt.Sprintf("Card BIN seen in %d transactions in the last 5 minutes", counts.Card5m),
			Severity:    severity,
		})
	}

	if counts.Email15m > e.rules.EmailVelocityThreshold {
		factors = append(factors, models.RiskFactor{
			Factor:      "email_velocity",
			Score:       capScore(int(counts.Email15m)*e.rules.EmailVelocityWeight, e.rules.EmailVelocityCap),
			Description: fmt.Sprintf("Email used in %d transactions in the last 15 minutes", counts.Email15m),
			Severity:    models.SeverityMedium,
		})
	}

	// 4. Факторы суммы: high_amount и round_amount независимы и могут
	// сработать на одной транзакции
	if req.AmountCents > e.rules.HighAmountCents {
		score, severity := e.rules.HighAmountScore, models.SeverityLow
		if req.AmountCents > e.rules.VeryHighAmountCents {
			score, severity = e.rules.VeryHighAmountScore, models.SeverityMedium
		}
		factors = append(factors, models.RiskFactor{
			Factor:      "high_amount",
			Score:       score,
			Description: fmt.Sprintf("High transaction amount: %d cents", req.AmountCents),
			Severity:    severity,
		})
	}

	if req.AmountCents > e.rules.RoundAmountStepCents && req.AmountCents%e.rules.RoundAmountStepCents == 0 {
		factors = append(factors, models.RiskFactor{
			Factor:      "round_amount",
			Score:       e.rules.RoundAmountScore,
			Description: fmt.Sprintf("Suspiciously round amount: %d cents", req.AmountCents),
			Severity:    models.SeverityLow,
		})
	}

	// 5. Проверка BIN карты
	if req.CardBIN != "" && e.rules.HighRiskBINs[req.CardBIN] {
		factors = append(factors, models.RiskFactor{
			Factor:      "high_risk_bin",
			Score:       e.rules.HighRiskBINScore,
			Description: fmt.Sprintf("Card BIN %s is associated with elevated fraud rates", req.CardBIN),
			Severity:    models.SeverityMedium,
		})
	}

	// 6. География
	if req.CustomerCountry != "" && e.rules.HighRiskCountries[req.CustomerCountry] {
		factors = append(factors, models.RiskFactor{
			Factor:      "high_risk_country",
			Score:       e.rules.HighRiskCountryScore,
			Description: fmt.Sprintf("Transaction from high-risk country: %s", req.CustomerCountry),
			Severity:    models.SeverityHigh,
		})
	}

	// 7. Репутация email: одноразовый домен и подозрительная локальная
	// часть проверяются независимо
	if email != "" {
		if local, domain, ok := strings.Cut(email, "@"); ok {
			if e.rules.DisposableEmailDomains[domain] {
				factors = append(factors, models.RiskFactor{
					Factor:      "disposable_email",
					Score:       e.rules.DisposableEmailScore,
					Description: fmt.Sprintf("Disposable email provider: %s", domain),
					Severity:    models.SeverityHigh,
				})
			}
			if allDigitsLocalPattern.MatchString(local) || letterDigitsLocalPattern.MatchString(local) {
				factors = append(factors, models.RiskFactor{
					Factor:      "suspicious_email",
					Score:       e.rules.SuspiciousEmailScore,
					Description: "Email address matches auto-generated pattern",
					Severity:    models.SeverityMedium,
				})
			}
		}
	}

	// 8. Штрафы за отсутствие данных
	if req.CustomerIP == "" {
		factors = append(factors, models.RiskFactor{
			Factor:      "missing_ip",
			Score:       e.rules.MissingIPScore,
			Description: "Customer IP address not provided",
			Severity:    models.SeverityLow,
		})
	}
	if req.DeviceFingerprint == "" {
		factors = append(factors, models.RiskFactor{
			Factor:      "missing_device",
			Score:       e.rules.MissingDeviceScore,
			Description: "Device fingerprint not provided",
			Severity:    models.SeverityLow,
		})
	}

	// 9. Суммируем баллы с ограничением сверху
	total := 0
	for _, f := range factors {
		total += f.Score
	}
	if total > MaxRiskScore {
		total = MaxRiskScore
	}

	decision := e.decide(total, rctx.MerchantRiskTolerance)

	// Записываем транзакцию в трекер после оценки: её собственное событие
	// не влияет на её же счетчики, но видно следующей транзакции
	e.tracker.TrackTransaction(signals, req.AmountCents)

	return respond(transactionID, start, total, decision, factors)
}

// decide выводит решение из итогового балла и толерантности мерчанта.
// Низкая толерантность прижимает оба порога к их нижним границам
func (e *Engine) decide(total int, tolerance float64) string {
	if tolerance <= 0 {
		tolerance = e.rules.DefaultTolerance
	}

	approveThreshold := math.Max(e.rules.ApproveFloor, tolerance*e.rules.ApproveFactor)
	reviewThreshold := math.Max(e.rules.ReviewFloor, tolerance*e.rules.ReviewFactor)

	switch {
	case float64(total) <= approveThreshold:
		return models.DecisionApprove
	case float64(total) <= reviewThreshold:
		return models.DecisionReview
	default:
		return models.DecisionDecline
	}
}

// respond собирает ответ: факторы сортируются по убыванию балла,
// при равенстве сохраняется порядок накопления
func respond(transactionID string, start time.Time, score int, decision string, factors []models.RiskFactor) *models.RiskScoreResponse {
	sort.SliceStable(factors, func(i, j int) bool {
		return factors[i].Score > factors[j].Score
	})

	return &models.RiskScoreResponse{
		TransactionID:    transactionID,
		RiskScore:        score,
		Decision:         decision,
		RiskFactors:      factors,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
	}
}

func capScore(score, cap int) int {
	if score > cap {
		return cap
	}
	return score
}
