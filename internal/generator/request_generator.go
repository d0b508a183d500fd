package generator

import (
	"fmt"
	"math/rand"
	"time"

	"payguard-risk-system/internal/models"
)

type RequestGenerator struct {
	rand *rand.Rand
}

func NewRequestGenerator() *RequestGenerator {
	return &RequestGenerator{
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// GenerateRandomRequest генерирует запрос со случайным уровнем риска
func (g *RequestGenerator) GenerateRandomRequest() *models.RiskScoreRequest {
	levels := []string{"low", "medium", "high"}
	return g.GenerateRequest(levels[g.rand.Intn(len(levels))])
}

// GenerateRequest генерирует запрос на скоринг с заданным уровнем риска
func (g *RequestGenerator) GenerateRequest(riskLevel string) *models.RiskScoreRequest {
	// Генерируем уникальный ID на основе времени и случайного числа
	baseID := time.Now().UnixNano() + g.rand.Int63n(1000000000)

	req := &models.RiskScoreRequest{
		TransactionID:     fmt.Sprintf("txn-auto-%d", baseID),
		Currency:          "USD",
		CardLastFour:      fmt.Sprintf("%04d", g.rand.Intn(10000)),
		CardBrand:         g.getRandomBrand(),
		CustomerIP:        g.getRandomIP(),
		DeviceFingerprint: fmt.Sprintf("fp-%08x", g.rand.Uint32()),
	}

	switch riskLevel {
	case "low":
		g.generateLowRisk(req)
	case "medium":
		g.generateMediumRisk(req)
	case "high":
		g.generateHighRisk(req)
	default:
		g.generateLowRisk(req)
	}

	return req
}

// generateLowRisk генерирует запрос с низким риском
func (g *RequestGenerator) generateLowRisk(req *models.RiskScoreRequest) {
	// Небольшая сумма (до 50000 центов), обычный BIN, безопасная страна
	req.AmountCents = 1000 + g.rand.Int63n(49000)
	req.CardBIN = g.getRandomSafeBIN()
	req.CustomerEmail = fmt.Sprintf("customer%d@%s", g.rand.Intn(100000), g.getRandomSafeDomain())
	req.CustomerCountry = g.getRandomSafeCountry()
}

// generateMediumRisk генерирует запрос со средним риском
func (g *RequestGenerator) generateMediumRisk(req *models.RiskScoreRequest) {
	// Вариант 1: очень крупная сумма (20 баллов)
	// Вариант 2: тестовый BIN (25 баллов)
	// Вариант 3: крупная сумма + круглая сумма (10 + 10 баллов)
	variant := g.rand.Intn(3)

	switch variant {
	case 0:
		req.AmountCents = 100001 + g.rand.Int63n(400000)
		req.CardBIN = g.getRandomSafeBIN()
	case 1:
		req.AmountCents = 1000 + g.rand.Int63n(49000)
		req.CardBIN = g.getRandomTestBIN()
	case 2:
		// Круглая сумма, кратная 10000 центам
		req.AmountCents = int64(2+g.rand.Intn(9)) * 10000
		req.CardBIN = g.getRandomSafeBIN()
	}

	req.CustomerEmail = fmt.Sprintf("customer%d@%s", g.rand.Intn(100000), g.getRandomSafeDomain())
	req.CustomerCountry = g.getRandomSafeCountry()
}

// generateHighRisk генерирует запрос с высоким риском
func (g *RequestGenerator) generateHighRisk(req *models.RiskScoreRequest) {
	// Высокорисковая страна + одноразовая почта + тестовый BIN + крупная сумма
	req.AmountCents = 100001 + g.rand.Int63n(900000)
	req.CardBIN = g.getRandomTestBIN()
	req.CustomerEmail = fmt.Sprintf("user%d@%s", g.rand.Intn(100000), g.getRandomDisposableDomain())
	req.CustomerCountry = g.getRandomHighRiskCountry()
}

func (g *RequestGenerator) getRandomBrand() string {
	brands := []string{"visa", "mastercard", "amex"}
	return brands[g.rand.Intn(len(brands))]
}

func (g *RequestGenerator) getRandomIP() string {
	return fmt.Sprintf("%d.%d.%d.%d", 1+g.rand.Intn(223), g.rand.Intn(256), g.rand.Intn(256), 1+g.rand.Intn(254))
}

func (g *RequestGenerator) getRandomSafeBIN() string {
	bins := []string{"424242", "510510", "371449", "601100", "453201"}
	return bins[g.rand.Intn(len(bins))]
}

func (g *RequestGenerator) getRandomTestBIN() string {
	bins := []string{"400000", "411111", "555555"}
	return bins[g.rand.Intn(len(bins))]
}

func (g *RequestGenerator) getRandomSafeCountry() string {
	countries := []string{"US", "GB", "DE", "FR", "IT", "ES", "NL", "BE", "CA", "AU"}
	return countries[g.rand.Intn(len(countries))]
}

func (g *RequestGenerator) getRandomHighRiskCountry() string {
	countries := []string{"NG", "RU", "CN", "VN", "PH", "ID"}
	return countries[g.rand.Intn(len(countries))]
}

func (g *RequestGenerator) getRandomSafeDomain() string {
	domains := []string{"gmail.com", "yahoo.com", "outlook.com", "icloud.com", "proton.me"}
	return domains[g.rand.Intn(len(domains))]
}

func (g *RequestGenerator) getRandomDisposableDomain() string {
	domains := []string{"mailinator.com", "guerrillamail.com", "10minutemail.com", "yopmail.com"}
	return domains[g.rand.Intn(len(domains))]
}
