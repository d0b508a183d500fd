package services

import (
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"payguard-risk-system/internal/config"
	"payguard-risk-system/internal/kafka"
	"payguard-risk-system/internal/logger"
	"payguard-risk-system/internal/models"
	"payguard-risk-system/internal/redis"
	"payguard-risk-system/internal/storage"
)

// ScoringServiceImpl реализует интерфейс ScoringService
type ScoringServiceImpl struct {
	scorer           RiskScorer
	repo             storage.DecisionRepository
	producer         kafka.Producer
	redisClient      redis.ClientInterface // Опциональный Redis клиент для кэширования результатов
	defaultTolerance float64
}

// NewScoringService создает новый сервис скоринга
func NewScoringService(scorer RiskScorer, repo storage.DecisionRepository, producer kafka.Producer, cfg *config.Config) ScoringService {
	return &ScoringServiceImpl{
		scorer:           scorer,
		repo:             repo,
		producer:         producer,
		defaultTolerance: cfg.Risk.DefaultTolerance,
	}
}

// NewScoringServiceWithRedis создает новый сервис скоринга с поддержкой Redis
func NewScoringServiceWithRedis(scorer RiskScorer, repo storage.DecisionRepository, producer kafka.Producer, redisClient redis.ClientInterface, cfg *config.Config) ScoringService {
	return &ScoringServiceImpl{
		scorer:           scorer,
		repo:             repo,
		producer:         producer,
		redisClient:      redisClient,
		defaultTolerance: cfg.Risk.DefaultTolerance,
	}
}

// buildRiskContext строит контекст оценки из контекста мерчанта в запросе.
// Почтовые адреса в списках приводятся к нижнему регистру
func (s *ScoringServiceImpl) buildRiskContext(mc *models.MerchantContext) *models.RiskContext {
	tolerance := s.defaultTolerance
	if mc != nil && mc.RiskTolerance > 0 {
		tolerance = mc.RiskTolerance
	}

	rctx := models.NewRiskContext(tolerance)
	if mc == nil {
		return rctx
	}

	for _, email := range mc.WhitelistedEmails {
		rctx.WhitelistedEmails[strings.ToLower(email)] = true
	}
	for _, ip := range mc.WhitelistedIPs {
		rctx.WhitelistedIPs[ip] = true
	}
	for _, email := range mc.BlacklistedEmails {
		rctx.BlacklistedEmails[strings.ToLower(email)] = true
	}
	for _, ip := range mc.BlacklistedIPs {
		rctx.BlacklistedIPs[ip] = true
	}

	return rctx
}

// ScoreTransaction оценивает риск транзакции и сохраняет решение.
// Ошибки периферии (БД, Redis, Kafka) не блокируют ответ
func (s *ScoringServiceImpl) ScoreTransaction(req *models.ScoreRequest) (*models.RiskScoreResponse, error) {
	rctx := s.buildRiskContext(req.MerchantContext)

	logger.LogEvent(logger.EventScoreRequested, "scoring-service", "rest", map[string]interface{}{
		"transaction_id": req.TransactionID,
		"amount_cents":   req.AmountCents,
	})

	response := s.scorer.CalculateRiskScore(&req.RiskScoreRequest, rctx)

	// Счетчики скорости обновляются движком в ходе оценки
	logger.LogEvent(logger.EventVelocityTracked, "scoring-service", "velocity", map[string]interface{}{
		"transaction_id": response.TransactionID,
	})

	// Сохраняем решение в БД
	if err := s.repo.SaveDecision(&req.RiskScoreRequest, response); err != nil {
		log.Printf("Warning: failed to save decision for %s: %v", response.TransactionID, err)
	} else {
		logger.LogEvent(logger.EventDBUpdated, "scoring-service", "sqlite", map[string]interface{}{
			"transaction_id": response.TransactionID,
			"decision":       response.Decision,
		})
	}

	// Кэшируем результат в Redis
	if s.redisClient != nil {
		if err := s.redisClient.SaveScore(response.TransactionID, response); err != nil {
			log.Printf("Warning: failed to cache score for %s: %v", response.TransactionID, err)
		} else {
			logger.LogEvent(logger.EventRedisSaved, "scoring-service", "redis", map[string]interface{}{
				"transaction_id": response.TransactionID,
			})
		}
	}

	// Публикуем событие в Kafka
	if s.producer != nil {
		event := s.buildScoredEvent(req, response)
		if err := s.producer.SendScoredEvent(event); err != nil {
			log.Printf("Warning: failed to publish scored event for %s: %v", response.TransactionID, err)
		} else {
			logger.LogEvent(logger.EventKafkaSent, "scoring-service", "kafka", map[string]interface{}{
				"transaction_id": response.TransactionID,
				"event_id":       event.EventID,
			})
		}
	}

	logger.LogEvent(logger.EventScoreCompleted, "scoring-service", "risk", map[string]interface{}{
		"transaction_id": response.TransactionID,
		"risk_score":     response.RiskScore,
		"decision":       response.Decision,
	})

	return response, nil
}

// buildScoredEvent создает событие оцененной транзакции для Kafka
func (s *ScoringServiceImpl) buildScoredEvent(req *models.ScoreRequest, resp *models.RiskScoreResponse) *models.KafkaScoredEvent {
	tags := make([]string, 0, len(resp.RiskFactors))
	for _, f := range resp.RiskFactors {
		tags = append(tags, f.Factor)
	}

	return &models.KafkaScoredEvent{
		EventID:   "evt_" + uuid.New().String(),
		EventType: "transaction_scored",
		Timestamp: time.Now(),
		Data: models.KafkaScoredData{
			TransactionID:    resp.TransactionID,
			AmountCents:      req.AmountCents,
			Currency:         req.Currency,
			RiskScore:        resp.RiskScore,
			Decision:         resp.Decision,
			FactorTags:       tags,
			ProcessingTimeMs: resp.ProcessingTimeMs,
		},
	}
}

// GetDecision возвращает сохраненное решение по transaction_id
func (s *ScoringServiceImpl) GetDecision(transactionID string) (*models.DecisionResponse, error) {
	record, err := s.repo.GetDecisionByTransactionID(transactionID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}

	return decisionToResponse(record), nil
}

// GetAllDecisions возвращает последние решения
func (s *ScoringServiceImpl) GetAllDecisions(limit int) ([]*models.DecisionResponse, error) {
	records, err := s.repo.GetAllDecisions(limit)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.DecisionResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, decisionToResponse(record))
	}

	return responses, nil
}

// ClearAllDecisions очищает все решения
func (s *ScoringServiceImpl) ClearAllDecisions() error {
	if err := s.repo.ClearAllDecisions(); err != nil {
		return err
	}

	// Сбрасываем кэш и счетчики в Redis
	if s.redisClient != nil {
		if err := s.redisClient.ClearScoringData(); err != nil {
			log.Printf("Warning: failed to clear scoring data in Redis: %v", err)
		}
	}

	return nil
}

// decisionToResponse преобразует запись БД в ответ API
func decisionToResponse(record *models.DecisionRecord) *models.DecisionResponse {
	factors := []models.RiskFactor{}
	if record.FactorsJSON != "" {
		if err := json.Unmarshal([]byte(record.FactorsJSON), &factors); err != nil {
			log.Printf("Warning: failed to unmarshal factors for %s: %v", record.TransactionID, err)
		}
	}

	return &models.DecisionResponse{
		TransactionID:    record.TransactionID,
		AmountCents:      record.AmountCents,
		Currency:         record.Currency,
		RiskScore:        record.RiskScore,
		Decision:         record.Decision,
		RiskFactors:      factors,
		ProcessingTimeMs: record.ProcessingTimeMs,
		ReviewStatus:     record.ReviewStatus,
		CreatedAt:        record.CreatedAt,
	}
}
