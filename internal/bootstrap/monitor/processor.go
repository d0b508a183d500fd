package monitor

import (
	"log"

	"payguard-risk-system/internal/logger"
	"payguard-risk-system/internal/models"
	"payguard-risk-system/internal/redis"
	"payguard-risk-system/internal/storage"
)

// processScoredEvent обрабатывает событие оцененной транзакции из Kafka.
// Решения review и decline ставятся в очередь на ручную проверку
func processScoredEvent(
	event *models.KafkaScoredEvent,
	repo storage.DecisionRepository,
	redisClient *redis.Client,
) error {
	log.Printf("Processing scored transaction: %s", event.Data.TransactionID)

	logger.LogEvent(logger.EventKafkaReceived, "risk-monitor-service", "kafka", map[string]interface{}{
		"transaction_id": event.Data.TransactionID,
		"event_id":       event.EventID,
		"decision":       event.Data.Decision,
	})

	// Обновляем счетчики решений
	if redisClient != nil {
		if err := redisClient.IncrementDecisionStats(event.Data.Decision); err != nil {
			log.Printf("Error updating decision stats: %v", err)
		}
	}

	// Решения approve не требуют ручной проверки
	if event.Data.Decision == models.DecisionApprove {
		return nil
	}

	if err := repo.UpdateReviewStatus(event.Data.TransactionID, models.ReviewStatusQueued); err != nil {
		log.Printf("Error queueing decision for review: %v", err)
		return err
	}

	logger.LogEvent(logger.EventDecisionQueued, "risk-monitor-service", "sqlite", map[string]interface{}{
		"transaction_id": event.Data.TransactionID,
		"decision":       event.Data.Decision,
		"risk_score":     event.Data.RiskScore,
	})

	log.Printf("Transaction %s queued for review: decision=%s, risk_score=%d",
		event.Data.TransactionID, event.Data.Decision, event.Data.RiskScore)

	return nil
}
