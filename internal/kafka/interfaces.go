package kafka

import (
	"context"

	"payguard-risk-system/internal/models"
)

// Producer определяет интерфейс для отправки сообщений в Kafka
type Producer interface {
	SendScoredEvent(event *models.KafkaScoredEvent) error

	Close() error
}

// Consumer определяет интерфейс для чтения сообщений из Kafka
type Consumer interface {
	Start(ctx context.Context) error

	Close() error
}
