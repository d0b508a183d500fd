package monitor

import (
	"log"

	"payguard-risk-system/internal/config"
	"payguard-risk-system/internal/kafka"
	"payguard-risk-system/internal/models"
	"payguard-risk-system/internal/redis"
	"payguard-risk-system/internal/storage"
	"payguard-risk-system/internal/storage/sqlite"
)

// Dependencies содержит все зависимости risk monitor service
type Dependencies struct {
	StorageConn   *sqlite.SQLiteStorage
	StorageRepo   storage.DecisionRepository
	RedisClient   *redis.Client
	KafkaConsumer kafka.Consumer
}

// InitializeDependencies инициализирует все зависимости risk monitor service
func InitializeDependencies(cfg *config.Config) (*Dependencies, error) {
	// Инициализация SQLite
	storageConn, err := sqlite.NewConnection(cfg)
	if err != nil {
		return nil, err
	}

	storageRepo := sqlite.NewRepository(storageConn)

	// Инициализация Redis
	log.Println("Connecting to Redis...")
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis, decision stats will not be tracked: %v", err)
		redisClient = nil
	} else {
		log.Println("Redis connection established")
	}

	// Настройка обработчика Kafka событий
	handler := func(event *models.KafkaScoredEvent) error {
		return processScoredEvent(event, storageRepo, redisClient)
	}

	// Инициализация Kafka Consumer
	log.Println("Connecting to Kafka...")
	consumer, err := kafka.NewConsumer(cfg, handler)
	if err != nil {
		return nil, err
	}
	log.Println("Kafka consumer connected successfully")

	return &Dependencies{
		StorageConn:   storageConn,
		StorageRepo:   storageRepo,
		RedisClient:   redisClient,
		KafkaConsumer: consumer,
	}, nil
}

// Close закрывает все соединения
func (d *Dependencies) Close() error {
	if d.KafkaConsumer != nil {
		if err := d.KafkaConsumer.Close(); err != nil {
			return err
		}
	}
	if d.RedisClient != nil {
		if err := d.RedisClient.Close(); err != nil {
			return err
		}
	}
	if d.StorageConn != nil {
		if err := d.StorageConn.Close(); err != nil {
			return err
		}
	}
	return nil
}
