package scoring

import (
	"log"

	"payguard-risk-system/internal/config"
	"payguard-risk-system/internal/kafka"
	"payguard-risk-system/internal/redis"
	"payguard-risk-system/internal/risk"
	"payguard-risk-system/internal/services"
	"payguard-risk-system/internal/storage"
	"payguard-risk-system/internal/storage/sqlite"
	"payguard-risk-system/internal/velocity"
)

// Dependencies содержит все зависимости scoring service
type Dependencies struct {
	StorageConn    *sqlite.SQLiteStorage
	StorageRepo    storage.DecisionRepository
	RedisClient    *redis.Client
	Tracker        *velocity.Tracker
	KafkaProducer  kafka.Producer
	ScoringService services.ScoringService
}

// InitializeDependencies инициализирует все зависимости scoring service.
// Недоступные Redis и Kafka не блокируют запуск: скоринг продолжает
// работать на хранилище счетчиков в памяти и без публикации событий
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
		log.Printf("Warning: Failed to connect to Redis, using in-memory velocity store: %v", err)
		redisClient = nil
	} else {
		log.Println("Redis connection established")
	}

	// Выбираем хранилище счетчиков скорости
	var store velocity.Store
	if redisClient != nil {
		store = redisClient
	} else {
		store = velocity.NewMemoryStore()
	}
	tracker := velocity.NewTracker(store)

	// Инициализация движка скоринга
	scorer := services.NewRiskScorer(tracker, risk.DefaultRuleSet())

	// Инициализация Kafka Producer
	log.Println("Connecting to Kafka...")
	producer, err := kafka.NewProducer(cfg)
	if err != nil {
		log.Printf("Warning: Failed to create Kafka producer, scored events will not be published: %v", err)
		producer = nil
	} else {
		log.Println("Kafka producer connected successfully")
	}

	// Создаем сервис скоринга
	var scoringService services.ScoringService
	if redisClient != nil {
		scoringService = services.NewScoringServiceWithRedis(scorer, storageRepo, producer, redisClient, cfg)
	} else {
		scoringService = services.NewScoringService(scorer, storageRepo, producer, cfg)
	}

	return &Dependencies{
		StorageConn:    storageConn,
		StorageRepo:    storageRepo,
		RedisClient:    redisClient,
		Tracker:        tracker,
		KafkaProducer:  producer,
		ScoringService: scoringService,
	}, nil
}

// Close закрывает все соединения
func (d *Dependencies) Close() error {
	if d.KafkaProducer != nil {
		if err := d.KafkaProducer.Close(); err != nil {
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
