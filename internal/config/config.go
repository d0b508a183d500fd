package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DB     DBConfig
	Redis  RedisConfig
	Kafka  KafkaConfig
	Server ServerConfig
	Risk   RiskConfig
}

type DBConfig struct {
	DBPath string // Путь к файлу SQLite
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

type KafkaConfig struct {
	Brokers         []string
	ScoredTopic     string
	ConsumerGroupID string
}

type ServerConfig struct {
	ScoringPort int
	MonitorPort int
}

type RiskConfig struct {
	// Толерантность мерчанта к риску по умолчанию, если не передана в запросе
	DefaultTolerance float64
}

func Load() *Config {
	// Загружаем .env файл, если он существует
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		DB: DBConfig{
			DBPath: getEnv("DB_PATH", "./data/payguard.db"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		Kafka: KafkaConfig{
			Brokers:         []string{getEnv("KAFKA_BROKERS", "localhost:9092")},
			ScoredTopic:     getEnv("KAFKA_SCORED_TOPIC", "payguard.transactions.scored"),
			ConsumerGroupID: getEnv("KAFKA_CONSUMER_GROUP", "risk-monitor-group"),
		},
		Server: ServerConfig{
			ScoringPort: getEnvAsInt("SCORING_SERVICE_PORT", 8080),
			MonitorPort: getEnvAsInt("RISK_MONITOR_SERVICE_PORT", 8081),
		},
		Risk: RiskConfig{
			DefaultTolerance: getEnvAsFloat("RISK_DEFAULT_TOLERANCE", 50),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}
