package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"payguard-risk-system/internal/models"

	redisv9 "github.com/redis/go-redis/v9"
)

// SaveScore сохраняет результат оценки в Redis с TTL 1 час
func (c *Client) SaveScore(transactionID string, response *models.RiskScoreResponse) error {
	ctx := context.Background()
	key := fmt.Sprintf("score:%s", transactionID)

	data, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("failed to marshal score: %w", err)
	}

	return c.rdb.Set(ctx, key, data, time.Hour).Err()
}

// GetScore получает результат оценки из Redis
func (c *Client) GetScore(transactionID string) (*models.RiskScoreResponse, error) {
	ctx := context.Background()
	key := fmt.Sprintf("score:%s", transactionID)

	data, err := c.rdb.Get(ctx, key).Result()
	if err == redisv9.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get score: %w", err)
	}

	var response models.RiskScoreResponse
	if err := json.Unmarshal([]byte(data), &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal score: %w", err)
	}

	return &response, nil
}
