package redis

import (
	"context"
	"fmt"

	redisv9 "github.com/redis/go-redis/v9"

	"payguard-risk-system/internal/models"
)

// IncrementDecisionStats увеличивает счетчик статистики по решению
func (c *Client) IncrementDecisionStats(decision string) error {
	ctx := context.Background()
	key := fmt.Sprintf("decision_stats:%s", decision)
	return c.rdb.Incr(ctx, key).Err()
}

// GetDecisionStats возвращает счетчики решений по всем исходам
func (c *Client) GetDecisionStats() (map[string]int64, error) {
	ctx := context.Background()

	stats := make(map[string]int64)
	for _, decision := range []string{models.DecisionApprove, models.DecisionReview, models.DecisionDecline} {
		key := fmt.Sprintf("decision_stats:%s", decision)
		count, err := c.rdb.Get(ctx, key).Int64()
		if err == redisv9.Nil {
			stats[decision] = 0
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get decision stats for %s: %w", decision, err)
		}
		stats[decision] = count
	}

	return stats, nil
}
