package redis

import (
	"context"
	"fmt"
)

// ClearScoringData очищает все данные скоринга из Redis
func (c *Client) ClearScoringData() error {
	ctx := context.Background()

	// Удаляем все ключи, связанные со скорингом
	patterns := []string{
		"score:*",
		"decision_stats:*",
		"velocity:*",
	}

	for _, pattern := range patterns {
		iter := c.rdb.Scan(ctx, 0, pattern, 0).Iterator()
		for iter.Next(ctx) {
			c.rdb.Del(ctx, iter.Val())
		}
		if err := iter.Err(); err != nil {
			return fmt.Errorf("failed to clear pattern %s: %w", pattern, err)
		}
	}

	return nil
}
