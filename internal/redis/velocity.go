package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"payguard-risk-system/internal/velocity"

	redisv9 "github.com/redis/go-redis/v9"
)

// Client реализует velocity.Store поверх сортированных множеств Redis:
// score элемента равен метке времени события в наносекундах
var _ velocity.Store = (*Client)(nil)

func velocityKey(signal velocity.Signal, value string) string {
	return fmt.Sprintf("velocity:%s:%s", signal, value)
}

// Record добавляет событие для пары (сигнал, значение).
// TTL ключа обновляется до горизонта хранения на каждой записи
func (c *Client) Record(signal velocity.Signal, value string, at time.Time, member string) error {
	ctx := context.Background()
	key := velocityKey(signal, value)

	pipe := c.rdb.Pipeline()
	pipe.ZAdd(ctx, key, redisv9.Z{
		Score:  float64(at.UnixNano()),
		Member: member,
	})
	pipe.Expire(ctx, key, velocity.RetentionWindow)
	_, err := pipe.Exec(ctx)
	return err
}

// Count возвращает число событий с меткой времени >= since
func (c *Client) Count(signal velocity.Signal, value string, since time.Time) (int64, error) {
	ctx := context.Background()
	key := velocityKey(signal, value)
	min := strconv.FormatInt(since.UnixNano(), 10)
	return c.rdb.ZCount(ctx, key, min, "+inf").Result()
}

// Evict удаляет события старше olderThan по всем velocity-ключам,
// опустевшие ключи удаляются целиком
func (c *Client) Evict(olderThan time.Time) error {
	ctx := context.Background()
	max := strconv.FormatInt(olderThan.UnixNano(), 10)

	iter := c.rdb.Scan(ctx, 0, "velocity:*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		if err := c.rdb.ZRemRangeByScore(ctx, key, "-inf", max).Err(); err != nil {
			return fmt.Errorf("failed to evict %s: %w", key, err)
		}
		if n, err := c.rdb.ZCard(ctx, key).Result(); err == nil && n == 0 {
			c.rdb.Del(ctx, key)
		}
	}
	return iter.Err()
}
