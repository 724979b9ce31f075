package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/n-smith-public/cs4241e25-final-project/internal/core/ports"
)

// RateLimiter counts hits per key in a fixed window. A limit of 0 disables it.
type RateLimiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
}

var _ ports.RateLimiter = (*RateLimiter)(nil)

func NewRateLimiter(rdb *redis.Client, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{rdb: rdb, limit: limit, window: window}
}

func (l *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if l.limit <= 0 {
		return true, nil
	}

	redisKey := rateKeyPrefix + key
	count, err := l.rdb.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("incr rate counter: %w", err)
	}
	if count == 1 {
		if err := l.rdb.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return false, fmt.Errorf("expire rate counter: %w", err)
		}
	}
	return count <= int64(l.limit), nil
}
