// Package cache keeps short-lived auth state (challenges, sessions, rate counters) in Redis.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/n-smith-public/cs4241e25-final-project/internal/config"
)

const (
	challengeKeyPrefix = "otp:"
	sessionKeyPrefix   = "session:"
	rateKeyPrefix      = "ratelimit:"

	// challengeGrace keeps an expired challenge around long enough to report it as expired.
	challengeGrace = time.Minute
)

func ConnectRedis(ctx context.Context, conf *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     conf.RedisAddr,
		Password: conf.RedisPassword,
		DB:       conf.RedisDB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}

func ttlUntil(expiresAt, now time.Time) time.Duration {
	ttl := expiresAt.Sub(now)
	if ttl < time.Second {
		return time.Second
	}
	return ttl
}
