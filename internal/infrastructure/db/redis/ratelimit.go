package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter provides fixed-window request counting backed by Redis.
// Key format: ratelimit:<scope>:<key>
type RateLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewRateLimiter creates a RateLimiter allowing limit requests per window.
func NewRateLimiter(client *redis.Client, limit int, window time.Duration) *RateLimiter {
	if window <= 0 {
		window = time.Minute
	}
	return &RateLimiter{client: client, limit: limit, window: window}
}

// Allow increments the counter for key and reports whether the request fits
// within the window's budget. A non-positive limit disables limiting.
func (l *RateLimiter) Allow(ctx context.Context, scope, key string) (bool, error) {
	if l.limit <= 0 {
		return true, nil
	}

	redisKey := fmt.Sprintf("ratelimit:%s:%s", scope, key)
	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("ratelimit incr: %w", err)
	}
	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return false, fmt.Errorf("ratelimit expire: %w", err)
		}
	}
	return count <= int64(l.limit), nil
}
