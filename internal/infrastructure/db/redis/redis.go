package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// pingTimeout bounds the startup connectivity check and the client's own
// dial/read deadlines. Redis only backs the rate limiter and the readiness
// probe here, so slow answers are worth failing fast on.
const pingTimeout = 5 * time.Second

// Config carries the Redis connection settings from the environment.
type Config struct {
	Addr string
	DB   int
}

// Connect builds a Redis client and verifies the server is reachable, so a
// bad REDIS_ADDR surfaces at startup rather than on the first rate-limit
// check. The caller owns the returned client and must Close it on shutdown.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		DB:          cfg.DB,
		DialTimeout: pingTimeout,
		ReadTimeout: pingTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
