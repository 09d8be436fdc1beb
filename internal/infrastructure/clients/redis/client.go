package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/swiftmedhelp/backend/pkg/config"
)

// bootPingTimeout bounds the connectivity check at startup. The server
// falls back to in-memory handoff and review stores when Redis is down,
// so boot must not hang waiting on an unreachable instance.
const bootPingTimeout = 3 * time.Second

// Client wraps the Redis connection shared by the session handoff slot,
// the review log and the response cache.
type Client struct {
	client *redis.Client
}

// NewClient connects to Redis and verifies the connection before
// returning. An unreachable instance is reported as an error so the
// caller can fall back to the in-memory adapters.
func NewClient(cfg *config.RedisConfig) (*Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), bootPingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.RedisAddr(), err)
	}

	return &Client{client: client}, nil
}

// Client returns the underlying Redis client
func (c *Client) Client() *redis.Client {
	return c.client
}

// Close closes the Redis connection
func (c *Client) Close() error {
	return c.client.Close()
}

// Ping verifies the connection to Redis
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
