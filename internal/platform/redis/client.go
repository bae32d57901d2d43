// Package redis builds the shared go-redis client from configuration and
// exposes it as a health-checked dependency.
package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/domain-storefront/internal/platform/config"
	"github.com/jsamuelsen11/domain-storefront/internal/ports"
)

// Compile-time check that Client implements ports.HealthChecker.
var _ ports.HealthChecker = (*Client)(nil)

// Client wraps the go-redis client with health checking.
type Client struct {
	*redis.Client
}

// New creates a Redis client from cfg and verifies it with a PING.
func New(ctx context.Context, cfg *config.RedisConfig) (*Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns
	opts.DialTimeout = cfg.DialTimeout
	opts.ReadTimeout = cfg.ReadTimeout
	opts.WriteTimeout = cfg.WriteTimeout

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Client{Client: client}, nil
}

// Name implements ports.HealthChecker.
func (c *Client) Name() string {
	return "redis"
}

// HealthCheck implements ports.HealthChecker.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.Ping(ctx).Err()
}
