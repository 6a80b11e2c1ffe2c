package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tipbot/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// ConfigCache implements ports.ConfigCache using Redis.
type ConfigCache struct {
	client *goredis.Client
	key    string
}

// NewConfigCache creates a new Redis-backed operational config cache.
func NewConfigCache(client *goredis.Client) *ConfigCache {
	return &ConfigCache{
		client: client,
		key:    "botconfig",
	}
}

// Get retrieves the cached config snapshot.
// Returns nil, nil if the key does not exist.
func (c *ConfigCache) Get(ctx context.Context) (*domain.BotConfig, error) {
	val, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis config get: %w", err)
	}

	cfg := &domain.BotConfig{}
	if err := json.Unmarshal(val, cfg); err != nil {
		return nil, fmt.Errorf("redis config decode: %w", err)
	}
	return cfg, nil
}

// Set stores a config snapshot with TTL.
func (c *ConfigCache) Set(ctx context.Context, cfg *domain.BotConfig, ttl time.Duration) error {
	val, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("redis config encode: %w", err)
	}
	if err := c.client.Set(ctx, c.key, val, ttl).Err(); err != nil {
		return fmt.Errorf("redis config set: %w", err)
	}
	return nil
}
