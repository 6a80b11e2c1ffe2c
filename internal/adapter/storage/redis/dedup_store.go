package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// DedupStore implements ports.DeliveryDeduper using Redis SET NX.
type DedupStore struct {
	client *goredis.Client
	prefix string
}

// NewDedupStore creates a new Redis-backed delivery dedup store.
func NewDedupStore(client *goredis.Client) *DedupStore {
	return &DedupStore{
		client: client,
		prefix: "delivery:",
	}
}

// CheckAndSet atomically checks if a delivery id was seen, recording it
// if not. Returns true if the delivery is new.
func (s *DedupStore) CheckAndSet(ctx context.Context, deliveryID string, ttl time.Duration) (bool, error) {
	key := s.prefix + deliveryID
	result, err := s.client.SetArgs(ctx, key, 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if err == goredis.Nil {
			// Key already exists — delivery was already handled
			return false, nil
		}
		return false, fmt.Errorf("redis delivery check: %w", err)
	}
	return result == "OK", nil
}
