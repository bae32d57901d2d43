// Package redis provides a ports.KVStore on Redis so several server replicas
// can serve the same browser session. Keys expire after a sliding TTL that is
// refreshed on every write.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/domain-storefront/internal/ports"
)

// Compile-time check that Store implements ports.KVStore.
var _ ports.KVStore = (*Store)(nil)

// Store is a Redis-backed key-value store.
type Store struct {
	client redis.Cmdable
	ttl    time.Duration
}

// New returns a Store over client. A zero ttl keeps keys forever.
func New(client redis.Cmdable, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Get implements ports.KVStore.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, true, nil
}

// Set implements ports.KVStore.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}
