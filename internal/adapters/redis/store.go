package redisad

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"japan_hotel_booking/internal/adapters/observability"
)

const storePrefix = "kv:"

// Store keeps storefront state as non-expiring JSON strings, namespaced
// away from cache keys.
type Store struct{ c *redis.Client }

func NewStore(c *redis.Client) *Store { return &Store{c: c} }

func (s *Store) Get(ctx context.Context, key string, dst any) (bool, error) {
	b, err := s.c.Get(ctx, storePrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		observability.ObserveStore("redis", "get", nil, false)
		return false, nil
	}
	observability.ObserveStore("redis", "get", err, true)
	if err != nil {
		return false, fmt.Errorf("redis get %s: %w", key, err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (s *Store) Set(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	err = s.c.Set(ctx, storePrefix+key, b, 0).Err()
	observability.ObserveStore("redis", "set", err, true)
	if err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}
