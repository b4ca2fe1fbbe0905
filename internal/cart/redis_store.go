package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	pkgredis "github.com/fooddelivery-demo/storefront/pkg/redis"
)

type cartKV interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	CartKey(sessionID string) string
}

// RedisStore persists each session's cart as one JSON value, the server-side
// stand-in for the localStorage key the cart used to live in.
type RedisStore struct {
	kv  cartKV
	ttl time.Duration
}

// NewRedisStore builds a redis-backed cart store. A zero TTL keeps carts
// until explicitly cleared.
func NewRedisStore(client *pkgredis.Client, ttl time.Duration) (*RedisStore, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client required")
	}
	return &RedisStore{kv: client, ttl: ttl}, nil
}

func (s *RedisStore) Load(ctx context.Context, sessionID string) (Cart, error) {
	raw, err := s.kv.Get(ctx, s.kv.CartKey(sessionID))
	if err != nil {
		if errors.Is(err, pkgredis.Nil) {
			return Cart{}, nil
		}
		return nil, fmt.Errorf("loading cart: %w", err)
	}

	var cart Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		// Corrupt persisted data is treated as an empty cart, not an error.
		return Cart{}, nil
	}
	return cart, nil
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, cart Cart) error {
	encoded, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encoding cart: %w", err)
	}
	if err := s.kv.Set(ctx, s.kv.CartKey(sessionID), string(encoded), s.ttl); err != nil {
		return fmt.Errorf("saving cart: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.kv.Del(ctx, s.kv.CartKey(sessionID)); err != nil {
		return fmt.Errorf("deleting cart: %w", err)
	}
	return nil
}
