package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"storefront-service/internal/core/domain"
	"storefront-service/internal/core/port"

	"github.com/redis/go-redis/v9"
)

const (
	cartKeyPrefix = "storefront:cart:"
	prefKeyPrefix = "storefront:pref:"

	// Carts expire after a week of inactivity; preferences never do.
	cartTTL = 7 * 24 * time.Hour
)

// NewRedisClient connects and pings, failing fast on a bad address.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis: ping %s: %w", addr, err)
	}
	return client, nil
}

// RedisCartStore keeps carts as JSON documents so a storefront restart
// (or several replicas) can share visitor carts.
type RedisCartStore struct {
	client *redis.Client
}

func NewRedisCartStore(client *redis.Client) *RedisCartStore {
	return &RedisCartStore{client: client}
}

func (s *RedisCartStore) Get(ctx context.Context, cartID string) (*domain.Cart, error) {
	raw, err := s.client.Get(ctx, cartKeyPrefix+cartID).Result()
	if errors.Is(err, redis.Nil) {
		return nil, port.ErrCartNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis cart store: get %s: %w", cartID, err)
	}

	var cart domain.Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		return nil, fmt.Errorf("redis cart store: decode %s: %w", cartID, err)
	}
	return &cart, nil
}

func (s *RedisCartStore) Save(ctx context.Context, cart *domain.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("redis cart store: encode %s: %w", cart.ID, err)
	}
	if err := s.client.Set(ctx, cartKeyPrefix+cart.ID, raw, cartTTL).Err(); err != nil {
		return fmt.Errorf("redis cart store: set %s: %w", cart.ID, err)
	}
	return nil
}

func (s *RedisCartStore) Delete(ctx context.Context, cartID string) error {
	if err := s.client.Del(ctx, cartKeyPrefix+cartID).Err(); err != nil {
		return fmt.Errorf("redis cart store: del %s: %w", cartID, err)
	}
	return nil
}

// RedisPreferenceStore persists visitor preferences (the UI language).
type RedisPreferenceStore struct {
	client *redis.Client
}

func NewRedisPreferenceStore(client *redis.Client) *RedisPreferenceStore {
	return &RedisPreferenceStore{client: client}
}

func (s *RedisPreferenceStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, prefKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", port.ErrPreferenceNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis preference store: get %s: %w", key, err)
	}
	return value, nil
}

func (s *RedisPreferenceStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, prefKeyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis preference store: set %s: %w", key, err)
	}
	return nil
}
