package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const configKeyPrefix = "chest:config:"

// ConfigCache is the distributed tier of the config resolver, backed by
// Redis under a namespaced key prefix.
type ConfigCache struct {
	client *redis.Client
}

func NewConfigCache(client *redis.Client) *ConfigCache {
	return &ConfigCache{client: client}
}

func (r *ConfigCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := r.client.Get(ctx, configKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get config from Redis: %w", err)
	}
	return val, true, nil
}

func (r *ConfigCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, configKeyPrefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store config in Redis: %w", err)
	}
	return nil
}

func (r *ConfigCache) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, configKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to delete config from Redis: %w", err)
	}
	return nil
}

// Clear drops every namespaced config entry.
func (r *ConfigCache) Clear(ctx context.Context) error {
	return deleteByPattern(ctx, r.client, configKeyPrefix+"*")
}

// Ping reports whether the Redis backend is reachable.
func (r *ConfigCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func deleteByPattern(ctx context.Context, client *redis.Client, pattern string) error {
	iter := client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete key %s: %w", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan keys: %w", err)
	}
	return nil
}
