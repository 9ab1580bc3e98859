package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"plant-advisor/internal/infrastructure/config"
	"plant-advisor/internal/pkg/common"

	"github.com/go-redis/redis/v8"
)

// RedisStore is the Redis-backed response cache.
type RedisStore struct {
	client *redis.Client
	config config.CacheConfig
}

// NewRedisStore creates a Redis cache and verifies the connection.
func NewRedisStore(cfg config.CacheConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{
		client: client,
		config: cfg,
	}, nil
}

// Get returns the cached value for a prompt.
func (s *RedisStore) Get(ctx context.Context, prompt string) (string, error) {
	key := s.generateKey(prompt)

	data, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			common.LogCacheMiss("redis", key)
			return "", ErrCacheMiss
		}
		return "", fmt.Errorf("failed to get cache: %w", err)
	}

	common.LogCacheHit("redis", key)
	return data, nil
}

// Set stores a value under the prompt key with the configured TTL.
func (s *RedisStore) Set(ctx context.Context, prompt, value string) error {
	key := s.generateKey(prompt)

	if err := s.client.Set(ctx, key, value, s.config.TTL).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}
	return nil
}

func (s *RedisStore) generateKey(prompt string) string {
	hash := sha256.Sum256([]byte(prompt))
	return fmt.Sprintf("ai:response:%s", hex.EncodeToString(hash[:]))
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
