package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/weiawesome/wes-social/internal/domain"
)

// RedisConfig holds the connection settings for the account cache.
type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type RedisAccountCache struct {
	client *redis.Client
	prefix string
}

func NewRedisAccountCache(cfg RedisConfig, prefix string) (*RedisAccountCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return NewRedisAccountCacheWithClient(client, prefix), nil
}

// NewRedisAccountCacheWithClient wraps an existing client.
func NewRedisAccountCacheWithClient(client *redis.Client, prefix string) *RedisAccountCache {
	return &RedisAccountCache{
		client: client,
		prefix: prefix,
	}
}

func (c *RedisAccountCache) key(accountID string) string {
	return fmt.Sprintf("%s:id:%s", c.prefix, accountID)
}

func (c *RedisAccountCache) Get(ctx context.Context, accountID string) (*domain.AccountResponse, error) {
	data, err := c.client.Get(ctx, c.key(accountID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	var result domain.AccountResponse
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cache data: %w", err)
	}

	return &result, nil
}

func (c *RedisAccountCache) Set(ctx context.Context, account *domain.AccountResponse, ttl time.Duration) error {
	data, err := json.Marshal(account)
	if err != nil {
		return fmt.Errorf("failed to marshal cache data: %w", err)
	}

	if err := c.client.Set(ctx, c.key(account.ID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set in redis: %w", err)
	}

	return nil
}

func (c *RedisAccountCache) Delete(ctx context.Context, accountIDs ...string) error {
	if len(accountIDs) == 0 {
		return nil
	}

	keys := make([]string, 0, len(accountIDs))
	for _, id := range accountIDs {
		keys = append(keys, c.key(id))
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete from redis: %w", err)
	}

	return nil
}

func (c *RedisAccountCache) Close() error {
	return c.client.Close()
}

var _ AccountCache = (*RedisAccountCache)(nil)
