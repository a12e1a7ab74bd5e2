package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sangkips/temple-billing/internal/config"
	"github.com/sangkips/temple-billing/internal/domain/entity"
	domainRepo "github.com/sangkips/temple-billing/internal/domain/repository"
)

const defaultKeyPrefix = "idempotency:"

// RedisIdempotencyRepository keeps replayable responses in redis. Entries
// expire through the key TTL, so several API instances can share them.
type RedisIdempotencyRepository struct {
	client    *redis.Client
	keyPrefix string
	now       func() time.Time
}

// NewRedisClient connects to redis and verifies the connection
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// NewRedisIdempotencyRepository creates the repository on an existing client
func NewRedisIdempotencyRepository(client *redis.Client, keyPrefix string) *RedisIdempotencyRepository {
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}
	return &RedisIdempotencyRepository{
		client:    client,
		keyPrefix: keyPrefix,
		now:       time.Now,
	}
}

func (r *RedisIdempotencyRepository) redisKey(key, username string) string {
	return r.keyPrefix + username + ":" + key
}

func (r *RedisIdempotencyRepository) GetByKey(ctx context.Context, key, username string) (*entity.IdempotencyKey, error) {
	raw, err := r.client.Get(ctx, r.redisKey(key, username)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read idempotency key: %w", err)
	}

	var ikey entity.IdempotencyKey
	if err := json.Unmarshal(raw, &ikey); err != nil {
		return nil, fmt.Errorf("failed to decode idempotency key: %w", err)
	}
	return &ikey, nil
}

// Create stores ikey unless the key was already taken (SETNX).
func (r *RedisIdempotencyRepository) Create(ctx context.Context, ikey *entity.IdempotencyKey) error {
	ttl := ikey.ExpiresAt.Sub(r.now())
	if ttl <= 0 {
		return nil
	}
	if ikey.CreatedAt.IsZero() {
		ikey.CreatedAt = r.now()
	}

	raw, err := json.Marshal(ikey)
	if err != nil {
		return fmt.Errorf("failed to encode idempotency key: %w", err)
	}

	if err := r.client.SetNX(ctx, r.redisKey(ikey.Key, ikey.Username), raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store idempotency key: %w", err)
	}
	return nil
}

func (r *RedisIdempotencyRepository) Delete(ctx context.Context, key, username string) error {
	if err := r.client.Del(ctx, r.redisKey(key, username)).Err(); err != nil {
		return fmt.Errorf("failed to delete idempotency key: %w", err)
	}
	return nil
}

// DeleteExpired is a no-op; redis expires keys itself.
func (r *RedisIdempotencyRepository) DeleteExpired(context.Context) error {
	return nil
}

// Close closes the redis client
func (r *RedisIdempotencyRepository) Close() error {
	return r.client.Close()
}

var _ domainRepo.IdempotencyRepository = (*RedisIdempotencyRepository)(nil)
