package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps session tokens in Redis so multiple gateway instances
// share one session space.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// NewRedisStore creates a Redis-backed session store and verifies the
// connection.
func NewRedisStore(cfg RedisConfig) (*RedisStore, error) {
	if cfg.Prefix == "" {
		cfg.Prefix = "marketlens"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisStore{client: client, prefix: cfg.Prefix}, nil
}

func (rs *RedisStore) Put(ctx context.Context, id, token string, ttl time.Duration) error {
	return rs.client.Set(ctx, rs.key(id), token, ttl).Err()
}

func (rs *RedisStore) Token(ctx context.Context, id string) (string, error) {
	tok, err := rs.client.Get(ctx, rs.key(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", err
	}
	return tok, nil
}

func (rs *RedisStore) Evict(ctx context.Context, id string) error {
	return rs.client.Unlink(ctx, rs.key(id)).Err()
}

func (rs *RedisStore) Close() error {
	return rs.client.Close()
}

func (rs *RedisStore) key(id string) string {
	return rs.prefix + ":session:" + id
}
