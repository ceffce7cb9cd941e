package session

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
)

const redisKeyPrefix = "gymdash-session||"

// RedisStore keeps the token in redis, so several machines can share one login.
type RedisStore struct {
	redisClient *redis.Client
	key         string
}

// NewRedisStore namespaces the token key by profile (usually the OS user name).
func NewRedisStore(redisClient *redis.Client, profile string) *RedisStore {
	return &RedisStore{
		redisClient: redisClient,
		key:         redisKeyPrefix + profile + "||" + TokenKey,
	}
}

func (s *RedisStore) Get(ctx context.Context) (string, error) {
	cmd := s.redisClient.Get(ctx, s.key)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNoToken
		}
		return "", err
	}

	token := cmd.Val()
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

func (s *RedisStore) Set(ctx context.Context, token string) error {
	// no expiry: the token lives until logout, the backend decides when it is stale
	return s.redisClient.Set(ctx, s.key, token, 0).Err()
}

func (s *RedisStore) Clear(ctx context.Context) error {
	return s.redisClient.Del(ctx, s.key).Err()
}
