package out

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	scoreout "wirematch/internal/modules/score/port/out"
)

// keyPrefix namespaces keys so the score can share a database.
const keyPrefix = "wirematch:"

type RedisKVStore struct {
	client *redis.Client
}

func NewRedisKVStore(client *redis.Client) *RedisKVStore {
	return &RedisKVStore{client: client}
}

var _ scoreout.KVStore = (*RedisKVStore)(nil)

func (s *RedisKVStore) makeKey(key string) string {
	return keyPrefix + key
}

func (s *RedisKVStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, s.makeKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return value, true, nil
}

func (s *RedisKVStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.makeKey(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *RedisKVStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.makeKey(key)).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

func (s *RedisKVStore) Close() error {
	return s.client.Close()
}
