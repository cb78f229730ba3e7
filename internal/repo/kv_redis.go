package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/pkordes/promptlib/backend/internal/domain"
)

// redisKV is the Redis implementation of KVStore. Every key is stored as a
// plain string value under prefix+key with no expiry.
type redisKV struct {
	client redis.Cmdable
	prefix string
}

// NewRedisKV constructs a KVStore on top of any redis client
// (*redis.Client, *redis.ClusterClient, a pipeline in tests).
// prefix namespaces the keys so several deployments can share one server.
func NewRedisKV(client redis.Cmdable, prefix string) KVStore {
	return &redisKV{client: client, prefix: prefix}
}

func (r *redisKV) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("repo.redisKV.Get: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("repo.redisKV.Get: %w", err)
	}
	return b, nil
}

func (r *redisKV) Put(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("repo.redisKV.Put: %w", err)
	}
	return nil
}

func (r *redisKV) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		return fmt.Errorf("repo.redisKV.Delete: %w", err)
	}
	return nil
}
