package repository

import (
	"context"
	"encoding/json"

	"laborlink/internal/infrastructure/cache"
)

// Snapshotter is the key-value backing store that the in-memory
// repositories mirror their collections into.
type Snapshotter interface {
	Load(ctx context.Context, key string, out any) (bool, error)
	Save(ctx context.Context, key string, v any) error
}

// RedisSnapshotter keeps snapshots in redis without expiry.
type RedisSnapshotter struct {
	redis  *cache.Redis
	prefix string
}

func NewRedisSnapshotter(r *cache.Redis, prefix string) *RedisSnapshotter {
	if prefix == "" {
		prefix = "laborlink:store:"
	}
	return &RedisSnapshotter{redis: r, prefix: prefix}
}

func (s *RedisSnapshotter) Load(ctx context.Context, key string, out any) (bool, error) {
	return s.redis.GetJSON(ctx, s.prefix+key, out)
}

func (s *RedisSnapshotter) Save(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.redis.SetBytes(ctx, s.prefix+key, b, 0)
}

type noopSnapshotter struct{}

func (noopSnapshotter) Load(context.Context, string, any) (bool, error) { return false, nil }
func (noopSnapshotter) Save(context.Context, string, any) error         { return nil }
