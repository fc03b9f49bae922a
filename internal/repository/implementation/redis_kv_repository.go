package implementation

import (
	"context"
	"errors"

	"ai-studio-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

type RedisKeyValueRepository struct {
	rdb *redis.Client
}

var _ contract.IKeyValueRepository = &RedisKeyValueRepository{}

func NewRedisKeyValueRepository(rdb *redis.Client) *RedisKeyValueRepository {
	return &RedisKeyValueRepository{rdb: rdb}
}

func (r *RedisKeyValueRepository) Read(ctx context.Context, key string) (string, bool, error) {
	value, err := r.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (r *RedisKeyValueRepository) Write(ctx context.Context, key string, value string) error {
	// No TTL: the studio state lives until the user clears it.
	return r.rdb.Set(ctx, key, value, 0).Err()
}
