package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Evaluation results stay valid as long as the catalog does, but the catalog
// can change across deploys, so cached entries expire.
const resultCacheTTL = 15 * time.Minute

// RedisCache is the production CacheRepository backed by redis.
type RedisCache struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisCache(addr string) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{
		client: rdb,
		ctx:    context.Background(),
	}
}

func (r *RedisCache) Get(key string) (string, bool) {
	val, err := r.client.Get(r.ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (r *RedisCache) Set(key string, value string) error {
	return r.client.Set(r.ctx, key, value, resultCacheTTL).Err()
}
