// file: repositories/cache_repository.go
package repositories

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache 排行榜缓存，读写失败直接当作未命中，不影响主流程
type RedisCache struct {
	rdb *redis.Client
}

func NewRedisCache(rdb *redis.Client) *RedisCache {
	return &RedisCache{rdb: rdb}
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (c *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) {
	c.rdb.Set(ctx, key, value, ttl)
}

func (c *RedisCache) Delete(ctx context.Context, key string) {
	c.rdb.Del(ctx, key)
}
