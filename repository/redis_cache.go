package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache is a CacheRepository backed by Redis. Keys are namespaced
// with prefix and expire after ttl (0 keeps them forever).
type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisCache(addr, prefix string, ttl time.Duration) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{
		client: rdb,
		prefix: prefix,
		ttl:    ttl,
	}
}

// Ping checks that the server is reachable.
func (r *RedisCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := r.client.Get(ctx, r.prefix+key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("Warning: redis get %s: %v", key, err)
		}
		return "", false
	}
	return val, true
}

func (r *RedisCache) Set(ctx context.Context, key string, value string) error {
	return r.client.Set(ctx, r.prefix+key, value, r.ttl).Err()
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}
