package recommend

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/sirupsen/logrus"

	"leadflow/internal/app/redis"
)

// Cache хранит ID тем, выбранных моделью, по ключу Selection.CacheKey
type Cache interface {
	Get(ctx context.Context, key string) ([]string, bool)
	Set(ctx context.Context, key string, ids []string)
}

// MemoryCache — ограниченный LRU с TTL в памяти процесса
type MemoryCache struct {
	lru *expirable.LRU[string, []string]
}

func NewMemoryCache(size int, ttl time.Duration) *MemoryCache {
	return &MemoryCache{lru: expirable.NewLRU[string, []string](size, nil, ttl)}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]string, bool) {
	ids, ok := c.lru.Get(key)
	if !ok {
		return nil, false
	}
	return append([]string(nil), ids...), true
}

func (c *MemoryCache) Set(_ context.Context, key string, ids []string) {
	c.lru.Add(key, append([]string(nil), ids...))
}

func (c *MemoryCache) Len() int { return c.lru.Len() }

// RedisCache — общий кэш для нескольких инстансов; срок жизни задает EXPIRE
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

const cachePrefix = "recommend:"

// ошибки Redis не мешают ответу: промах кэша ведет к обычному вызову модели
func (c *RedisCache) Get(ctx context.Context, key string) ([]string, bool) {
	var ids []string
	ok, err := c.client.GetJSON(ctx, cachePrefix+key, &ids)
	if err != nil {
		logrus.Warn("recommendation cache read failed: ", err)
		return nil, false
	}
	return ids, ok
}

func (c *RedisCache) Set(ctx context.Context, key string, ids []string) {
	if err := c.client.SetJSON(ctx, cachePrefix+key, ids, c.ttl); err != nil {
		logrus.Warn("recommendation cache write failed: ", err)
	}
}
