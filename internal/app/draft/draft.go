package draft

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"leadflow/internal/app/redis"
)

// Store хранит незаконченную форму мастера по ключу "<сессия>:<тип мастера>"
type Store interface {
	Get(ctx context.Context, key string) (json.RawMessage, bool, error)
	Put(ctx context.Context, key string, draft json.RawMessage) error
	Delete(ctx context.Context, key string) error
}

func Key(session, kind string) string { return session + ":" + kind }

type MemoryStore struct {
	lru *expirable.LRU[string, json.RawMessage]
}

func NewMemoryStore(size int, ttl time.Duration) *MemoryStore {
	return &MemoryStore{lru: expirable.NewLRU[string, json.RawMessage](size, nil, ttl)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (json.RawMessage, bool, error) {
	d, ok := s.lru.Get(key)
	return d, ok, nil
}

func (s *MemoryStore) Put(_ context.Context, key string, draft json.RawMessage) error {
	s.lru.Add(key, append(json.RawMessage(nil), draft...))
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.lru.Remove(key)
	return nil
}

const redisPrefix = "draft:"

// RedisStore — черновики переживают рестарт и видны всем инстансам
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, key string) (json.RawMessage, bool, error) {
	var d json.RawMessage
	ok, err := s.client.GetJSON(ctx, redisPrefix+key, &d)
	return d, ok, err
}

func (s *RedisStore) Put(ctx context.Context, key string, draft json.RawMessage) error {
	return s.client.SetJSON(ctx, redisPrefix+key, draft, s.ttl)
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.client.Delete(ctx, redisPrefix+key)
}
