package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"leadflow/internal/app/config"
)

const servicePrefix = "leadflow." // префикс всех ключей сервиса

type Client struct {
	cfg    config.RedisConfig
	client *redis.Client
}

func New(ctx context.Context, cfg config.RedisConfig) (*Client, error) {
	return connect(ctx, cfg, redis.NewClient(&redis.Options{
		Password:    cfg.Password,
		Username:    cfg.User,
		Addr:        cfg.Host + ":" + strconv.Itoa(cfg.Port),
		DB:          0,
		DialTimeout: cfg.DialTimeout,
		ReadTimeout: cfg.ReadTimeout,
	}))
}

// connect проверяет соединение; при ошибке пул клиента закрывается
func connect(ctx context.Context, cfg config.RedisConfig, rc *redis.Client) (*Client, error) {
	if _, err := rc.Ping(ctx).Result(); err != nil {
		_ = rc.Close()
		return nil, fmt.Errorf("cant ping redis: %w", err)
	}

	return &Client{cfg: cfg, client: rc}, nil
}

// NewFromClient оборачивает готовый клиент (тесты, общий пул)
func NewFromClient(c *redis.Client) *Client {
	return &Client{client: c}
}

func (c *Client) Close() error {
	return c.client.Close()
}

// SetJSON сериализует значение и сохраняет его с TTL
func (c *Client) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return c.client.Set(ctx, servicePrefix+key, data, ttl).Err()
}

// GetJSON читает значение; ok=false если ключа нет или он истек
func (c *Client) GetJSON(ctx context.Context, key string, dst any) (bool, error) {
	data, err := c.client.Get(ctx, servicePrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return true, nil
}

func (c *Client) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, servicePrefix+key).Err()
}
