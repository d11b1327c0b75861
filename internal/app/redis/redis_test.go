package redis

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadflow/internal/app/config"
)

func unreachable() config.RedisConfig {
	return config.RedisConfig{
		Host:        "127.0.0.1",
		Port:        1,
		DialTimeout: 200 * time.Millisecond,
		ReadTimeout: 200 * time.Millisecond,
	}
}

func TestNew_UnreachableServer(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := New(ctx, unreachable())
	assert.Error(t, err)
}

func TestConnect_ClosesPoolOnPingFailure(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	cfg := unreachable()
	rc := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: cfg.DialTimeout,
		ReadTimeout: cfg.ReadTimeout,
	})

	c, err := connect(ctx, cfg, rc)
	require.Error(t, err)
	assert.Nil(t, c)

	err = rc.Ping(ctx).Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "client is closed")
}
