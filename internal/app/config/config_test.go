package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv("CONFIG_NAME", "missing-config-file")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.ServicePort)
	assert.Equal(t, DefaultAdminSecret, cfg.AdminSecret)
	assert.Equal(t, "mysql", cfg.DB.Driver)
	assert.Equal(t, time.Hour, cfg.Recommend.CacheTTL)
	assert.Equal(t, 15*time.Second, cfg.Gemini.Timeout)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.MinIO.Enabled())
	assert.NotNil(t, cfg.JWT.SigningMethod)
}

func TestNewConfig_Env(t *testing.T) {
	t.Setenv("CONFIG_NAME", "missing-config-file")
	t.Setenv("SERVICE_PORT", "9090")
	t.Setenv("NODE_ENV", "production")
	t.Setenv("ADMIN_SECRET", "s3cret")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_PORT", "6432")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("MINIO_ENDPOINT", "minio:9000")
	t.Setenv("MINIO_BUCKET", "submissions")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("GOOGLE_GEMINI_API_KEY", "key")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.ServicePort)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "s3cret", cfg.AdminSecret)
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, 6432, cfg.DB.Port)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.True(t, cfg.MinIO.Enabled())
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, "key", cfg.Gemini.APIKey)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}
