package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"leadflow/internal/app/dsn"
)

// DefaultAdminSecret — секрет по умолчанию; в production выводится предупреждение
const DefaultAdminSecret = "admin-secret-key"

type Config struct {
	ServiceHost string   `mapstructure:"service_host"`
	ServicePort int      `mapstructure:"service_port"`
	Env         string   `mapstructure:"env"`
	LogLevel    string   `mapstructure:"log_level"`
	CORSOrigins []string `mapstructure:"cors_origins"`
	AdminSecret string   `mapstructure:"admin_secret"`

	DB        dsn.Params      `mapstructure:"db"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Redis     RedisConfig     `mapstructure:"redis"`
	MinIO     MinIOConfig     `mapstructure:"minio"`
	Gemini    GeminiConfig    `mapstructure:"gemini"`
	Recommend RecommendConfig `mapstructure:"recommend"`
}

type JWTConfig struct {
	ExpiresIn     time.Duration     `mapstructure:"expires_in"`
	SigningMethod jwt.SigningMethod `mapstructure:"-"`
}

type RedisConfig struct {
	Host        string        `mapstructure:"host"`
	Password    string        `mapstructure:"password"`
	Port        int           `mapstructure:"port"`
	User        string        `mapstructure:"user"`
	DialTimeout time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout time.Duration `mapstructure:"read_timeout"`
}

// Enabled — Redis используется только если задан хост
func (r RedisConfig) Enabled() bool { return r.Host != "" }

type MinIOConfig struct {
	Endpoint      string        `mapstructure:"endpoint"`
	AccessKey     string        `mapstructure:"access_key"`
	SecretKey     string        `mapstructure:"secret_key"`
	Bucket        string        `mapstructure:"bucket"`
	UseSSL        bool          `mapstructure:"use_ssl"`
	UploadTimeout time.Duration `mapstructure:"upload_timeout"`
}

func (m MinIOConfig) Enabled() bool { return m.Endpoint != "" && m.Bucket != "" }

type GeminiConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
	// запросов к модели в минуту
	RatePerMinute int `mapstructure:"rate_per_minute"`
}

type RecommendConfig struct {
	CacheTTL  time.Duration `mapstructure:"cache_ttl"`
	CacheSize int           `mapstructure:"cache_size"`
	DraftTTL  time.Duration `mapstructure:"draft_ttl"`
}

// переменные окружения, перекрывающие значения из TOML
var envBindings = map[string]string{
	"service_host":           "SERVICE_HOST",
	"service_port":           "SERVICE_PORT",
	"env":                    "NODE_ENV",
	"log_level":              "LOG_LEVEL",
	"cors_origins":           "CORS_ORIGINS",
	"admin_secret":           "ADMIN_SECRET",
	"db.driver":              "DB_DRIVER",
	"db.host":                "DB_HOST",
	"db.port":                "DB_PORT",
	"db.user":                "DB_USER",
	"db.password":            "DB_PASSWORD",
	"db.name":                "DB_NAME",
	"redis.host":             "REDIS_HOST",
	"redis.port":             "REDIS_PORT",
	"redis.user":             "REDIS_USER",
	"redis.password":         "REDIS_PASSWORD",
	"minio.endpoint":         "MINIO_ENDPOINT",
	"minio.access_key":       "MINIO_ACCESS_KEY",
	"minio.secret_key":       "MINIO_SECRET_KEY",
	"minio.bucket":           "MINIO_BUCKET",
	"minio.use_ssl":          "MINIO_USE_SSL",
	"gemini.api_key":         "GOOGLE_GEMINI_API_KEY",
	"gemini.model":           "GEMINI_MODEL",
	"gemini.rate_per_minute": "GEMINI_RATE_PER_MINUTE",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("service_host", "0.0.0.0")
	v.SetDefault("service_port", 8080)
	v.SetDefault("env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("cors_origins", []string{"*"})
	v.SetDefault("admin_secret", DefaultAdminSecret)

	v.SetDefault("db.driver", dsn.DriverMySQL)
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.user", "root")
	v.SetDefault("db.name", "leadflow")

	v.SetDefault("jwt.expires_in", time.Hour)

	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.dial_timeout", 10*time.Second)
	v.SetDefault("redis.read_timeout", 10*time.Second)

	v.SetDefault("minio.upload_timeout", 10*time.Second)

	v.SetDefault("gemini.model", "gemini-2.0-flash")
	v.SetDefault("gemini.timeout", 15*time.Second)
	v.SetDefault("gemini.rate_per_minute", 30)

	v.SetDefault("recommend.cache_ttl", time.Hour)
	v.SetDefault("recommend.cache_size", 512)
	v.SetDefault("recommend.draft_ttl", 24*time.Hour)
}

func NewConfig() (*Config, error) {
	configName := "config"
	_ = godotenv.Load()
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("toml")
	v.AddConfigPath("config")
	v.AddConfigPath(".")

	setDefaults(v)
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	// файл конфигурации необязателен: в контейнере все приходит из окружения
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		log.Debug("config file not found, using env and defaults")
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.JWT.SigningMethod = jwt.SigningMethodHS256
	cfg.CORSOrigins = splitOrigins(cfg.CORSOrigins)

	if cfg.IsProduction() && cfg.AdminSecret == DefaultAdminSecret {
		log.Warn("ADMIN_SECRET is not set, the default admin secret is in use")
	}

	log.Info("config parsed")

	return cfg, nil
}

func (c *Config) IsProduction() bool { return c.Env == "production" }

// ConfigureLogger выставляет уровень и формат logrus
func (c *Config) ConfigureLogger() {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		log.Warnf("unknown log level %q, using info", c.LogLevel)
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if c.IsProduction() {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}

// splitOrigins нормализует список: "a, b" из TOML и "a,b" из окружения
func splitOrigins(in []string) []string {
	out := []string{}
	for _, item := range in {
		for _, o := range strings.Split(item, ",") {
			if o = strings.TrimSpace(o); o != "" {
				out = append(out, o)
			}
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
