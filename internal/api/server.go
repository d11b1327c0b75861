package api

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/time/rate"

	_ "leadflow/docs"
	"leadflow/internal/app/config"
	"leadflow/internal/app/draft"
	"leadflow/internal/app/handler"
	"leadflow/internal/app/middleware"
	"leadflow/internal/app/recommend"
	"leadflow/internal/app/redis"
	"leadflow/internal/app/repository"
	"leadflow/internal/app/storage"
	"leadflow/internal/pkg"
)

// StartServer собирает зависимости и обслуживает запросы до отмены ctx
func StartServer(ctx context.Context, cfg *config.Config) error {
	logrus.Info("Starting server")

	repo, err := repository.Open(cfg.DB)
	if err != nil {
		return err
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logrus.Warn("Error closing database: ", err)
		}
	}()

	var rdb *redis.Client
	if cfg.Redis.Enabled() {
		rdb, err = redis.New(ctx, cfg.Redis)
		if err != nil {
			// без Redis работают кэш и черновики в памяти
			logrus.Warn("redis is unavailable, using in-memory storage: ", err)
		} else {
			defer rdb.Close()
		}
	}

	h := handler.NewHandler(
		repo,
		newRecommender(ctx, cfg, rdb),
		newDraftStore(cfg, rdb),
		newArchive(ctx, cfg),
		middleware.NewAuthMiddleware(cfg),
		cfg,
	)

	app := pkg.NewApp(cfg, NewRouter(cfg), h)
	return app.RunApp(ctx)
}

// NewRouter создает gin с общими middleware: recovery, логирование, CORS, swagger
func NewRouter(cfg *config.Config) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(), cors.New(corsConfig(cfg.CORSOrigins)))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return r
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}

func newRecommender(ctx context.Context, cfg *config.Config, rdb *redis.Client) *recommend.Service {
	var cache recommend.Cache = recommend.NewMemoryCache(cfg.Recommend.CacheSize, cfg.Recommend.CacheTTL)
	if rdb != nil {
		cache = recommend.NewRedisCache(rdb, cfg.Recommend.CacheTTL)
	}

	var ai *recommend.AIRecommender
	if cfg.Gemini.APIKey != "" {
		gen, err := recommend.NewGeminiGenerator(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			logrus.Warn("gemini client is not available, using rule-based recommendations: ", err)
		} else {
			ai = recommend.NewAIRecommender(gen)
		}
	} else {
		logrus.Info("GOOGLE_GEMINI_API_KEY is not set, using rule-based recommendations")
	}

	opts := []recommend.Option{recommend.WithTimeout(cfg.Gemini.Timeout)}
	if n := cfg.Gemini.RatePerMinute; n > 0 {
		opts = append(opts, recommend.WithRateLimit(rate.NewLimiter(rate.Every(time.Minute/time.Duration(n)), n)))
	}
	return recommend.NewService(ai, cache, opts...)
}

func newDraftStore(cfg *config.Config, rdb *redis.Client) draft.Store {
	if rdb != nil {
		return draft.NewRedisStore(rdb, cfg.Recommend.DraftTTL)
	}
	return draft.NewMemoryStore(cfg.Recommend.CacheSize, cfg.Recommend.DraftTTL)
}

// newArchive возвращает nil-интерфейс, если MinIO не настроен или недоступен
func newArchive(ctx context.Context, cfg *config.Config) handler.Archiver {
	if !cfg.MinIO.Enabled() {
		return nil
	}
	client, err := storage.NewMinIOClient(ctx, cfg.MinIO)
	if err != nil {
		logrus.Warn("minio is unavailable, submissions will not be archived: ", err)
		return nil
	}
	return client
}
