package recommend

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"leadflow/internal/app/catalog"
)

type Source string

const (
	SourceAI    Source = "ai"
	SourceRules Source = "rule-based"
)

var errRateLimited = errors.New("ai rate limit exceeded")

// Recommendation — ответ сервиса; Source показывает, какой путь его дал
type Recommendation struct {
	Topics  []catalog.TrainingTopic `json:"recommendedTopics"`
	IDs     []string                `json:"recommendedIds"`
	Source  Source                  `json:"source"`
	Message string                  `json:"message"`
}

// Service сначала пробует модель (через кэш), а при любой ошибке молча
// переходит к подбору по тегам
type Service struct {
	ai      *AIRecommender
	rules   RuleRecommender
	cache   Cache
	limiter *rate.Limiter
	timeout time.Duration

	group singleflight.Group
}

type Option func(*Service)

// WithRateLimit ограничивает число обращений к модели
func WithRateLimit(l *rate.Limiter) Option {
	return func(s *Service) { s.limiter = l }
}

func WithTimeout(d time.Duration) Option {
	return func(s *Service) { s.timeout = d }
}

// NewService: ai может быть nil (ключ API не задан), тогда работают только правила
func NewService(ai *AIRecommender, cache Cache, opts ...Option) *Service {
	s := &Service{
		ai:      ai,
		cache:   cache,
		timeout: 15 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Recommend(ctx context.Context, sel Selection) Recommendation {
	key := sel.CacheKey()

	if s.cache != nil {
		if ids, ok := s.cache.Get(ctx, key); ok {
			logrus.Debug("recommendation cache hit")
			return build(ids, SourceAI)
		}
	}

	if s.ai != nil {
		ids, err := s.fromModel(ctx, key, sel)
		if err == nil {
			return build(ids, SourceAI)
		}
		logrus.Warn("AI recommendations unavailable, using rule-based fallback: ", err)
	}

	return build(s.rules.Recommend(sel), SourceRules)
}

// fromModel объединяет одновременные одинаковые запросы в один вызов модели
func (s *Service) fromModel(ctx context.Context, key string, sel Selection) ([]string, error) {
	if s.limiter != nil && !s.limiter.Allow() {
		return nil, errRateLimited
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		callCtx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		ids, err := s.ai.Recommend(callCtx, sel)
		if err != nil {
			return nil, err
		}
		if s.cache != nil {
			s.cache.Set(ctx, key, ids)
		}
		return ids, nil
	})
	if err != nil {
		return nil, err
	}
	return append([]string(nil), v.([]string)...), nil
}

func build(ids []string, source Source) Recommendation {
	topics := make([]catalog.TrainingTopic, 0, len(ids))
	known := make([]string, 0, len(ids))
	for _, id := range ids {
		if t, ok := catalog.TopicByID(id); ok {
			topics = append(topics, t)
			known = append(known, id)
		}
	}

	msg := "Recommendations based on your selected needs and outcomes"
	if source == SourceAI {
		msg = "AI-powered recommendations generated for your needs"
	}
	return Recommendation{Topics: topics, IDs: known, Source: source, Message: msg}
}
