package recommend

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"leadflow/internal/app/catalog"
)

// fakeGenerator implements Generator for testing.
type fakeGenerator struct {
	response string
	err      error
	calls    atomic.Int32
	prompts  []string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.calls.Add(1)
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

func leadershipSelection() Selection {
	return Selection{
		Support:  []string{"leadership-management"},
		Outcomes: []string{"Improve leadership capability"},
	}
}

func TestRuleRecommender_IntersectsTags(t *testing.T) {
	ids := RuleRecommender{}.Recommend(leadershipSelection())

	require.NotEmpty(t, ids)
	assert.Contains(t, ids, "managing-teams-effectively")
	assert.Contains(t, ids, "coaching-for-performance")
	assert.Contains(t, ids, "change-resilience")
	assert.NotContains(t, ids, "data-literacy")

	for _, id := range ids {
		topic, ok := catalog.TopicByID(id)
		require.True(t, ok)
		hit := false
		for _, s := range topic.RelatedSupport {
			hit = hit || s == "leadership-management"
		}
		for _, o := range topic.RelatedOutcomes {
			hit = hit || o == "Improve leadership capability"
		}
		assert.True(t, hit, id)
	}
}

func TestRuleRecommender_NoMatchReturnsWholeCatalog(t *testing.T) {
	ids := RuleRecommender{}.Recommend(Selection{Support: []string{"underwater-basketry"}})
	assert.Len(t, ids, len(catalog.Topics()))

	ids = RuleRecommender{}.Recommend(Selection{})
	assert.Len(t, ids, len(catalog.Topics()))
}

func TestCacheKey_Canonical(t *testing.T) {
	a := Selection{Support: []string{"b", "a"}, Outcomes: []string{"y", "x"}, Audience: "managers"}
	b := Selection{Support: []string{"a", "b"}, Outcomes: []string{"x", "y"}, Audience: "managers"}
	assert.Equal(t, a.CacheKey(), b.CacheKey())
	assert.Equal(t, []string{"b", "a"}, a.Support, "selection is not mutated")

	b.Audience = "executives"
	assert.NotEqual(t, a.CacheKey(), b.CacheKey())

	long := strings.Repeat("n", 150)
	c := Selection{Notes: long}
	d := Selection{Notes: long[:100] + "different tail"}
	assert.Equal(t, c.CacheKey(), d.CacheKey())
}

func TestParseIDs(t *testing.T) {
	ids, err := parseIDs("Sure! Here you go:\n```json\n[\"data-literacy\", \"change-resilience\"]\n```")
	require.NoError(t, err)
	assert.Equal(t, []string{"data-literacy", "change-resilience"}, ids)

	_, err = parseIDs("no array here")
	assert.Error(t, err)

	_, err = parseIDs("[1, 2")
	assert.Error(t, err)
}

func TestAIRecommender_FiltersAndDedupes(t *testing.T) {
	gen := &fakeGenerator{response: `["data-literacy","made-up-topic","data-literacy","strategic-communication"]`}
	ids, err := NewAIRecommender(gen).Recommend(context.Background(), leadershipSelection())

	require.NoError(t, err)
	assert.Equal(t, []string{"data-literacy", "strategic-communication"}, ids)
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "managing-teams-effectively")
	assert.Contains(t, gen.prompts[0], "Improve leadership capability")
}

func TestAIRecommender_OnlyUnknownIDs(t *testing.T) {
	gen := &fakeGenerator{response: `["nope"]`}
	_, err := NewAIRecommender(gen).Recommend(context.Background(), leadershipSelection())
	assert.ErrorIs(t, err, ErrNoRecommendations)
}

func TestService_FallsBackSilently(t *testing.T) {
	cases := map[string]*fakeGenerator{
		"api error":   {err: errors.New("503 unavailable")},
		"bad json":    {response: "I recommend leadership training"},
		"unknown ids": {response: `["foo","bar"]`},
		"empty array": {response: `[]`},
	}
	for name, gen := range cases {
		t.Run(name, func(t *testing.T) {
			cache := NewMemoryCache(16, time.Hour)
			svc := NewService(NewAIRecommender(gen), cache)

			rec := svc.Recommend(context.Background(), leadershipSelection())
			assert.Equal(t, SourceRules, rec.Source)
			assert.Contains(t, rec.IDs, "managing-teams-effectively")
			assert.Len(t, rec.Topics, len(rec.IDs))
			assert.Zero(t, cache.Len(), "failures are not cached")
		})
	}
}

func TestService_WithoutModelUsesRules(t *testing.T) {
	svc := NewService(nil, NewMemoryCache(16, time.Hour))
	rec := svc.Recommend(context.Background(), leadershipSelection())
	assert.Equal(t, SourceRules, rec.Source)
	assert.NotEmpty(t, rec.Message)
}

func TestService_CacheHitSkipsModel(t *testing.T) {
	gen := &fakeGenerator{response: `["coaching-for-performance","managing-teams-effectively"]`}
	svc := NewService(NewAIRecommender(gen), NewMemoryCache(16, time.Hour))

	first := svc.Recommend(context.Background(), Selection{
		Support:  []string{"team-building", "leadership-management"},
		Outcomes: []string{"Reduce employee turnover", "Improve leadership capability"},
	})
	second := svc.Recommend(context.Background(), Selection{
		Support:  []string{"leadership-management", "team-building"},
		Outcomes: []string{"Improve leadership capability", "Reduce employee turnover"},
	})

	assert.Equal(t, int32(1), gen.calls.Load())
	assert.Equal(t, SourceAI, first.Source)
	assert.Equal(t, SourceAI, second.Source)
	assert.Equal(t, first.IDs, second.IDs)
	assert.Equal(t, []string{"coaching-for-performance", "managing-teams-effectively"}, second.IDs)
}

func TestService_CacheExpires(t *testing.T) {
	gen := &fakeGenerator{response: `["data-literacy"]`}
	svc := NewService(NewAIRecommender(gen), NewMemoryCache(16, 20*time.Millisecond))

	svc.Recommend(context.Background(), leadershipSelection())
	time.Sleep(60 * time.Millisecond)
	svc.Recommend(context.Background(), leadershipSelection())

	assert.Equal(t, int32(2), gen.calls.Load())
}

func TestService_RateLimitFallsBack(t *testing.T) {
	gen := &fakeGenerator{response: `["data-literacy"]`}
	svc := NewService(NewAIRecommender(gen), nil, WithRateLimit(rate.NewLimiter(0, 0)))

	rec := svc.Recommend(context.Background(), leadershipSelection())
	assert.Equal(t, SourceRules, rec.Source)
	assert.Zero(t, gen.calls.Load())
}

func TestMemoryCache_Bounded(t *testing.T) {
	c := NewMemoryCache(2, time.Hour)
	ctx := context.Background()
	c.Set(ctx, "a", []string{"1"})
	c.Set(ctx, "b", []string{"2"})
	c.Set(ctx, "c", []string{"3"})

	assert.Equal(t, 2, c.Len())
	_, ok := c.Get(ctx, "a")
	assert.False(t, ok)
	ids, ok := c.Get(ctx, "c")
	require.True(t, ok)
	assert.Equal(t, []string{"3"}, ids)
}
