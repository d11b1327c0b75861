package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUrgencyMultiplier(t *testing.T) {
	assert.Equal(t, 1.00, UrgencyMultiplier("standard"))
	assert.Equal(t, 1.15, UrgencyMultiplier("priority"))
	assert.Equal(t, 1.25, UrgencyMultiplier("rush"))
	assert.Equal(t, 1.00, UrgencyMultiplier("yesterday"))
	assert.Equal(t, 1.00, UrgencyMultiplier(""))
}

func TestBenchmarkFor_UnknownDepartmentUsesDefault(t *testing.T) {
	assert.Equal(t, defaultBenchmark, BenchmarkFor("marketing"))
	assert.Equal(t, 0.12, BenchmarkFor("sales").ProductivityGain)
}

func TestCompetenciesFor_DedupesAcrossGoals(t *testing.T) {
	got := CompetenciesFor("sales", []string{"grow-revenue", "shorten-cycle"})
	assert.Equal(t, []string{"consultative-selling", "negotiation", "pipeline-management", "objection-handling"}, got)

	assert.Empty(t, CompetenciesFor("nope", []string{"grow-revenue"}))
}

func TestPillarsFor(t *testing.T) {
	got := PillarsFor([]string{"coaching", "negotiation", "active-listening", "unknown"})
	assert.Equal(t, []string{"Communication", "Leadership"}, got)
}

func TestTopicsReferenceKnownTags(t *testing.T) {
	support := map[string]bool{}
	for _, s := range SupportCategories() {
		support[s] = true
	}
	outs := map[string]bool{}
	for _, o := range Outcomes() {
		outs[o] = true
	}

	ids := map[string]bool{}
	for _, topic := range Topics() {
		require.False(t, ids[topic.ID], "duplicate topic id %s", topic.ID)
		ids[topic.ID] = true
		for _, s := range topic.RelatedSupport {
			assert.True(t, support[s], "topic %s: unknown support tag %s", topic.ID, s)
		}
		for _, o := range topic.RelatedOutcomes {
			assert.True(t, outs[o], "topic %s: unknown outcome %s", topic.ID, o)
		}
	}
}

func TestEveryCompetencyHasPillar(t *testing.T) {
	for _, d := range Departments() {
		for _, g := range d.Goals {
			for _, c := range g.Competencies {
				assert.NotEmpty(t, PillarOf(c), "competency %s has no pillar", c)
			}
		}
	}
}

func TestPerDayProgramsHaveDefaultHours(t *testing.T) {
	for _, p := range Programs() {
		if p.PriceMode == PerDay {
			assert.Greater(t, p.DefaultHours, 0.0, p.ID)
		}
	}
}

func TestAccessorsReturnIndependentCopies(t *testing.T) {
	deps := Departments()
	require.NotEmpty(t, deps)
	deps[0].Goals[0].Competencies[0] = "mutated"
	deps[0].Goals[0] = Goal{ID: "mutated"}
	assert.NotEqual(t, "mutated", Departments()[0].Goals[0].ID)
	assert.NotEqual(t, "mutated", Departments()[0].Goals[0].Competencies[0])

	sales, ok := DepartmentByID("sales")
	require.True(t, ok)
	sales.Goals[0].Competencies[0] = "mutated"
	assert.Equal(t, []string{"consultative-selling", "negotiation", "pipeline-management"}, CompetenciesFor("sales", []string{"grow-revenue"}))

	topics := Topics()
	topics[0].RelatedSupport[0] = "mutated"
	assert.NotEqual(t, "mutated", Topics()[0].RelatedSupport[0])

	topic, ok := TopicByID("managing-teams-effectively")
	require.True(t, ok)
	topic.RelatedOutcomes[0] = "mutated"
	again, _ := TopicByID("managing-teams-effectively")
	assert.Equal(t, "Improve leadership capability", again.RelatedOutcomes[0])
}
