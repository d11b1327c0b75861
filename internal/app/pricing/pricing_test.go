package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadflow/internal/app/wizard"
)

func sampleState() wizard.BusinessCaseState {
	return wizard.BusinessCaseState{
		Department:       "sales",
		Participants:     20,
		AnnualSalary:     600000,
		Programs:         []string{"leadership-essentials", "strategic-leadership"},
		ProgramHours:     map[string]wizard.Number{"strategic-leadership": 20},
		SoftSkills:       []string{"communication"},
		ConsultingType:   "diagnostic",
		PreAssessment:    true,
		Venue:            true,
		Urgency:          "priority",
		RetentionGain:    "10%",
		SavingsPerPerson: 1000,
	}
}

func TestCalculate_FullBreakdown(t *testing.T) {
	s := sampleState()
	r := Calculate(&s)

	b := r.Breakdown
	assert.Equal(t, 360000.0, b.Programs[0].Amount)
	assert.Equal(t, 3.0, b.Programs[1].Quantity, "20h rounds up to three days")
	assert.Equal(t, 255000.0, b.Programs[1].Amount)
	assert.Equal(t, 90000.0, b.SoftSkillsCost)
	assert.Equal(t, 705000.0, b.BaseCost)
	assert.Equal(t, 270000.0, b.ConsultingCost)
	assert.Equal(t, 65000.0, b.AddOnsTotal)
	assert.Equal(t, 1040000.0, b.Subtotal)

	assert.Equal(t, 1.15, r.UrgencyMultiplier)
	assert.Equal(t, 1196000.0, r.TotalInvestment)

	assert.Equal(t, 0.12, r.Benefit.ProductivityRate, "benchmark used when no percentage given")
	assert.InDelta(t, 0.10, r.Benefit.RetentionRate, 1e-9)
	assert.InDelta(t, 1440000, r.Benefit.Productivity, 1e-6)
	assert.InDelta(t, 600000, r.Benefit.Retention, 1e-6)
	assert.Equal(t, 20000.0, r.Benefit.Savings)
	assert.InDelta(t, 2060000, r.Benefit.Total, 1e-6)

	exp := r.Scenarios.Expected
	require.NotNil(t, exp.ROI)
	require.NotNil(t, exp.PaybackMonths)
	assert.InDelta(t, (2060000.0-1196000.0)/1196000.0, *exp.ROI, 1e-9)
	assert.InDelta(t, 1196000.0/(2060000.0/12), *exp.PaybackMonths, 1e-9)
	assert.InDelta(t, 2060000*0.7, r.Scenarios.Conservative.AnnualBenefit, 1e-6)
}

func TestCalculate_PerDayUsesCatalogHoursAndMinimumOneDay(t *testing.T) {
	s := wizard.BusinessCaseState{Programs: []string{"change-management", "data-driven-decisions"}}
	r := Calculate(&s)
	assert.Equal(t, 2.0, r.Breakdown.Programs[0].Quantity, "12h default is two days")
	assert.Equal(t, 1.0, r.Breakdown.Programs[1].Quantity)

	s.ProgramHours = map[string]wizard.Number{"data-driven-decisions": 2}
	r = Calculate(&s)
	assert.Equal(t, 1.0, r.Breakdown.Programs[1].Quantity)
}

func TestCalculate_ZeroInvestmentGivesNullROI(t *testing.T) {
	s := wizard.BusinessCaseState{Department: "it", Participants: 10, AnnualSalary: 500000}
	r := Calculate(&s)

	require.Zero(t, r.TotalInvestment)
	for _, sc := range []Scenario{r.Scenarios.Conservative, r.Scenarios.Expected, r.Scenarios.Optimistic} {
		assert.Nil(t, sc.ROI)
		require.NotNil(t, sc.PaybackMonths)
		assert.Zero(t, *sc.PaybackMonths)
	}
}

func TestCalculate_NonPositiveBenefitGivesNullPayback(t *testing.T) {
	s := wizard.BusinessCaseState{
		Participants:     5,
		AnnualSalary:     0,
		Programs:         []string{"leadership-essentials"},
		ProductivityGain: "0",
		RetentionGain:    "0",
	}
	r := Calculate(&s)

	require.Positive(t, r.TotalInvestment)
	for _, sc := range []Scenario{r.Scenarios.Conservative, r.Scenarios.Expected, r.Scenarios.Optimistic} {
		assert.Nil(t, sc.PaybackMonths)
		require.NotNil(t, sc.ROI)
		assert.Equal(t, -1.0, *sc.ROI)
	}

	s.SavingsPerPerson = -100000
	r = Calculate(&s)
	assert.Nil(t, r.Scenarios.Expected.PaybackMonths)
}

func TestCalculate_ZeroParticipantsZeroPerParticipantCost(t *testing.T) {
	for _, n := range []wizard.Number{0, -3, 0.4} {
		s := wizard.BusinessCaseState{
			Participants:    n,
			Programs:        []string{"leadership-essentials", "customer-service-excellence", "project-management-fundamentals"},
			SoftSkills:      []string{"teamwork", "critical-thinking"},
			PreAssessment:   true,
			Coaching:        true,
			DigitalFollowUp: true,
			Urgency:         "rush",
		}
		r := Calculate(&s)
		assert.Zero(t, r.Breakdown.ProgramsCost, n)
		assert.Zero(t, r.Breakdown.SoftSkillsCost, n)
		assert.Zero(t, r.Breakdown.AddOnsTotal, n)
		assert.Zero(t, r.TotalInvestment, n)
	}
}

func TestCalculate_ScenarioOrdering(t *testing.T) {
	for _, salary := range []wizard.Number{100000, 450000, 2000000} {
		s := sampleState()
		s.AnnualSalary = salary
		r := Calculate(&s)

		c, e, o := r.Scenarios.Conservative.ROI, r.Scenarios.Expected.ROI, r.Scenarios.Optimistic.ROI
		require.NotNil(t, c)
		require.NotNil(t, e)
		require.NotNil(t, o)
		assert.LessOrEqual(t, *c, *e)
		assert.LessOrEqual(t, *e, *o)

		assert.GreaterOrEqual(t, *r.Scenarios.Conservative.PaybackMonths, *r.Scenarios.Optimistic.PaybackMonths)
	}
}

func TestCalculate_UnknownUrgencyAndProgramsIgnored(t *testing.T) {
	s := wizard.BusinessCaseState{
		Participants: 2,
		Programs:     []string{"basket-weaving", "leadership-essentials"},
		SoftSkills:   []string{"juggling"},
		Urgency:      "asap",
	}
	r := Calculate(&s)
	assert.Equal(t, 1.0, r.UrgencyMultiplier)
	assert.Len(t, r.Breakdown.Programs, 1)
	assert.Empty(t, r.Breakdown.SoftSkills)
	assert.Equal(t, 36000.0, r.TotalInvestment)
}

func TestCalculate_UserPercentOverridesBenchmark(t *testing.T) {
	s := wizard.BusinessCaseState{Department: "finance", Participants: 1, AnnualSalary: 1000, ProductivityGain: "25"}
	r := Calculate(&s)
	assert.InDelta(t, 0.25, r.Benefit.ProductivityRate, 1e-9)
	assert.InDelta(t, 0.06, r.Benefit.RetentionRate, 1e-9)

	s.ProductivityGain = "lots"
	r = Calculate(&s)
	assert.InDelta(t, 0.07, r.Benefit.ProductivityRate, 1e-9)
}
