package pricing

import (
	"math"

	"leadflow/internal/app/catalog"
	"leadflow/internal/app/wizard"
)

// LineItem — одна позиция расчета
type LineItem struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Mode     catalog.PriceMode `json:"priceMode"`
	Quantity float64           `json:"quantity"` // участники, дни или 1 для фиксированной цены
	Rate     float64           `json:"rate"`
	Amount   float64           `json:"amount"`
}

type Breakdown struct {
	Programs   []LineItem `json:"programs"`
	SoftSkills []LineItem `json:"softSkills"`
	AddOns     []LineItem `json:"addOns"`

	ProgramsCost   float64 `json:"programsCost"`
	SoftSkillsCost float64 `json:"softSkillsCost"`
	BaseCost       float64 `json:"baseCost"`
	ConsultingCost float64 `json:"consultingCost"`
	AddOnsTotal    float64 `json:"addOnsTotal"`
	Subtotal       float64 `json:"subtotal"`
}

// Benefit — годовой эффект до применения сценарных коэффициентов
type Benefit struct {
	ProductivityRate float64 `json:"productivityRate"`
	RetentionRate    float64 `json:"retentionRate"`

	Productivity float64 `json:"productivity"`
	Retention    float64 `json:"retention"`
	Savings      float64 `json:"savings"`
	Total        float64 `json:"total"`
}

// Scenario — ROI и окупаемость; nil вместо NaN/Inf
type Scenario struct {
	Factor        float64  `json:"factor"`
	AnnualBenefit float64  `json:"annualBenefit"`
	ROI           *float64 `json:"roi"`
	PaybackMonths *float64 `json:"paybackMonths"`
}

type Scenarios struct {
	Conservative Scenario `json:"conservative"`
	Expected     Scenario `json:"expected"`
	Optimistic   Scenario `json:"optimistic"`
}

type Result struct {
	Participants      float64   `json:"participants"`
	Urgency           string    `json:"urgency"`
	UrgencyMultiplier float64   `json:"urgencyMultiplier"`
	Breakdown         Breakdown `json:"breakdown"`
	TotalInvestment   float64   `json:"totalInvestment"`
	Benefit           Benefit   `json:"benefit"`
	Scenarios         Scenarios `json:"scenarios"`
}

// Calculate считает стоимость и ROI бизнес-кейса. Функция чистая и не возвращает ошибок:
// некорректный ввод вырождается в нули и nil
func Calculate(s *wizard.BusinessCaseState) Result {
	participants := math.Max(0, math.Floor(float64(s.Participants)))
	urgency := catalog.UrgencyMultiplier(s.Urgency)

	var b Breakdown
	b.Programs = []LineItem{}
	b.SoftSkills = []LineItem{}
	b.AddOns = []LineItem{}

	for _, id := range s.Programs {
		p, ok := catalog.ProgramByID(id)
		if !ok {
			continue
		}
		item := LineItem{ID: p.ID, Name: p.Name, Mode: p.PriceMode, Rate: p.BasePrice}
		switch p.PriceMode {
		case catalog.PerDay:
			item.Quantity = trainingDays(float64(s.ProgramHours[p.ID]), p.DefaultHours)
		case catalog.Flat:
			item.Quantity = 1
		default:
			item.Quantity = participants
		}
		item.Amount = item.Rate * item.Quantity
		b.Programs = append(b.Programs, item)
		b.ProgramsCost += item.Amount
	}

	for _, id := range s.SoftSkills {
		sk, ok := catalog.SoftSkillByID(id)
		if !ok {
			continue
		}
		item := LineItem{ID: sk.ID, Name: sk.Name, Mode: sk.PriceMode, Rate: sk.BasePrice, Quantity: participants}
		item.Amount = item.Rate * item.Quantity
		b.SoftSkills = append(b.SoftSkills, item)
		b.SoftSkillsCost += item.Amount
	}
	b.BaseCost = b.ProgramsCost + b.SoftSkillsCost

	if s.ConsultingType != "" {
		b.ConsultingCost = catalog.ConsultingDays * catalog.ConsultingDayRate
	}

	flags := map[string]bool{
		catalog.AddOnPreAssessment:   s.PreAssessment,
		catalog.AddOnCoaching:        s.Coaching,
		catalog.AddOnDigitalFollowUp: s.DigitalFollowUp,
		catalog.AddOnVenue:           s.Venue,
	}
	for _, a := range catalog.AddOns() {
		if !flags[a.ID] {
			continue
		}
		item := LineItem{ID: a.ID, Name: a.Name, Mode: a.PriceMode, Rate: a.BasePrice, Quantity: 1}
		if a.PriceMode == catalog.PerParticipant {
			item.Quantity = participants
		}
		item.Amount = item.Rate * item.Quantity
		b.AddOns = append(b.AddOns, item)
		b.AddOnsTotal += item.Amount
	}

	b.Subtotal = b.BaseCost + b.ConsultingCost + b.AddOnsTotal
	total := math.Round(b.Subtotal * urgency)

	benefit := annualBenefit(s, participants)

	return Result{
		Participants:      participants,
		Urgency:           s.Urgency,
		UrgencyMultiplier: urgency,
		Breakdown:         b,
		TotalInvestment:   total,
		Benefit:           benefit,
		Scenarios: Scenarios{
			Conservative: scenario(catalog.ConservativeFactor, benefit.Total, total),
			Expected:     scenario(catalog.ExpectedFactor, benefit.Total, total),
			Optimistic:   scenario(catalog.OptimisticFactor, benefit.Total, total),
		},
	}
}

// trainingDays: часы (переопределение или значение каталога) / 8, округление вверх, минимум день
func trainingDays(override, defaultHours float64) float64 {
	hours := defaultHours
	if override > 0 {
		hours = override
	}
	return math.Max(1, math.Ceil(hours/catalog.HoursPerDay))
}

func annualBenefit(s *wizard.BusinessCaseState, participants float64) Benefit {
	bench := catalog.BenchmarkFor(s.Department)

	productivity, ok := s.ProductivityGain.Fraction()
	if !ok {
		productivity = bench.ProductivityGain
	}
	retention, ok := s.RetentionGain.Fraction()
	if !ok {
		retention = bench.RetentionGain
	}

	payroll := participants * float64(s.AnnualSalary)
	out := Benefit{
		ProductivityRate: productivity,
		RetentionRate:    retention,
		Productivity:     payroll * productivity,
		Retention:        payroll * catalog.ReplacementCostFactor * retention,
		Savings:          participants * float64(s.SavingsPerPerson),
	}
	out.Total = out.Productivity + out.Retention + out.Savings
	return out
}

func scenario(factor, benefit, investment float64) Scenario {
	sc := Scenario{Factor: factor, AnnualBenefit: benefit * factor}
	if investment != 0 {
		roi := (sc.AnnualBenefit - investment) / investment
		sc.ROI = &roi
	}
	if sc.AnnualBenefit > 0 {
		months := investment / (sc.AnnualBenefit / 12)
		sc.PaybackMonths = &months
	}
	return sc
}
