package catalog

import "sort"

// PriceMode определяет, как считается стоимость позиции каталога
type PriceMode string

const (
	PerParticipant PriceMode = "per_participant"
	PerDay         PriceMode = "per_day"
	Flat           PriceMode = "flat"
)

// HoursPerDay — длина учебного дня для программ с посуточной оплатой
const HoursPerDay = 8

// Program — учебная программа с базовой ценой
type Program struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Duration     string    `json:"duration"`
	PriceMode    PriceMode `json:"priceMode"`
	BasePrice    float64   `json:"basePrice"`
	DefaultHours float64   `json:"defaultHours,omitempty"`
}

type SoftSkill struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Duration  string    `json:"duration"`
	PriceMode PriceMode `json:"priceMode"`
	BasePrice float64   `json:"basePrice"`
}

type AddOn struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	PriceMode PriceMode `json:"priceMode"`
	BasePrice float64   `json:"basePrice"`
}

type Goal struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Competencies []string `json:"competencies"`
}

type Department struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Goals []Goal `json:"goals"`
}

// Benchmark — типичный прирост (доля, не проценты) для отдела
type Benchmark struct {
	ProductivityGain float64 `json:"productivityGain"`
	RetentionGain    float64 `json:"retentionGain"`
}

// TrainingTopic — тема обучения для рекомендаций
type TrainingTopic struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Duration        string   `json:"duration"`
	Category        string   `json:"category"`
	RelatedSupport  []string `json:"relatedSupport"`
	RelatedOutcomes []string `json:"relatedOutcomes"`
}

type UrgencyLevel struct {
	ID         string  `json:"id"`
	Label      string  `json:"label"`
	Multiplier float64 `json:"multiplier"`
}

func ProgramByID(id string) (Program, bool) {
	for _, p := range programs {
		if p.ID == id {
			return p, true
		}
	}
	return Program{}, false
}

func SoftSkillByID(id string) (SoftSkill, bool) {
	for _, s := range softSkills {
		if s.ID == id {
			return s, true
		}
	}
	return SoftSkill{}, false
}

func AddOnByID(id string) (AddOn, bool) {
	for _, a := range addOns {
		if a.ID == id {
			return a, true
		}
	}
	return AddOn{}, false
}

func DepartmentByID(id string) (Department, bool) {
	for _, d := range departments {
		if d.ID == id {
			return d.clone(), true
		}
	}
	return Department{}, false
}

// clone копирует вложенные срезы, чтобы вызывающий код не мог изменить таблицы пакета
func (d Department) clone() Department {
	goals := make([]Goal, len(d.Goals))
	for i, g := range d.Goals {
		g.Competencies = append([]string(nil), g.Competencies...)
		goals[i] = g
	}
	d.Goals = goals
	return d
}

func (t TrainingTopic) clone() TrainingTopic {
	t.RelatedSupport = append([]string(nil), t.RelatedSupport...)
	t.RelatedOutcomes = append([]string(nil), t.RelatedOutcomes...)
	return t
}

// UrgencyMultiplier возвращает коэффициент срочности; неизвестное значение = 1.0
func UrgencyMultiplier(urgency string) float64 {
	for _, u := range urgencyLevels {
		if u.ID == urgency {
			return u.Multiplier
		}
	}
	return 1.0
}

// BenchmarkFor возвращает бенчмарк отдела или значение по умолчанию
func BenchmarkFor(department string) Benchmark {
	if b, ok := benchmarks[department]; ok {
		return b
	}
	return defaultBenchmark
}

// PillarOf возвращает направление (pillar), к которому относится компетенция
func PillarOf(competency string) string {
	return competencyPillars[competency]
}

// CompetenciesFor собирает компетенции для выбранных целей отдела (без повторов, в порядке целей)
func CompetenciesFor(department string, goalIDs []string) []string {
	dept, ok := DepartmentByID(department)
	if !ok {
		return []string{}
	}

	selected := make(map[string]bool, len(goalIDs))
	for _, id := range goalIDs {
		selected[id] = true
	}

	seen := make(map[string]bool)
	result := []string{}
	for _, g := range dept.Goals {
		if !selected[g.ID] {
			continue
		}
		for _, c := range g.Competencies {
			if !seen[c] {
				seen[c] = true
				result = append(result, c)
			}
		}
	}
	return result
}

// PillarsFor возвращает отсортированный список направлений для набора компетенций
func PillarsFor(competencies []string) []string {
	seen := make(map[string]bool)
	result := []string{}
	for _, c := range competencies {
		p := PillarOf(c)
		if p != "" && !seen[p] {
			seen[p] = true
			result = append(result, p)
		}
	}
	sort.Strings(result)
	return result
}

func Programs() []Program           { return append([]Program(nil), programs...) }
func SoftSkills() []SoftSkill       { return append([]SoftSkill(nil), softSkills...) }
func AddOns() []AddOn               { return append([]AddOn(nil), addOns...) }
func UrgencyLevels() []UrgencyLevel { return append([]UrgencyLevel(nil), urgencyLevels...) }
func SupportCategories() []string   { return append([]string(nil), supportCategories...) }
func Outcomes() []string            { return append([]string(nil), outcomes...) }

// Departments и Topics копируют вложенные срезы
func Departments() []Department {
	out := make([]Department, len(departments))
	for i, d := range departments {
		out[i] = d.clone()
	}
	return out
}

func Topics() []TrainingTopic {
	out := make([]TrainingTopic, len(topics))
	for i, t := range topics {
		out[i] = t.clone()
	}
	return out
}

func TopicByID(id string) (TrainingTopic, bool) {
	for _, t := range topics {
		if t.ID == id {
			return t.clone(), true
		}
	}
	return TrainingTopic{}, false
}

// DepartmentIDs используется валидацией мастера
func DepartmentIDs() []string {
	ids := make([]string, len(departments))
	for i, d := range departments {
		ids[i] = d.ID
	}
	return ids
}
