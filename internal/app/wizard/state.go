package wizard

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind — тип мастера
type Kind string

const (
	BusinessCase Kind = "business-case"
	Consulting   Kind = "consulting"
	Training     Kind = "training"
)

// Number принимает и число, и строку из поля ввода ("25", "", 25)
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*n = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
		if s == "" {
			*n = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || !finite(v) {
			return fmt.Errorf("invalid number %q", s)
		}
		*n = Number(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if !finite(v) {
		return fmt.Errorf("invalid number %s", data)
	}
	*n = Number(v)
	return nil
}

// finite: ParseFloat принимает "NaN" и "Inf", а JSON их не кодирует
func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Percent — процент, введенный пользователем ("15", "15%", 12.5); пустая строка = не задан
type Percent string

func (p *Percent) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*p = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = Percent(s)
		return nil
	}
	*p = Percent(data)
	return nil
}

// Fraction возвращает долю (15% → 0.15); ok=false если значение пустое или не парсится
func (p Percent) Fraction() (float64, bool) {
	s := strings.TrimSpace(string(p))
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !finite(v) {
		return 0, false
	}
	return v / 100, true
}

// Contact — контактный шаг, общий для всех мастеров
type Contact struct {
	CompanyName        string `json:"companyName"`
	ContactName        string `json:"contactName"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	Consent            bool   `json:"consent"`
	RegisteredBusiness string `json:"registeredBusiness"` // yes, no
	TIN                string `json:"tin"`
}

// BusinessCaseState — состояние мастера Business Case Builder
type BusinessCaseState struct {
	Contact

	Department   string   `json:"department"`
	Industry     string   `json:"industry"`
	Participants Number   `json:"participants"`
	AnnualSalary Number   `json:"annualSalary"`
	Goals        []string `json:"goals"`
	Competencies []string `json:"competencies"`

	Programs     []string          `json:"programs"`
	ProgramHours map[string]Number `json:"programHours"`
	SoftSkills   []string          `json:"softSkills"`

	ConsultingType  string `json:"consultingType"`
	PreAssessment   bool   `json:"preAssessment"`
	Coaching        bool   `json:"coaching"`
	DigitalFollowUp bool   `json:"digitalFollowUp"`
	Venue           bool   `json:"venue"`
	Urgency         string `json:"urgency"` // standard, priority, rush

	ProductivityGain Percent `json:"productivityGain"`
	RetentionGain    Percent `json:"retentionGain"`
	SavingsPerPerson Number  `json:"savingsPerPerson"`
}

// ConsultingState — состояние мастера Consulting Flow
type ConsultingState struct {
	Contact

	Department           string   `json:"department"`
	Challenges           []string `json:"challenges"`
	ChallengeDescription string   `json:"challengeDescription"`

	ConsultingType  string `json:"consultingType"`
	EngagementScope string `json:"engagementScope"`
	Timeline        string `json:"timeline"`

	BudgetRange       string `json:"budgetRange"`
	DecisionMaker     string `json:"decisionMaker"` // yes, no
	DecisionMakerName string `json:"decisionMakerName"`
}

// TrainingState — состояние мастера Training Flow
type TrainingState struct {
	Contact

	TrainingSupport []string `json:"trainingSupport"`
	Outcomes        []string `json:"outcomes"`

	TrainingAudience string `json:"trainingAudience"`
	Participants     Number `json:"participants"`
	DeliveryMode     string `json:"deliveryMode"` // onsite, virtual, hybrid
	VenueAddress     string `json:"venueAddress"`

	PreferredStart string   `json:"preferredStart"`
	SpecificNotes  string   `json:"specificNotes"`
	SelectedTopics []string `json:"selectedTopics"`
}
