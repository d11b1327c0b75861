package wizard

import (
	"strings"

	"leadflow/internal/app/catalog"
)

var departmentRule = "oneof=" + strings.Join(catalog.DepartmentIDs(), " ")

// contactFields — первый шаг любого мастера. ИНН виден и обязателен только
// для зарегистрированного бизнеса
func contactFields[S any](contact func(s *S) *Contact) []Field[S] {
	registered := func(s *S) bool { return contact(s).RegisteredBusiness == "yes" }

	return []Field[S]{
		{Name: "companyName", Label: "Company name", Required: always[S],
			Value: func(s *S) any { return contact(s).CompanyName }},
		{Name: "contactName", Label: "Contact name", Required: always[S],
			Value: func(s *S) any { return contact(s).ContactName }},
		{Name: "email", Label: "Email", Required: always[S], Rule: "email",
			Message: "Email must be a valid email address",
			Value:   func(s *S) any { return contact(s).Email }},
		{Name: "phone", Label: "Phone", Required: always[S], Rule: "min=7,max=20",
			Message: "Phone must be between 7 and 20 characters",
			Value:   func(s *S) any { return contact(s).Phone }},
		{Name: "consent", Label: "Consent", Required: always[S],
			Message: "You must agree to be contacted about this request",
			Value:   func(s *S) any { return contact(s).Consent }},
		{Name: "registeredBusiness", Label: "Registered business", Required: always[S], Rule: "oneof=yes no",
			Message: "Please tell us whether this is a registered business",
			Value:   func(s *S) any { return contact(s).RegisteredBusiness }},
		{Name: "tin", Label: "TIN", Visible: registered, Required: registered, Rule: "digits,len=10",
			Message: "TIN must be exactly 10 digits",
			Value:   func(s *S) any { return strings.TrimSpace(contact(s).TIN) }},
	}
}

func percentCheck(label string, p func(*BusinessCaseState) Percent) func(*BusinessCaseState) string {
	return func(s *BusinessCaseState) string {
		if strings.TrimSpace(string(p(s))) == "" {
			return ""
		}
		f, ok := p(s).Fraction()
		if !ok || f < 0 || f > 1 {
			return label + " must be a percentage between 0 and 100"
		}
		return ""
	}
}

// ============ Business Case Builder ============

var BusinessCaseWizard = newWizard(BusinessCase,
	Step[BusinessCaseState]{
		Title:  "Contact details",
		Fields: contactFields(func(s *BusinessCaseState) *Contact { return &s.Contact }),
	},
	Step[BusinessCaseState]{
		Title: "Your organization",
		Fields: []Field[BusinessCaseState]{
			{Name: "department", Label: "Department", Required: always[BusinessCaseState], Rule: departmentRule,
				Message: "Please choose a department from the list",
				Value:   func(s *BusinessCaseState) any { return s.Department }},
			{Name: "industry", Label: "Industry",
				Value: func(s *BusinessCaseState) any { return s.Industry }},
			{Name: "participants", Label: "Number of participants", Rule: "min=1,whole",
				Message: "Number of participants must be a whole number of at least 1",
				Value:   func(s *BusinessCaseState) any { return float64(s.Participants) }},
			{Name: "annualSalary", Label: "Average annual salary", Rule: "gt=0",
				Message: "Average annual salary must be greater than zero",
				Value:   func(s *BusinessCaseState) any { return float64(s.AnnualSalary) }},
		},
	},
	Step[BusinessCaseState]{
		Title: "Goals",
		Fields: []Field[BusinessCaseState]{
			{Name: "goals", Label: "Goals", Required: always[BusinessCaseState],
				Message: "Select at least one goal",
				Value:   func(s *BusinessCaseState) any { return s.Goals }},
			{Name: "competencies", Label: "Competencies",
				Value: func(s *BusinessCaseState) any { return s.Competencies }},
		},
	},
	Step[BusinessCaseState]{
		Title: "Programs",
		Fields: []Field[BusinessCaseState]{
			{Name: "programs", Label: "Programs",
				Value: func(s *BusinessCaseState) any { return s.Programs },
				Check: func(s *BusinessCaseState) string {
					if len(s.Programs) == 0 && len(s.SoftSkills) == 0 {
						return "Select at least one program or soft skill"
					}
					return ""
				}},
			{Name: "softSkills", Label: "Soft skills",
				Value: func(s *BusinessCaseState) any { return s.SoftSkills }},
			{Name: "programHours", Label: "Program hours",
				Visible: func(s *BusinessCaseState) bool { return hasPerDayProgram(s.Programs) },
				Value:   func(s *BusinessCaseState) any { return s.ProgramHours },
				Check: func(s *BusinessCaseState) string {
					for _, h := range s.ProgramHours {
						if h < 0 {
							return "Program hours cannot be negative"
						}
					}
					return ""
				}},
		},
	},
	Step[BusinessCaseState]{
		Title: "Add-ons & timeline",
		Fields: []Field[BusinessCaseState]{
			{Name: "consultingType", Label: "Consulting type",
				Rule:    "oneof=" + strings.Join(catalog.ConsultingTypes(), " "),
				Message: "Please choose a consulting type from the list",
				Value:   func(s *BusinessCaseState) any { return s.ConsultingType }},
			{Name: "urgency", Label: "Urgency", Required: always[BusinessCaseState], Rule: "oneof=standard priority rush",
				Message: "Please choose how soon you need the training",
				Value:   func(s *BusinessCaseState) any { return s.Urgency }},
		},
	},
	Step[BusinessCaseState]{
		Title: "Expected impact",
		Fields: []Field[BusinessCaseState]{
			{Name: "productivityGain", Label: "Productivity gain",
				Value: func(s *BusinessCaseState) any { return string(s.ProductivityGain) },
				Check: percentCheck("Productivity gain", func(s *BusinessCaseState) Percent { return s.ProductivityGain })},
			{Name: "retentionGain", Label: "Retention gain",
				Value: func(s *BusinessCaseState) any { return string(s.RetentionGain) },
				Check: percentCheck("Retention gain", func(s *BusinessCaseState) Percent { return s.RetentionGain })},
			{Name: "savingsPerPerson", Label: "Cost savings per person",
				Value: func(s *BusinessCaseState) any { return float64(s.SavingsPerPerson) },
				Check: func(s *BusinessCaseState) string {
					if s.SavingsPerPerson < 0 {
						return "Cost savings per person cannot be negative"
					}
					return ""
				}},
		},
	},
	Step[BusinessCaseState]{Title: "Review"},
)

func hasPerDayProgram(ids []string) bool {
	for _, id := range ids {
		if p, ok := catalog.ProgramByID(id); ok && p.PriceMode == catalog.PerDay {
			return true
		}
	}
	return false
}

// ============ Consulting Flow ============

var ConsultingWizard = newWizard(Consulting,
	Step[ConsultingState]{
		Title:  "Contact details",
		Fields: contactFields(func(s *ConsultingState) *Contact { return &s.Contact }),
	},
	Step[ConsultingState]{
		Title: "Your challenge",
		Fields: []Field[ConsultingState]{
			{Name: "department", Label: "Department", Required: always[ConsultingState], Rule: departmentRule,
				Message: "Please choose a department from the list",
				Value:   func(s *ConsultingState) any { return s.Department }},
			{Name: "challenges", Label: "Challenges", Required: always[ConsultingState],
				Message: "Select at least one challenge",
				Value:   func(s *ConsultingState) any { return s.Challenges }},
			{Name: "challengeDescription", Label: "Challenge description", Rule: "max=2000",
				Message: "Challenge description must be at most 2000 characters",
				Value:   func(s *ConsultingState) any { return s.ChallengeDescription }},
		},
	},
	Step[ConsultingState]{
		Title: "Engagement scope",
		Fields: []Field[ConsultingState]{
			{Name: "consultingType", Label: "Consulting type", Required: always[ConsultingState],
				Rule:    "oneof=" + strings.Join(catalog.ConsultingTypes(), " "),
				Message: "Please choose a consulting type from the list",
				Value:   func(s *ConsultingState) any { return s.ConsultingType }},
			{Name: "engagementScope", Label: "Engagement scope", Required: always[ConsultingState],
				Value: func(s *ConsultingState) any { return s.EngagementScope }},
			{Name: "timeline", Label: "Timeline", Required: always[ConsultingState],
				Value: func(s *ConsultingState) any { return s.Timeline }},
		},
	},
	Step[ConsultingState]{
		Title: "Budget & decision",
		Fields: []Field[ConsultingState]{
			{Name: "budgetRange", Label: "Budget range", Required: always[ConsultingState],
				Value: func(s *ConsultingState) any { return s.BudgetRange }},
			{Name: "decisionMaker", Label: "Decision maker", Required: always[ConsultingState], Rule: "oneof=yes no",
				Message: "Please tell us whether you are the decision maker",
				Value:   func(s *ConsultingState) any { return s.DecisionMaker }},
			{Name: "decisionMakerName", Label: "Decision maker name",
				Visible:  func(s *ConsultingState) bool { return s.DecisionMaker == "no" },
				Required: func(s *ConsultingState) bool { return s.DecisionMaker == "no" },
				Value:    func(s *ConsultingState) any { return s.DecisionMakerName }},
		},
	},
	Step[ConsultingState]{Title: "Review"},
)

// ============ Training Flow ============

func needsVenue(s *TrainingState) bool {
	return s.DeliveryMode == "onsite" || s.DeliveryMode == "hybrid"
}

var TrainingWizard = newWizard(Training,
	Step[TrainingState]{
		Title:  "Contact details",
		Fields: contactFields(func(s *TrainingState) *Contact { return &s.Contact }),
	},
	Step[TrainingState]{
		Title: "Training needs",
		Fields: []Field[TrainingState]{
			{Name: "trainingSupport", Label: "Training support", Required: always[TrainingState],
				Message: "Select at least one area where you need support",
				Value:   func(s *TrainingState) any { return s.TrainingSupport }},
			{Name: "outcomes", Label: "Desired outcomes", Required: always[TrainingState],
				Message: "Select at least one desired outcome",
				Value:   func(s *TrainingState) any { return s.Outcomes }},
		},
	},
	Step[TrainingState]{
		Title: "Audience & delivery",
		Fields: []Field[TrainingState]{
			{Name: "trainingAudience", Label: "Training audience", Required: always[TrainingState],
				Value: func(s *TrainingState) any { return s.TrainingAudience }},
			{Name: "participants", Label: "Number of participants", Rule: "min=1,whole",
				Message: "Number of participants must be a whole number of at least 1",
				Value:   func(s *TrainingState) any { return float64(s.Participants) }},
			{Name: "deliveryMode", Label: "Delivery mode", Required: always[TrainingState], Rule: "oneof=onsite virtual hybrid",
				Message: "Please choose onsite, virtual or hybrid delivery",
				Value:   func(s *TrainingState) any { return s.DeliveryMode }},
			{Name: "venueAddress", Label: "Venue address", Visible: needsVenue, Required: needsVenue,
				Value: func(s *TrainingState) any { return s.VenueAddress }},
		},
	},
	Step[TrainingState]{
		Title: "Schedule",
		Fields: []Field[TrainingState]{
			{Name: "preferredStart", Label: "Preferred start date", Required: always[TrainingState], Rule: "datetime=2006-01-02",
				Message: "Preferred start date must be a date in YYYY-MM-DD format",
				Value:   func(s *TrainingState) any { return s.PreferredStart }},
			{Name: "specificNotes", Label: "Notes", Rule: "max=2000",
				Message: "Notes must be at most 2000 characters",
				Value:   func(s *TrainingState) any { return s.SpecificNotes }},
		},
	},
	Step[TrainingState]{
		Title: "Recommended topics",
		Fields: []Field[TrainingState]{
			{Name: "selectedTopics", Label: "Topics",
				Value: func(s *TrainingState) any { return s.SelectedTopics },
				Check: func(s *TrainingState) string {
					for _, id := range s.SelectedTopics {
						if _, ok := catalog.TopicByID(id); !ok {
							return "Unknown training topic: " + id
						}
					}
					return ""
				}},
		},
	},
)
