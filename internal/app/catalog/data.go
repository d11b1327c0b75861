package catalog

// ============ Программы и цены ============

var programs = []Program{
	{ID: "leadership-essentials", Name: "Leadership Essentials", Duration: "2 days", PriceMode: PerParticipant, BasePrice: 18000},
	{ID: "strategic-leadership", Name: "Strategic Leadership Intensive", Duration: "2 days", PriceMode: PerDay, BasePrice: 85000, DefaultHours: 16},
	{ID: "customer-service-excellence", Name: "Customer Service Excellence", Duration: "1 day", PriceMode: PerParticipant, BasePrice: 12000},
	{ID: "sales-mastery", Name: "Sales Mastery Bootcamp", Duration: "2 days", PriceMode: PerDay, BasePrice: 75000, DefaultHours: 16},
	{ID: "project-management-fundamentals", Name: "Project Management Fundamentals", Duration: "2 days", PriceMode: PerParticipant, BasePrice: 15000},
	{ID: "data-driven-decisions", Name: "Data-Driven Decision Making", Duration: "1 day", PriceMode: PerDay, BasePrice: 70000, DefaultHours: 8},
	{ID: "change-management", Name: "Leading Through Change", Duration: "1.5 days", PriceMode: PerDay, BasePrice: 80000, DefaultHours: 12},
}

var softSkills = []SoftSkill{
	{ID: "communication", Name: "Effective Communication", Duration: "4 hours", PriceMode: PerParticipant, BasePrice: 4500},
	{ID: "emotional-intelligence", Name: "Emotional Intelligence", Duration: "4 hours", PriceMode: PerParticipant, BasePrice: 5000},
	{ID: "time-management", Name: "Time Management", Duration: "3 hours", PriceMode: PerParticipant, BasePrice: 3500},
	{ID: "conflict-resolution", Name: "Conflict Resolution", Duration: "4 hours", PriceMode: PerParticipant, BasePrice: 4500},
	{ID: "critical-thinking", Name: "Critical Thinking", Duration: "4 hours", PriceMode: PerParticipant, BasePrice: 4000},
	{ID: "teamwork", Name: "Teamwork & Collaboration", Duration: "3 hours", PriceMode: PerParticipant, BasePrice: 3500},
}

// Дополнительные услуги (флаги в форме бизнес-кейса)
const (
	AddOnPreAssessment   = "pre-assessment"
	AddOnCoaching        = "coaching"
	AddOnDigitalFollowUp = "digital-follow-up"
	AddOnVenue           = "venue"
)

var addOns = []AddOn{
	{ID: AddOnPreAssessment, Name: "Pre-training Assessment", PriceMode: PerParticipant, BasePrice: 1500},
	{ID: AddOnCoaching, Name: "1:1 Post-training Coaching", PriceMode: PerParticipant, BasePrice: 6000},
	{ID: AddOnDigitalFollowUp, Name: "Digital Follow-up Program", PriceMode: PerParticipant, BasePrice: 2000},
	{ID: AddOnVenue, Name: "Venue & Catering", PriceMode: Flat, BasePrice: 35000},
}

// Консалтинг: заглушка 3 дня × 90 000 независимо от типа
const (
	ConsultingDays    = 3
	ConsultingDayRate = 90000
)

var consultingTypes = []string{"diagnostic", "program-design", "change-advisory", "leadership-assessment"}

func ConsultingTypes() []string { return append([]string(nil), consultingTypes...) }

var urgencyLevels = []UrgencyLevel{
	{ID: "standard", Label: "Standard (6+ weeks)", Multiplier: 1.00},
	{ID: "priority", Label: "Priority (3-6 weeks)", Multiplier: 1.15},
	{ID: "rush", Label: "Rush (under 3 weeks)", Multiplier: 1.25},
}

// ============ ROI ============

// ReplacementCostFactor — стоимость замены сотрудника как доля годовой зарплаты
const ReplacementCostFactor = 0.5

// Сценарии ROI
const (
	ConservativeFactor = 0.7
	ExpectedFactor     = 1.0
	OptimisticFactor   = 1.3
)

var benchmarks = map[string]Benchmark{
	"sales":            {ProductivityGain: 0.12, RetentionGain: 0.10},
	"customer-service": {ProductivityGain: 0.11, RetentionGain: 0.12},
	"operations":       {ProductivityGain: 0.10, RetentionGain: 0.08},
	"human-resources":  {ProductivityGain: 0.08, RetentionGain: 0.12},
	"finance":          {ProductivityGain: 0.07, RetentionGain: 0.06},
	"it":               {ProductivityGain: 0.09, RetentionGain: 0.07},
	"executive":        {ProductivityGain: 0.15, RetentionGain: 0.10},
}

var defaultBenchmark = Benchmark{ProductivityGain: 0.08, RetentionGain: 0.08}

// ============ Отделы → цели → компетенции → направления ============

var departments = []Department{
	{ID: "sales", Name: "Sales", Goals: []Goal{
		{ID: "grow-revenue", Title: "Grow revenue per rep", Competencies: []string{"consultative-selling", "negotiation", "pipeline-management"}},
		{ID: "shorten-cycle", Title: "Shorten the sales cycle", Competencies: []string{"negotiation", "objection-handling"}},
		{ID: "develop-managers", Title: "Develop sales managers", Competencies: []string{"coaching", "performance-management"}},
	}},
	{ID: "customer-service", Name: "Customer Service", Goals: []Goal{
		{ID: "raise-csat", Title: "Raise customer satisfaction", Competencies: []string{"empathy", "active-listening", "problem-solving"}},
		{ID: "reduce-escalations", Title: "Reduce escalations", Competencies: []string{"de-escalation", "problem-solving"}},
	}},
	{ID: "operations", Name: "Operations", Goals: []Goal{
		{ID: "improve-efficiency", Title: "Improve process efficiency", Competencies: []string{"process-improvement", "time-management"}},
		{ID: "lead-change", Title: "Lead operational change", Competencies: []string{"change-leadership", "stakeholder-communication"}},
	}},
	{ID: "human-resources", Name: "Human Resources", Goals: []Goal{
		{ID: "reduce-turnover", Title: "Reduce employee turnover", Competencies: []string{"coaching", "employee-engagement"}},
		{ID: "build-pipeline", Title: "Build a leadership pipeline", Competencies: []string{"talent-development", "coaching"}},
	}},
	{ID: "finance", Name: "Finance", Goals: []Goal{
		{ID: "business-partnering", Title: "Partner with the business", Competencies: []string{"stakeholder-communication", "data-storytelling"}},
		{ID: "analytics", Title: "Strengthen analytics", Competencies: []string{"data-literacy", "data-storytelling"}},
	}},
	{ID: "it", Name: "Information Technology", Goals: []Goal{
		{ID: "delivery", Title: "Deliver projects on time", Competencies: []string{"project-management", "time-management"}},
		{ID: "tech-leadership", Title: "Grow technical leaders", Competencies: []string{"coaching", "stakeholder-communication"}},
	}},
	{ID: "executive", Name: "Executive Team", Goals: []Goal{
		{ID: "strategy-execution", Title: "Execute strategy", Competencies: []string{"strategic-thinking", "change-leadership"}},
		{ID: "culture", Title: "Shape culture", Competencies: []string{"employee-engagement", "stakeholder-communication"}},
	}},
}

var competencyPillars = map[string]string{
	"consultative-selling":      "Customer Excellence",
	"negotiation":               "Communication",
	"pipeline-management":       "Productivity",
	"objection-handling":        "Communication",
	"coaching":                  "Leadership",
	"performance-management":    "Leadership",
	"empathy":                   "Customer Excellence",
	"active-listening":          "Communication",
	"problem-solving":           "Customer Excellence",
	"de-escalation":             "Customer Excellence",
	"process-improvement":       "Productivity",
	"time-management":           "Productivity",
	"change-leadership":         "Leadership",
	"stakeholder-communication": "Communication",
	"employee-engagement":       "Leadership",
	"talent-development":        "Leadership",
	"data-storytelling":         "Digital Fluency",
	"data-literacy":             "Digital Fluency",
	"project-management":        "Productivity",
	"strategic-thinking":        "Leadership",
}

// ============ Темы обучения (рекомендации) ============

var supportCategories = []string{
	"leadership-management",
	"communication-skills",
	"customer-service",
	"sales-performance",
	"productivity",
	"change-management",
	"digital-skills",
	"team-building",
}

var outcomes = []string{
	"Improve leadership capability",
	"Boost team productivity",
	"Increase customer satisfaction",
	"Grow revenue",
	"Reduce employee turnover",
	"Strengthen collaboration",
	"Build digital capability",
	"Navigate organizational change",
}

var topics = []TrainingTopic{
	{
		ID: "managing-teams-effectively", Title: "Managing Teams Effectively",
		Description: "Practical tools for first-line and mid-level managers to set direction, delegate and give feedback.",
		Duration:    "2 days", Category: "Leadership",
		RelatedSupport:  []string{"leadership-management", "team-building"},
		RelatedOutcomes: []string{"Improve leadership capability", "Reduce employee turnover"},
	},
	{
		ID: "coaching-for-performance", Title: "Coaching for Performance",
		Description: "A structured coaching model managers can use in everyday conversations.",
		Duration:    "1 day", Category: "Leadership",
		RelatedSupport:  []string{"leadership-management"},
		RelatedOutcomes: []string{"Improve leadership capability", "Boost team productivity"},
	},
	{
		ID: "strategic-communication", Title: "Strategic Communication",
		Description: "Clear, persuasive messaging for meetings, presentations and written updates.",
		Duration:    "1 day", Category: "Communication",
		RelatedSupport:  []string{"communication-skills"},
		RelatedOutcomes: []string{"Strengthen collaboration"},
	},
	{
		ID: "customer-experience-excellence", Title: "Customer Experience Excellence",
		Description: "Service recovery, empathy and consistency across every customer touchpoint.",
		Duration:    "1 day", Category: "Customer",
		RelatedSupport:  []string{"customer-service"},
		RelatedOutcomes: []string{"Increase customer satisfaction"},
	},
	{
		ID: "sales-performance-acceleration", Title: "Sales Performance Acceleration",
		Description: "Consultative selling, negotiation and pipeline discipline.",
		Duration:    "2 days", Category: "Sales",
		RelatedSupport:  []string{"sales-performance"},
		RelatedOutcomes: []string{"Grow revenue"},
	},
	{
		ID: "productivity-time-mastery", Title: "Productivity & Time Mastery",
		Description: "Prioritization frameworks and focus habits for busy teams.",
		Duration:    "half day", Category: "Productivity",
		RelatedSupport:  []string{"productivity"},
		RelatedOutcomes: []string{"Boost team productivity"},
	},
	{
		ID: "change-resilience", Title: "Leading Change & Building Resilience",
		Description: "Help people understand, adopt and sustain organizational change.",
		Duration:    "1 day", Category: "Change",
		RelatedSupport:  []string{"change-management", "leadership-management"},
		RelatedOutcomes: []string{"Navigate organizational change"},
	},
	{
		ID: "data-literacy", Title: "Data Literacy for Decision Makers",
		Description: "Read, question and communicate data with confidence.",
		Duration:    "1 day", Category: "Digital",
		RelatedSupport:  []string{"digital-skills"},
		RelatedOutcomes: []string{"Build digital capability"},
	},
	{
		ID: "high-performing-teams", Title: "Building High-Performing Teams",
		Description: "Trust, accountability and collaboration practices for cross-functional teams.",
		Duration:    "1 day", Category: "Teamwork",
		RelatedSupport:  []string{"team-building", "communication-skills"},
		RelatedOutcomes: []string{"Strengthen collaboration", "Reduce employee turnover"},
	},
}
