package dto

import (
	"encoding/json"
	"time"

	"leadflow/internal/app/catalog"
	"leadflow/internal/app/pricing"
	"leadflow/internal/app/recommend"
	"leadflow/internal/app/wizard"
)

// ============ Общие структуры ============

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ============ Заявки (Submissions) ============

type SubmissionCreatedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
}

type SubmissionResponse struct {
	ID          string          `json:"id"`
	CompanyName string          `json:"companyName"`
	ContactName string          `json:"contactName"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	SubmittedAt time.Time       `json:"submittedAt"`
	Data        json.RawMessage `json:"data" swaggertype:"object"`
	Pricing     json.RawMessage `json:"pricing" swaggertype:"object"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type SubmissionListResponse struct {
	Success     bool                 `json:"success"`
	Count       int                  `json:"count"`
	Submissions []SubmissionResponse `json:"submissions"`
}

// ============ Рекомендации ============

type RecommendationRequest struct {
	TrainingSupport  []string `json:"trainingSupport"`
	Outcomes         []string `json:"outcomes"`
	TrainingAudience string   `json:"trainingAudience"`
	SpecificNotes    string   `json:"specificNotes"`
}

type RecommendationResponse struct {
	Success bool `json:"success"`
	recommend.Recommendation
}

// ============ Расчет стоимости ============

type PricingResponse struct {
	Success bool           `json:"success"`
	Pricing pricing.Result `json:"pricing"`
}

// ============ Мастера ============

type WizardResponse struct {
	Success bool              `json:"success"`
	Kind    wizard.Kind       `json:"kind"`
	Steps   []wizard.StepInfo `json:"steps"`
}

type WizardStepRequest struct {
	Step  *int            `json:"step" binding:"required,gte=0"`
	State json.RawMessage `json:"state" swaggertype:"object"`
}

type WizardStepResponse struct {
	Success bool `json:"success"`
	wizard.Result
}

// ============ Каталог ============

type CatalogResponse struct {
	Success         bool                    `json:"success"`
	Departments     []DepartmentResponse    `json:"departments"`
	Programs        []catalog.Program       `json:"programs"`
	SoftSkills      []catalog.SoftSkill     `json:"softSkills"`
	AddOns          []catalog.AddOn         `json:"addOns"`
	ConsultingTypes []string                `json:"consultingTypes"`
	UrgencyLevels   []catalog.UrgencyLevel  `json:"urgencyLevels"`
	SupportOptions  []string                `json:"supportOptions"`
	Outcomes        []string                `json:"outcomes"`
	Topics          []catalog.TrainingTopic `json:"topics"`
}

type DepartmentResponse struct {
	catalog.Department
	Benchmark catalog.Benchmark `json:"benchmark"`
	Pillars   []string          `json:"pillars"`
}

// ============ Черновики ============

type DraftResponse struct {
	Success bool            `json:"success"`
	Kind    wizard.Kind     `json:"kind"`
	Draft   json.RawMessage `json:"draft" swaggertype:"object"`
}

// ============ Администратор ============

type AdminTokenRequest struct {
	Secret string `json:"secret" binding:"required"`
}

type AdminTokenResponse struct {
	Success   bool      `json:"success"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
