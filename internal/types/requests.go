package types

import (
	"github.com/go-playground/validator/v10"
)

// MinResumeLength is the minimum usable resume text length. Shorter inputs
// are treated as likely file-extraction failures and rejected at the API
// boundary, not inside the core.
const MinResumeLength = 100

// MaxJobTextLength caps job posting text supplied by the page-content
// extractor.
const MaxJobTextLength = 10000

// ExtractRequest is the request body for POST /extract.
type ExtractRequest struct {
	Text           string   `json:"text" validate:"required"`
	CustomKeywords []string `json:"custom_keywords,omitempty"`
	UseAI          bool     `json:"use_ai,omitempty"`
}

// AnalyzeRequest is the request body for POST /analyze and POST /score.
// Exactly one of JobText or JobURL must be provided.
type AnalyzeRequest struct {
	ResumeText     string   `json:"resume_text" validate:"required,min=100"`
	JobText        string   `json:"job_text,omitempty" validate:"omitempty,max=10000"`
	JobURL         string   `json:"job_url,omitempty" validate:"omitempty,url"`
	CustomKeywords []string `json:"custom_keywords,omitempty"`
	UseAI          bool     `json:"use_ai,omitempty"`
	// UserID, when set together with Save, stores the result for later
	// retrieval.
	UserID string `json:"user_id,omitempty" validate:"omitempty,uuid"`
	Save   bool   `json:"save,omitempty"`
}

// PlanRequest is the request body for POST /score/plan.
type PlanRequest struct {
	CurrentScore    int            `json:"current_score" validate:"min=0,max=100"`
	Breakdown       ScoreBreakdown `json:"breakdown"`
	MissingKeywords []Keyword      `json:"missing_keywords,omitempty"`
}

// CompareRequest is the request body for POST /compare.
type CompareRequest struct {
	OldText        string   `json:"old_text" validate:"required"`
	NewText        string   `json:"new_text" validate:"required"`
	CustomKeywords []string `json:"custom_keywords,omitempty"`
}

// AddKeywordRequest is the request body for POST /users/{id}/keywords.
type AddKeywordRequest struct {
	Keyword string `json:"keyword" validate:"required,min=1,max=100"`
}

// Validate validates the ExtractRequest using the validator.
func (r *ExtractRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the PlanRequest using the validator.
func (r *PlanRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CompareRequest using the validator.
func (r *CompareRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the AddKeywordRequest using the validator.
func (r *AddKeywordRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
