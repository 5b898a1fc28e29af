package types

import (
	"github.com/go-playground/validator/v10"
)

// ScreenRequest represents the inputs to a screening run. The 1000-character
// limit mirrors the bound the upload UI applies to the job description field.
type ScreenRequest struct {
	JobDescription string `json:"jobDescription" validate:"required,max=1000"`
}

// SkillsRequest represents a live skill-hint extraction request.
type SkillsRequest struct {
	Text string `json:"text" validate:"required"`
}

// ScreenResponse represents a successful screening response: the request ID
// assigned to the run plus the ranked candidate list.
type ScreenResponse struct {
	RequestID  string      `json:"request_id"`
	Candidates []Candidate `json:"candidates"`
}

// SkillsResponse represents the detected skill terms for a skills request.
type SkillsResponse struct {
	Skills []string `json:"skills"`
}

// Validate validates the ScreenRequest using the validator.
func (r *ScreenRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the SkillsRequest using the validator.
func (r *SkillsRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
