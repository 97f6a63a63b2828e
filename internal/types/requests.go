package types

import (
	"github.com/go-playground/validator/v10"
)

// ScoreRequest represents an ad-hoc scoring request posted to the API.
type ScoreRequest struct {
	Document ResumeDocument `json:"document" validate:"required"`
	Keywords []string       `json:"keywords,omitempty"`
	Policy   string         `json:"readability_policy,omitempty" validate:"omitempty,oneof=wordcount flesch"`
}

// ScoreResponse is the result of an ad-hoc scoring request.
type ScoreResponse struct {
	Breakdown Breakdown `json:"breakdown"`
	Overall   float64   `json:"overall"`
	Keywords  []string  `json:"keywords"`
	Warnings  []string  `json:"warnings,omitempty"`
}

// Validate validates the ScoreRequest using the validator.
func (r *ScoreRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
