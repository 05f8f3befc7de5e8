package server

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MaxTextRunes caps the length, in characters, of each text field of an analyze request.
// It must match the max= validation tags below.
const MaxTextRunes = 200_000

// AnalyzeRequest is the body of POST /api/analyze.
type AnalyzeRequest struct {
	ResumeText     string `json:"resume_text" validate:"required,max=200000"`
	JobDescription string `json:"job_description" validate:"required_without=JobURL,max=200000"`
	JobURL         string `json:"job_url" validate:"omitempty,http_url"`
	// Save persists the report when a database is configured.
	Save bool `json:"save"`
}

// jobSource describes where the job text came from, for history listings.
func (r AnalyzeRequest) jobSource() string {
	if r.JobURL != "" {
		return r.JobURL
	}
	return "inline"
}

// validateRequest runs struct validation and converts the first failure into an *ErrValidation.
func validateRequest(v *validator.Validate, req any) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		fe := validationErrors[0]
		return &ErrValidation{Field: jsonFieldName(fe.Field()), Message: validationMessage(fe)}
	}
	return &ErrValidation{Field: "(body)", Message: "invalid request"}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "required_without":
		return "is required when job_url is not set"
	case "max":
		return "is too long"
	case "http_url":
		return "must be an http or https URL"
	default:
		return "failed " + fe.Tag() + " validation"
	}
}

// jsonFieldName converts a Go field name such as JobURL to its snake_case JSON name.
func jsonFieldName(field string) string {
	var sb strings.Builder
	runes := []rune(field)
	for i, r := range runes {
		upper := r >= 'A' && r <= 'Z'
		if upper && i > 0 {
			prevLower := runes[i-1] >= 'a' && runes[i-1] <= 'z'
			nextLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
			if prevLower || nextLower {
				sb.WriteByte('_')
			}
		}
		sb.WriteString(strings.ToLower(string(r)))
	}
	return sb.String()
}
