package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Pagination bounds for ListAnalyses
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// AnalysisSummary is one row of the analysis history.
type AnalysisSummary struct {
	ID                   uuid.UUID `json:"id"`
	CreatedAt            time.Time `json:"created_at"`
	Role                 string    `json:"role"`
	TotalScore           float64   `json:"total_score"`
	InterviewProbability float64   `json:"interview_probability"`
	JobSource            string    `json:"job_source,omitempty"`
}

// AnalysisRecord is a stored analysis with its full report.
type AnalysisRecord struct {
	AnalysisSummary
	Report *types.AnalysisReport `json:"report"`
}

// ListOptions pages through the analysis history, newest first.
type ListOptions struct {
	Limit  int
	Offset int
	// Role filters by exact role name when set.
	Role string
}

// normalize clamps the limit into [1, MaxListLimit] and the offset to >= 0.
func (o ListOptions) normalize() ListOptions {
	if o.Limit <= 0 {
		o.Limit = DefaultListLimit
	}
	if o.Limit > MaxListLimit {
		o.Limit = MaxListLimit
	}
	if o.Offset < 0 {
		o.Offset = 0
	}
	return o
}
