// Package types provides type definitions for the structured data produced by a resume analysis.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/jonathan/resume-matcher/internal/skills"

// MatchScore is the score breakdown of a resume against a job description.
// All numeric components are in [0,100].
type MatchScore struct {
	Total    float64    `json:"total"`
	Semantic float64    `json:"semantic"`
	Skill    float64    `json:"skills"`
	Missing  skills.Set `json:"missing_skills"`
	Present  skills.Set `json:"present_skills"`
}

// SectionScores is the per-component view of a MatchScore used in reports.
type SectionScores struct {
	Semantic float64 `json:"semantic"`
	Skills   float64 `json:"skills"`
}

// TrajectoryPoint is the projected score after hypothetically acquiring one missing skill.
type TrajectoryPoint struct {
	Skill          string  `json:"skill"`
	ProjectedTotal float64 `json:"new_score"`
	Boost          float64 `json:"boost"`
}

// BulletFinding is the quality critique of one resume bullet.
type BulletFinding struct {
	Text         string   `json:"text"`
	QualityScore int      `json:"score"`
	Suggestions  []string `json:"suggestions"`
}
