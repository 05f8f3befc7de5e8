// Package scoring computes the match score of a resume against a job description.
package scoring

import (
	"math"

	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Weights of the two score components
const (
	SemanticWeight = 0.6
	SkillWeight    = 0.4
)

// Match combines an embedding similarity with the skill overlap of resume and job.
//
// The skill component is the share of job skills the resume covers. With no job
// skills it is 100 when the resume has any skill and 0 otherwise. Components and
// total are rounded half away from zero; the total is computed from the unrounded
// components.
func Match(similarity float64, resume, job skills.Set) types.MatchScore {
	semantic := semanticComponent(similarity)
	skill := skillComponent(resume, job)

	return types.MatchScore{
		Total:    math.Round(SemanticWeight*semantic + SkillWeight*skill),
		Semantic: math.Round(semantic),
		Skill:    math.Round(skill),
		Missing:  job.Difference(resume),
		Present:  resume.Intersect(job),
	}
}

func semanticComponent(similarity float64) float64 {
	if math.IsNaN(similarity) {
		return 0
	}
	return 100 * clamp(similarity, 0, 1)
}

func skillComponent(resume, job skills.Set) float64 {
	if job.IsEmpty() {
		if resume.IsEmpty() {
			return 0
		}
		return 100
	}
	return 100 * float64(resume.Intersect(job).Len()) / float64(job.Len())
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
