// Package recommend turns a match score and skill gap into prioritized advice.
package recommend

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-matcher/internal/catalog"
	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Tier thresholds on the total score
const (
	LowScoreThreshold    = 50.0
	StrongScoreThreshold = 75.0
	maxNamedSkills       = 3
)

// Tier messages
const (
	TierLow    = "Match Score Low: Your resume covers less than 50% of the key requirements. Tailor your 'Summary' and 'Experience' sections to mirror the job language."
	TierMiddle = "Good Foundation: You have a solid base. Bridge the gap by highlighting specific projects that use the missing tools."
	TierStrong = "Top Candidate: High match score! Focus your interview prep on behavioral questions and system design."
)

type gapRule struct {
	category string
	kind     types.RecommendationKind
	template string
}

// gapRules are evaluated in priority order. Each template takes the named skills.
var gapRules = []gapRule{
	{catalog.CategoryDevOps, types.RecommendationCategoryGap,
		"Cloud Gap: The role requires cloud/DevOps skills (%s). Consider a mini-project deploying an app to AWS/GCP."},
	{catalog.CategoryAIML, types.RecommendationCategoryGap,
		"AI/ML Gap: Missing key data stack skills (%s). Highlight any data processing or modeling experience."},
	{catalog.CategoryFrontend, types.RecommendationCategoryGap,
		"Frontend Gap: Key frameworks missing (%s). Ensure they are listed in your 'Skills' section if you know them."},
	{catalog.CategoryDatabase, types.RecommendationCategoryGap,
		"Database Gap: Mention your experience with specific DBs (%s) to show backend depth."},
	{catalog.CategorySoftSkills, types.RecommendationSoftSkill,
		"Soft Skills: Don't forget to weave leadership and communication keywords (%s) into your bullet points."},
}

// Generate returns the tier message followed by one message per category, in
// priority order, that has missing skills.
func Generate(missing skills.Set, total float64) []types.Recommendation {
	recs := []types.Recommendation{{Kind: types.RecommendationTier, Text: tierMessage(total)}}
	if missing.IsEmpty() {
		return recs
	}

	taxonomy := catalog.Taxonomy()
	for _, rule := range gapRules {
		gap := missing.Intersect(skills.NewSet(taxonomy.Skills(rule.category)...)).Sorted()
		if len(gap) == 0 {
			continue
		}
		if len(gap) > maxNamedSkills {
			gap = gap[:maxNamedSkills]
		}
		recs = append(recs, types.Recommendation{
			Kind:     rule.kind,
			Category: rule.category,
			Text:     fmt.Sprintf(rule.template, strings.Join(gap, ", ")),
		})
	}
	return recs
}

func tierMessage(total float64) string {
	switch {
	case total < LowScoreThreshold:
		return TierLow
	case total < StrongScoreThreshold:
		return TierMiddle
	default:
		return TierStrong
	}
}
