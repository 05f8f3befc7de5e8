package recommend

import (
	"testing"

	"github.com/jonathan/resume-matcher/internal/catalog"
	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Tiers(t *testing.T) {
	tests := []struct {
		total float64
		want  string
	}{
		{0, TierLow},
		{49, TierLow},
		{50, TierMiddle},
		{74, TierMiddle},
		{75, TierStrong},
		{100, TierStrong},
	}
	for _, tt := range tests {
		recs := Generate(skills.NewSet(), tt.total)
		require.Len(t, recs, 1)
		assert.Equal(t, types.RecommendationTier, recs[0].Kind)
		assert.Equal(t, tt.want, recs[0].Text, "total %v", tt.total)
	}
}

func TestGenerate_CategoryGapsInPriorityOrder(t *testing.T) {
	missing := skills.NewSet("postgresql", "react", "leadership", "terraform", "aws", "docker", "kubernetes", "pytorch", "java")

	recs := Generate(missing, 60)

	require.Len(t, recs, 6)
	assert.Equal(t, TierMiddle, recs[0].Text)

	gotCategories := make([]string, 0, len(recs)-1)
	for _, r := range recs[1:] {
		gotCategories = append(gotCategories, r.Category)
	}
	assert.Equal(t, []string{
		catalog.CategoryDevOps,
		catalog.CategoryAIML,
		catalog.CategoryFrontend,
		catalog.CategoryDatabase,
		catalog.CategorySoftSkills,
	}, gotCategories)

	assert.Equal(t,
		"Cloud Gap: The role requires cloud/DevOps skills (aws, docker, kubernetes). Consider a mini-project deploying an app to AWS/GCP.",
		recs[1].Text)
	assert.Equal(t, types.RecommendationCategoryGap, recs[1].Kind)
	assert.Contains(t, recs[2].Text, "(pytorch)")
	assert.Contains(t, recs[3].Text, "(react)")
	assert.Contains(t, recs[4].Text, "(postgresql)")
	assert.Equal(t, types.RecommendationSoftSkill, recs[5].Kind)
	assert.Contains(t, recs[5].Text, "(leadership)")
}

func TestGenerate_IgnoresUncategorizedGaps(t *testing.T) {
	recs := Generate(skills.NewSet("java", "git", "agile"), 80)
	require.Len(t, recs, 1)
	assert.Equal(t, TierStrong, recs[0].Text)
}

func TestGenerate_TextsFlatten(t *testing.T) {
	recs := Generate(skills.NewSet("mysql"), 20)
	assert.Equal(t, []string{
		TierLow,
		"Database Gap: Mention your experience with specific DBs (mysql) to show backend depth.",
	}, types.RecommendationTexts(recs))
}
