package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaxonomy_Categories(t *testing.T) {
	tax := Taxonomy()

	assert.Equal(t, []string{
		CategoryLanguages,
		CategoryFrontend,
		CategoryAIML,
		CategoryDatabase,
		CategoryDevOps,
		CategoryTools,
		CategoryConcepts,
		CategorySoftSkills,
	}, tax.Categories())
}

func TestTaxonomy_Lookup(t *testing.T) {
	tax := Taxonomy()

	tests := []struct {
		skill    string
		category string
	}{
		{"python", CategoryLanguages},
		{"c++", CategoryLanguages},
		{"spring boot", CategoryFrontend},
		{"pytorch", CategoryAIML},
		{"postgresql", CategoryDatabase},
		{"kubernetes", CategoryDevOps},
		{"jira", CategoryTools},
		{"ci/cd", CategoryConcepts},
		{"leadership", CategorySoftSkills},
	}

	for _, tt := range tests {
		t.Run(tt.skill, func(t *testing.T) {
			assert.True(t, tax.Has(tt.skill))
			category, ok := tax.CategoryOf(tt.skill)
			require.True(t, ok)
			assert.Equal(t, tt.category, category)
		})
	}

	assert.False(t, tax.Has("willingness"))
	assert.False(t, tax.Has("Python"), "lookup is case-sensitive on already-normalized names")

	category, ok := tax.CategoryOf("  PYTHON ")
	assert.True(t, ok)
	assert.Equal(t, CategoryLanguages, category)
}

func TestTaxonomy_Has(t *testing.T) {
	tax := Taxonomy()

	assert.True(t, tax.Has("python"))
	assert.True(t, tax.Has("kubernetes"))
	assert.False(t, tax.Has("made-up-skill"))
}

func TestTaxonomy_SkillsReturnsCopy(t *testing.T) {
	tax := Taxonomy()

	soft := tax.Skills(CategorySoftSkills)
	require.NotEmpty(t, soft)
	soft[0] = "mutated"

	assert.NotContains(t, tax.Skills(CategorySoftSkills), "mutated")
	assert.Nil(t, tax.Skills("Unknown"))
}

func TestNewSkillTaxonomy_FirstCategoryWins(t *testing.T) {
	tax := NewSkillTaxonomy([]SkillCategory{
		{Name: "A", Skills: []string{" Go ", ""}},
		{Name: "B", Skills: []string{"go", "rust"}},
	})

	category, ok := tax.CategoryOf("go")
	require.True(t, ok)
	assert.Equal(t, "A", category)
	assert.True(t, tax.Has("rust"))
	assert.False(t, tax.Has(""))
	assert.Equal(t, []string{"go"}, tax.Skills("A"))
	assert.Equal(t, []string{"A", "B"}, tax.Categories())
}

func TestQuestions_Order(t *testing.T) {
	bank := Questions()
	require.Len(t, bank, 8)

	assert.Equal(t, "React", bank[0].Name)
	assert.Equal(t, BehavioralCategory, bank[len(bank)-1].Name)
	for _, c := range bank {
		assert.GreaterOrEqual(t, len(c.Questions), 1, c.Name)
	}

	bank[0].Questions[0] = "mutated"
	assert.NotEqual(t, "mutated", Questions()[0].Questions[0])
}

func TestMarket(t *testing.T) {
	entry, ok := Market("data scientist")
	require.True(t, ok)
	assert.Equal(t, "Very High", entry.DemandLevel)
	assert.Equal(t, "$110k - $190k", entry.SalaryRange)

	fallback, ok := Market("astronaut")
	assert.False(t, ok)
	assert.Equal(t, DefaultRole, fallback.Role)
	assert.Equal(t, "High", fallback.DemandLevel)
}
