package schemas

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/types"
)

func validReport() types.AnalysisReport {
	return types.AnalysisReport{
		ID:              "0f8fad5b-d9cb-469f-a165-70867728950e",
		CreatedAt:       time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Score:           61,
		SectionScores:   types.SectionScores{Semantic: 80, Skills: 33},
		MissingSkills:   []string{"aws", "react"},
		PresentSkills:   []string{"python"},
		Recommendations: []string{"Good start."},
		RecommendationDetails: []types.Recommendation{
			{Kind: types.RecommendationTier, Text: "Good start."},
		},
		Trajectory:     []types.TrajectoryPoint{{Skill: "aws", ProjectedTotal: 75, Boost: 14}},
		BulletAnalysis: []types.BulletFinding{{Text: "Worked on stuff", QualityScore: 0, Suggestions: []string{"x"}}},
		InterviewQuestions: []types.InterviewQuestion{
			{Category: types.QuestionBehavioral, Skill: "Soft Skills", Question: "Tell me about a conflict.", Difficulty: types.DifficultyNA},
		},
		MarketAnalysis: types.MarketProfile{
			Role: "Software Engineer", SalaryRange: "$90k - $160k", DemandLevel: types.DemandHigh,
			DemandGrowth: "+12%", TopSkills: []string{"Python"}, AvgTenure: "2.1 years",
		},
		SuccessPrediction: types.SuccessPrediction{InterviewProbability: 61, Tips: []string{}},
	}
}

func TestValidateReport(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *types.AnalysisReport)
		field  string
	}{
		{name: "valid"},
		{name: "valid with structure", mutate: func(r *types.AnalysisReport) {
			r.StructureAnalysis = &types.StructureAnalysis{FileSizeKB: 1.5, TextLength: 200}
		}},
		{name: "score above 100", mutate: func(r *types.AnalysisReport) { r.Score = 101 }, field: "score"},
		{name: "probability below 5", mutate: func(r *types.AnalysisReport) {
			r.SuccessPrediction.InterviewProbability = 2
		}, field: "success_prediction.interview_probability"},
		{name: "non-positive boost", mutate: func(r *types.AnalysisReport) {
			r.Trajectory[0].Boost = 0
		}, field: "trajectory.0.boost"},
		{name: "unknown demand level", mutate: func(r *types.AnalysisReport) {
			r.MarketAnalysis.DemandLevel = "Extreme"
		}, field: "market_analysis.demand_level"},
		{name: "perfect bullet", mutate: func(r *types.AnalysisReport) {
			r.BulletAnalysis[0].QualityScore = 100
		}, field: "bullet_analysis.0.score"},
		{name: "empty id", mutate: func(r *types.AnalysisReport) { r.ID = "" }, field: "id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := validReport()
			if tt.mutate != nil {
				tt.mutate(&report)
			}

			err := ValidateReport(report)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			fields := make([]string, 0, len(validationErr.Errors))
			for _, fe := range validationErr.Errors {
				fields = append(fields, fe.Field)
			}
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestValidateJSON(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(`{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["name"],
		"properties": {"name": {"type": "string"}}
	}`), 0o644))

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, ValidateJSON(schemaPath, write("valid.json", `{"name": "x"}`)))
	})

	t.Run("missing field", func(t *testing.T) {
		err := ValidateJSON(schemaPath, write("missing.json", `{"age": 3}`))
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.NotEmpty(t, validationErr.Errors)
	})

	t.Run("missing schema", func(t *testing.T) {
		err := ValidateJSON(filepath.Join(dir, "nope.json"), write("v.json", `{}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("missing document", func(t *testing.T) {
		err := ValidateJSON(schemaPath, filepath.Join(dir, "nope.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestValidateJSONString(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["person"],
		"properties": {
			"person": {"type": "object", "required": ["name"], "properties": {"name": {"type": "string"}}}
		}
	}`

	assert.NoError(t, ValidateJSONString(schemaContent, `{"person": {"name": "a"}}`))

	err := ValidateJSONString(schemaContent, `{"person": {}}`)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "person", validationErr.Errors[0].Field)

	err = ValidateJSONString(`{not json`, `{}`)
	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "name", Message: "is required"},
			{Field: "age", Message: "must be a number"},
		},
	}

	msg := err.Error()
	assert.Contains(t, msg, "validation failed")
	assert.Contains(t, msg, "1. name: is required")
	assert.Contains(t, msg, "2. age: must be a number")
}
