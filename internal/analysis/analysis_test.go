package analysis

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jonathan/resume-matcher/internal/nlp"
	"github.com/jonathan/resume-matcher/internal/predict"
	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	testResume = "Built data pipelines in Python and Docker."
	testJob    = "We need Python, React and AWS experience."
)

func constantSimilarity(v float64) nlp.SimilarityFunc {
	return func(_, _ []float32) float64 { return v }
}

func newTestAnalyzer(log *zap.Logger) *Analyzer {
	return &Analyzer{
		Embedder:   nlp.NewHashEmbedder(),
		Similarity: constantSimilarity(0.8),
		Logger:     log,
		now:        func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) },
		newID:      func() string { return "analysis-1" },
	}
}

func TestAnalyzer_Run(t *testing.T) {
	report, err := newTestAnalyzer(nil).Run(context.Background(), testResume, testJob)
	require.NoError(t, err)

	assert.Equal(t, "analysis-1", report.ID)
	assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), report.CreatedAt)

	assert.Equal(t, []string{"docker", "python"}, report.ResumeSkills)
	assert.Equal(t, []string{"aws", "python", "react"}, report.JobSkills)
	assert.Equal(t, 61.0, report.Score)
	assert.Equal(t, types.SectionScores{Semantic: 80, Skills: 33}, report.SectionScores)
	assert.Equal(t, []string{"aws", "react"}, report.MissingSkills)
	assert.Equal(t, []string{"python"}, report.PresentSkills)

	assert.Equal(t, []types.TrajectoryPoint{
		{Skill: "aws", ProjectedTotal: 75, Boost: 14},
		{Skill: "react", ProjectedTotal: 75, Boost: 14},
	}, report.Trajectory)

	require.Len(t, report.RecommendationDetails, 3)
	assert.Equal(t, types.RecommendationTier, report.RecommendationDetails[0].Kind)
	assert.Len(t, report.Recommendations, 3)

	categories := make([]types.QuestionCategory, 0, len(report.InterviewQuestions))
	for _, q := range report.InterviewQuestions {
		categories = append(categories, q.Category)
	}
	assert.Equal(t, []types.QuestionCategory{
		types.QuestionWeakness, types.QuestionWeakness, types.QuestionStrength, types.QuestionBehavioral,
	}, categories)

	assert.Equal(t, "Software Engineer", report.MarketAnalysis.Role)
	assert.Equal(t, 61.0, report.SuccessPrediction.InterviewProbability)
	assert.Equal(t, []string{
		"Learn critical skills like aws and react.",
		predict.TipGoodMarket,
	}, report.SuccessPrediction.Tips)

	assert.NotNil(t, report.BulletAnalysis)
	assert.Nil(t, report.StructureAnalysis)
}

func TestAnalyzer_Run_EmbedsJobOnce(t *testing.T) {
	var mu sync.Mutex
	calls := map[string]int{}
	hash := nlp.NewHashEmbedder()
	a := newTestAnalyzer(nil)
	a.Embedder = nlp.EmbedderFunc(func(ctx context.Context, text string) ([]float32, error) {
		mu.Lock()
		calls[text]++
		mu.Unlock()
		return hash.Embed(ctx, text)
	})

	report, err := a.Run(context.Background(), testResume, testJob)
	require.NoError(t, err)
	require.Len(t, report.MissingSkills, 2)

	assert.Equal(t, 1, calls[testJob])
	assert.Equal(t, 1, calls[testResume])
	total := 0
	for _, n := range calls {
		total += n
	}
	assert.Equal(t, 2+len(report.MissingSkills), total)
}

func TestAnalyzer_Run_IsDeterministic(t *testing.T) {
	a := &Analyzer{Embedder: nlp.NewHashEmbedder()}

	first, err := a.Run(context.Background(), testResume, testJob)
	require.NoError(t, err)
	second, err := a.Run(context.Background(), testResume, testJob)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, first.Score, second.Score)
	assert.Equal(t, first.Trajectory, second.Trajectory)
	assert.GreaterOrEqual(t, first.Score, 0.0)
	assert.LessOrEqual(t, first.Score, 100.0)
}

func TestAnalyzer_Run_ReportsProgress(t *testing.T) {
	a := newTestAnalyzer(nil)
	var steps []string
	a.OnProgress = func(event ProgressEvent) {
		steps = append(steps, event.Step)
	}

	_, err := a.Run(context.Background(), testResume, testJob)
	require.NoError(t, err)
	assert.Equal(t, []string{
		StepSkills, StepScore, StepTrajectory, StepBullets,
		StepRecommendations, StepInterview, StepMarket, StepPrediction,
	}, steps)
}

func TestAnalyzer_Run_Logs(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	_, err := newTestAnalyzer(zap.New(core)).Run(context.Background(), testResume, testJob)
	require.NoError(t, err)

	entries := logs.FilterMessage("analysis complete").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "analysis-1", fields["analysis_id"])
	assert.Equal(t, 61.0, fields["score"])
	assert.Equal(t, "Software Engineer", fields["role"])
}

func TestAnalyzer_Run_Errors(t *testing.T) {
	t.Run("missing embedder", func(t *testing.T) {
		_, err := (&Analyzer{}).Run(context.Background(), testResume, testJob)
		require.Error(t, err)
	})

	t.Run("embedding failure", func(t *testing.T) {
		boom := errors.New("quota exceeded")
		a := &Analyzer{Embedder: nlp.EmbedderFunc(func(context.Context, string) ([]float32, error) {
			return nil, boom
		})}
		_, err := a.Run(context.Background(), testResume, testJob)
		require.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "failed to embed resume")
	})

	t.Run("tagger failure", func(t *testing.T) {
		boom := errors.New("tagger down")
		a := newTestAnalyzer(nil)
		a.Tagger = nlp.TaggerFunc(func(context.Context, string) ([]nlp.Token, error) {
			return nil, boom
		})
		_, err := a.Run(context.Background(), "Summary\n- Led the migration of billing services to Go\n", testJob)
		require.ErrorIs(t, err, boom)
	})
}

func TestAnalyzer_Run_EmptyInputs(t *testing.T) {
	report, err := newTestAnalyzer(nil).Run(context.Background(), "", "")
	require.NoError(t, err)

	assert.Empty(t, report.MissingSkills)
	assert.Empty(t, report.Trajectory)
	assert.Empty(t, report.BulletAnalysis)
	assert.Equal(t, 48.0, report.Score)
	require.Len(t, report.InterviewQuestions, 1)
	assert.Equal(t, types.QuestionBehavioral, report.InterviewQuestions[0].Category)
}
