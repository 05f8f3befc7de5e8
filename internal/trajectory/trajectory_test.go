package trajectory

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonathan/resume-matcher/internal/nlp"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testResume = "resume"
	testJob    = "job"
)

// scoreEmbedder returns a one-element vector whose value is the similarity the
// test wants for the text. firstElement reads it back.
func scoreEmbedder(bySkill map[string]float32, base float32, delay func(text string) time.Duration) nlp.Embedder {
	return nlp.EmbedderFunc(func(ctx context.Context, text string) ([]float32, error) {
		if delay != nil {
			time.Sleep(delay(text))
		}
		if text == testJob {
			return []float32{1}, nil
		}
		for skill, v := range bySkill {
			if strings.HasSuffix(text, " "+skill+".") {
				return []float32{v}, nil
			}
		}
		return []float32{base}, nil
	})
}

func firstElement(a, _ []float32) float64 {
	return float64(a[0])
}

func stubExtract(text string) skills.Set {
	switch text {
	case testJob:
		return skills.NewSet("python", "react", "docker", "aws", "kubernetes")
	case testResume:
		return skills.NewSet("python")
	}
	return skills.NewSet()
}

func baseInputs(embedder nlp.Embedder) Inputs {
	current := scoring.Match(0.5, stubExtract(testResume), stubExtract(testJob))
	return Inputs{
		Embedder:     embedder,
		Similarity:   firstElement,
		Extract:      stubExtract,
		ResumeText:   testResume,
		JobText:      testJob,
		Missing:      current.Missing.Sorted(),
		CurrentTotal: current.Total,
	}
}

func TestSimulate_SortsPositiveBoosts(t *testing.T) {
	embedder := scoreEmbedder(map[string]float32{
		"aws":        0.6,
		"docker":     0.5,
		"kubernetes": 0.2,
		"react":      0.7,
	}, 0.5, nil)

	in := baseInputs(embedder)
	require.Equal(t, 38.0, in.CurrentTotal)

	points, err := Simulate(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, []types.TrajectoryPoint{
		{Skill: "react", ProjectedTotal: 58, Boost: 20},
		{Skill: "aws", ProjectedTotal: 52, Boost: 14},
		{Skill: "docker", ProjectedTotal: 46, Boost: 8},
	}, points)
}

func TestSimulate_TiesKeepCandidateOrder(t *testing.T) {
	embedder := scoreEmbedder(map[string]float32{}, 0.5, nil)

	points, err := Simulate(context.Background(), baseInputs(embedder))
	require.NoError(t, err)

	require.Len(t, points, 4)
	got := make([]string, len(points))
	for i, p := range points {
		got[i] = p.Skill
		assert.Equal(t, 8.0, p.Boost)
	}
	assert.Equal(t, []string{"aws", "docker", "kubernetes", "react"}, got)
}

func TestSimulate_DeterministicUnderCompletionOrder(t *testing.T) {
	scores := map[string]float32{"aws": 0.6, "docker": 0.5, "kubernetes": 0.2, "react": 0.7}
	delays := map[string]time.Duration{"aws": 20, "docker": 5, "kubernetes": 15, "react": 1}
	embedder := scoreEmbedder(scores, 0.5, func(text string) time.Duration {
		for skill, d := range delays {
			if strings.HasSuffix(text, " "+skill+".") {
				return d * time.Millisecond
			}
		}
		return 0
	})
	reference, err := Simulate(context.Background(), baseInputs(scoreEmbedder(scores, 0.5, nil)))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		points, err := Simulate(context.Background(), baseInputs(embedder))
		require.NoError(t, err)
		assert.Equal(t, reference, points)
	}
}

func TestSimulate_LimitsCandidates(t *testing.T) {
	var calls atomic.Int32
	embedder := nlp.EmbedderFunc(func(ctx context.Context, text string) ([]float32, error) {
		calls.Add(1)
		return []float32{0.5}, nil
	})

	in := baseInputs(embedder)
	in.Missing = []string{"a", "b", "c", "d", "e", "f", "g"}

	_, err := Simulate(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, int32(1+MaxCandidates), calls.Load())
}

func TestSimulate_EmbeddingFailureAborts(t *testing.T) {
	boom := errors.New("model unavailable")
	embedder := nlp.EmbedderFunc(func(ctx context.Context, text string) ([]float32, error) {
		if strings.Contains(text, "docker") {
			return nil, boom
		}
		return []float32{0.5}, nil
	})

	points, err := Simulate(context.Background(), baseInputs(embedder))
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, points)
}

func TestSimulate_JobEmbeddingFailure(t *testing.T) {
	boom := errors.New("quota")
	embedder := nlp.EmbedderFunc(func(ctx context.Context, text string) ([]float32, error) {
		return nil, boom
	})

	_, err := Simulate(context.Background(), baseInputs(embedder))
	assert.ErrorIs(t, err, boom)
}

func TestSimulate_ReusesSuppliedJobVector(t *testing.T) {
	var jobEmbeds, resumeEmbeds atomic.Int32
	embedder := nlp.EmbedderFunc(func(ctx context.Context, text string) ([]float32, error) {
		if text == testJob {
			jobEmbeds.Add(1)
			return nil, errors.New("job text must not be embedded")
		}
		resumeEmbeds.Add(1)
		return []float32{0.9}, nil
	})

	in := baseInputs(embedder)
	in.JobVector = []float32{7}
	in.Similarity = func(a, b []float32) float64 {
		assert.Equal(t, []float32{7}, b)
		return float64(a[0])
	}

	points, err := Simulate(context.Background(), in)
	require.NoError(t, err)
	assert.NotEmpty(t, points)
	assert.Equal(t, int32(0), jobEmbeds.Load())
	assert.Equal(t, int32(len(in.Missing)), resumeEmbeds.Load())
}

func TestSimulate_NoMissingSkills(t *testing.T) {
	in := baseInputs(nil)
	in.Embedder = nlp.NewHashEmbedder()
	in.Missing = nil

	points, err := Simulate(context.Background(), in)
	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestSimulate_RequiresEmbedder(t *testing.T) {
	_, err := Simulate(context.Background(), Inputs{Missing: []string{"go"}})
	assert.Error(t, err)
}

func TestAugmentText(t *testing.T) {
	assert.Equal(t, "Go dev I have advanced experience with react.", AugmentText("Go dev", "react"))
}
