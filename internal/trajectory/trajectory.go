// Package trajectory simulates how the match score would move if the candidate
// acquired individual missing skills.
package trajectory

import (
	"context"
	"fmt"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/nlp"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
)

// MaxCandidates is the number of missing skills simulated per analysis.
const MaxCandidates = 5

// Inputs holds everything one simulation needs.
type Inputs struct {
	Embedder   nlp.Embedder
	Similarity nlp.SimilarityFunc      // nil uses nlp.Cosine
	Extract    func(string) skills.Set // nil uses skills.Extract

	ResumeText string
	JobText    string
	// JobVector is the job embedding when the caller already has one; empty embeds JobText.
	JobVector []float32
	// Missing is expected in canonical (sorted) order; only the first MaxCandidates are used.
	Missing      []string
	CurrentTotal float64
}

// AugmentText appends the hypothetical experience sentence for skill to the resume.
func AugmentText(resume, skill string) string {
	return resume + " I have advanced experience with " + skill + "."
}

// Simulate returns the projected score for each simulated skill whose boost is positive,
// ordered by boost descending. Ties keep candidate order.
//
// The augmented resumes are embedded concurrently. Any embedding failure aborts the
// whole simulation.
func Simulate(ctx context.Context, in Inputs) ([]types.TrajectoryPoint, error) {
	if in.Embedder == nil {
		return nil, fmt.Errorf("trajectory: embedder is required")
	}
	similarity := in.Similarity
	if similarity == nil {
		similarity = nlp.Cosine
	}
	extract := in.Extract
	if extract == nil {
		extract = skills.Extract
	}

	candidates := in.Missing
	if len(candidates) > MaxCandidates {
		candidates = candidates[:MaxCandidates]
	}
	if len(candidates) == 0 {
		return []types.TrajectoryPoint{}, nil
	}

	jobVec := in.JobVector
	if len(jobVec) == 0 {
		var err error
		jobVec, err = in.Embedder.Embed(ctx, in.JobText)
		if err != nil {
			return nil, fmt.Errorf("failed to embed job description: %w", err)
		}
	}
	jobSkills := extract(in.JobText)
	resumeSkills := extract(in.ResumeText)
	current := math.Round(in.CurrentTotal)

	projected := make([]float64, len(candidates))
	g, gCtx := errgroup.WithContext(ctx)
	for i, skill := range candidates {
		g.Go(func() error {
			vec, err := in.Embedder.Embed(gCtx, AugmentText(in.ResumeText, skill))
			if err != nil {
				return fmt.Errorf("failed to embed resume augmented with %q: %w", skill, err)
			}
			augmented := resumeSkills.Union(skills.NewSet(skill))
			projected[i] = scoring.Match(similarity(vec, jobVec), augmented, jobSkills).Total
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	points := make([]types.TrajectoryPoint, 0, len(candidates))
	for i, skill := range candidates {
		boost := projected[i] - current
		if boost <= 0 {
			continue
		}
		points = append(points, types.TrajectoryPoint{
			Skill:          skill,
			ProjectedTotal: projected[i],
			Boost:          boost,
		})
	}
	sort.SliceStable(points, func(a, b int) bool {
		return points[a].Boost > points[b].Boost
	})
	return points, nil
}
