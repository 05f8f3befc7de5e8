// Package analysis runs the full resume-versus-job analysis and assembles the report.
package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/bullets"
	"github.com/jonathan/resume-matcher/internal/interview"
	"github.com/jonathan/resume-matcher/internal/logger"
	"github.com/jonathan/resume-matcher/internal/market"
	"github.com/jonathan/resume-matcher/internal/nlp"
	"github.com/jonathan/resume-matcher/internal/predict"
	"github.com/jonathan/resume-matcher/internal/recommend"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/trajectory"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Step names reported through ProgressCallback, in execution order.
const (
	StepSkills          = "skills"
	StepScore           = "score"
	StepTrajectory      = "trajectory"
	StepBullets         = "bullets"
	StepRecommendations = "recommendations"
	StepInterview       = "interview"
	StepMarket          = "market"
	StepPrediction      = "prediction"
)

// ProgressEvent reports that one analysis step finished.
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called after each step completes.
type ProgressCallback func(event ProgressEvent)

// Analyzer runs analyses with a fixed set of NLP capabilities.
type Analyzer struct {
	Embedder nlp.Embedder
	// Similarity defaults to nlp.Cosine.
	Similarity nlp.SimilarityFunc
	// Tagger is optional; without it bullets are checked against the verb list only.
	Tagger nlp.Tagger
	// Extract defaults to skills.Extract.
	Extract    func(string) skills.Set
	Logger     *zap.Logger
	OnProgress ProgressCallback

	// now and newID are replaced in tests.
	now   func() time.Time
	newID func() string
}

// Run analyzes resumeText against jobText. Any NLP failure fails the whole analysis.
func (a *Analyzer) Run(ctx context.Context, resumeText, jobText string) (*types.AnalysisReport, error) {
	if a.Embedder == nil {
		return nil, fmt.Errorf("analysis: embedder is required")
	}
	similarity := a.Similarity
	if similarity == nil {
		similarity = nlp.Cosine
	}
	extract := a.Extract
	if extract == nil {
		extract = skills.Extract
	}

	report := &types.AnalysisReport{ID: a.id(), CreatedAt: a.timestamp()}
	log := logger.WithFields(a.Logger, zap.String(logger.FieldAnalysisID, report.ID))
	start := time.Now()

	resumeSkills := extract(resumeText)
	jobSkills := extract(jobText)
	report.ResumeSkills = resumeSkills.Sorted()
	report.JobSkills = jobSkills.Sorted()
	log.Debug("extracted skills",
		zap.Int("resume_skills", resumeSkills.Len()),
		zap.Int("job_skills", jobSkills.Len()),
	)
	a.emit(StepSkills, fmt.Sprintf("Found %d resume skills and %d job skills", resumeSkills.Len(), jobSkills.Len()), nil)

	resumeVec, err := a.Embedder.Embed(ctx, resumeText)
	if err != nil {
		return nil, fmt.Errorf("failed to embed resume: %w", err)
	}
	jobVec, err := a.Embedder.Embed(ctx, jobText)
	if err != nil {
		return nil, fmt.Errorf("failed to embed job description: %w", err)
	}

	match := scoring.Match(similarity(resumeVec, jobVec), resumeSkills, jobSkills)
	report.ApplyMatch(match)
	missing := report.MissingSkills
	a.emit(StepScore, fmt.Sprintf("Match score %.0f", match.Total), report.SectionScores)

	report.Trajectory, err = trajectory.Simulate(ctx, trajectory.Inputs{
		Embedder:     a.Embedder,
		Similarity:   similarity,
		Extract:      extract,
		ResumeText:   resumeText,
		JobText:      jobText,
		JobVector:    jobVec,
		Missing:      missing,
		CurrentTotal: match.Total,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to simulate trajectory: %w", err)
	}
	a.emit(StepTrajectory, fmt.Sprintf("Simulated %d skill boosts", len(report.Trajectory)), report.Trajectory)

	report.BulletAnalysis, err = bullets.Analyze(ctx, resumeText, a.Tagger)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze bullets: %w", err)
	}
	a.emit(StepBullets, fmt.Sprintf("Flagged %d bullets", len(report.BulletAnalysis)), nil)

	report.RecommendationDetails = recommend.Generate(match.Missing, match.Total)
	report.Recommendations = types.RecommendationTexts(report.RecommendationDetails)
	a.emit(StepRecommendations, fmt.Sprintf("Generated %d recommendations", len(report.Recommendations)), nil)

	report.InterviewQuestions = interview.Select(missing, report.JobSkills)
	a.emit(StepInterview, fmt.Sprintf("Selected %d interview questions", len(report.InterviewQuestions)), nil)

	report.MarketAnalysis = market.Estimate(resumeText, jobText)
	a.emit(StepMarket, "Detected role "+report.MarketAnalysis.Role, report.MarketAnalysis)

	report.SuccessPrediction = predict.Predict(match.Total, missing, report.MarketAnalysis)
	a.emit(StepPrediction, fmt.Sprintf("Interview probability %.1f%%", report.SuccessPrediction.InterviewProbability), nil)

	log.Info("analysis complete",
		zap.Float64("score", report.Score),
		zap.Int("missing_skills", len(missing)),
		zap.String(logger.FieldRole, report.MarketAnalysis.Role),
		zap.Duration("duration", time.Since(start)),
	)
	return report, nil
}

func (a *Analyzer) emit(step, message string, content any) {
	if a.OnProgress != nil {
		a.OnProgress(ProgressEvent{Step: step, Message: message, Content: content})
	}
}

func (a *Analyzer) id() string {
	if a.newID != nil {
		return a.newID()
	}
	return uuid.NewString()
}

func (a *Analyzer) timestamp() time.Time {
	if a.now != nil {
		return a.now()
	}
	return time.Now().UTC()
}
