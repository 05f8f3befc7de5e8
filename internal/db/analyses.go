package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-matcher/internal/types"
)

// SaveAnalysis stores a report. A report without a valid UUID is assigned one.
func (db *DB) SaveAnalysis(ctx context.Context, report *types.AnalysisReport, jobSource string) (uuid.UUID, error) {
	if report == nil {
		return uuid.Nil, fmt.Errorf("report is required")
	}

	id, err := uuid.Parse(report.ID)
	if err != nil {
		id = uuid.New()
		report.ID = id.String()
	}

	content, err := json.Marshal(report)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal report: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO analyses (id, created_at, role, total_score, interview_probability, job_source, report)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO UPDATE SET report = $7`,
		id, report.CreatedAt, report.MarketAnalysis.Role, report.Score,
		report.SuccessPrediction.InterviewProbability, jobSource, content,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return id, nil
}

// GetAnalysis retrieves a stored analysis by ID, or ErrNotFound.
func (db *DB) GetAnalysis(ctx context.Context, id uuid.UUID) (*AnalysisRecord, error) {
	var rec AnalysisRecord
	var content []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, created_at, role, total_score, interview_probability, job_source, report
		 FROM analyses WHERE id = $1`,
		id,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.Role, &rec.TotalScore, &rec.InterviewProbability, &rec.JobSource, &content)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	rec.Report = &types.AnalysisReport{}
	if err := json.Unmarshal(content, rec.Report); err != nil {
		return nil, fmt.Errorf("failed to decode stored report: %w", err)
	}
	return &rec, nil
}

// ListAnalyses returns analysis summaries, newest first.
func (db *DB) ListAnalyses(ctx context.Context, opts ListOptions) ([]AnalysisSummary, error) {
	opts = opts.normalize()

	rows, err := db.pool.Query(ctx,
		`SELECT id, created_at, role, total_score, interview_probability, job_source
		 FROM analyses
		 WHERE ($1::text = '' OR role = $1)
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`,
		opts.Role, opts.Limit, opts.Offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}

	summaries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (AnalysisSummary, error) {
		var s AnalysisSummary
		err := row.Scan(&s.ID, &s.CreatedAt, &s.Role, &s.TotalScore, &s.InterviewProbability, &s.JobSource)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan analyses: %w", err)
	}
	return summaries, nil
}

// DeleteAnalysis removes a stored analysis, or returns ErrNotFound.
func (db *DB) DeleteAnalysis(ctx context.Context, id uuid.UUID) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM analyses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
