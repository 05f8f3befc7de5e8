package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/analysis"
	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/logger"
	"github.com/jonathan/resume-matcher/internal/server/middleware"
	"github.com/jonathan/resume-matcher/internal/types"
)

// maxBodyBytes bounds the JSON body of analyze requests: two text fields of
// MaxTextRunes characters at up to utf8.UTFMax bytes each, plus envelope.
const maxBodyBytes = 2*utf8.UTFMax*MaxTextRunes + 4096

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "healthy", "service": ServiceName})
}

// decodeAnalyzeRequest reads and validates an analyze request body.
func (s *Server) decodeAnalyzeRequest(w http.ResponseWriter, r *http.Request) (AnalyzeRequest, error) {
	var req AnalyzeRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return req, fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, tooLarge.Limit)
		}
		return req, &ErrValidation{Field: "(body)", Message: "invalid JSON: " + err.Error()}
	}
	if err := validateRequest(s.validator, req); err != nil {
		return req, err
	}
	return req, nil
}

// runAnalysis resolves the job text and runs one analysis.
func (s *Server) runAnalysis(ctx context.Context, req AnalyzeRequest, onProgress analysis.ProgressCallback) (*types.AnalysisReport, error) {
	ctx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	resume, err := ingestion.IngestText(req.ResumeText)
	if err != nil {
		return nil, &ErrValidation{Field: "resume_text", Message: err.Error()}
	}

	jobText := req.JobDescription
	if jobText == "" {
		doc, err := ingestion.IngestFromURL(ctx, req.JobURL, s.fetcher)
		if err != nil {
			return nil, err
		}
		jobText = doc.Text
	} else {
		doc, err := ingestion.IngestText(jobText)
		if err != nil {
			return nil, &ErrValidation{Field: "job_description", Message: err.Error()}
		}
		jobText = doc.Text
	}

	a := s.analyzer
	a.Logger = logger.WithFields(s.log, logger.StringFields(
		logger.StringField{Key: "request_id", Value: middleware.GetRequestID(ctx)},
		logger.StringField{Key: "job_url", Value: req.JobURL},
	)...)
	a.OnProgress = onProgress
	report, err := a.Run(ctx, resume.Text, jobText)
	if err != nil {
		return nil, err
	}
	structure := ingestion.AnalyzeStructure(resume.Text, resume.SizeBytes)
	report.StructureAnalysis = &structure

	if req.Save && s.store != nil {
		if _, err := s.store.SaveAnalysis(ctx, report, req.jobSource()); err != nil {
			// A failed save does not fail the analysis.
			s.log.Error("failed to save analysis", zap.String(logger.FieldAnalysisID, report.ID), zap.Error(err))
		}
	}
	return report, nil
}

// handleAnalyze runs an analysis and returns the report.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeAnalyzeRequest(w, r)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	report, err := s.runAnalysis(r.Context(), req, nil)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, report)
}

// handleAnalyzeStream runs an analysis and streams step events, then the report.
func (s *Server) handleAnalyzeStream(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeAnalyzeRequest(w, r)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	report, err := s.runAnalysis(r.Context(), req, func(event analysis.ProgressEvent) {
		if err := sse.WriteEvent("step", event); err != nil {
			s.log.Warn("failed to write SSE event", zap.Error(err))
		}
	})
	if err != nil {
		s.log.Warn("streamed analysis failed", zap.Error(err))
		if HTTPStatus(err) >= http.StatusInternalServerError {
			sse.WriteError(http.StatusText(HTTPStatus(err)))
			return
		}
		sse.WriteError(err.Error())
		return
	}
	sse.WriteComplete(report)
}

// handleListAnalyses lists stored analyses, newest first.
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.handleError(w, r, ErrStorageDisabled)
		return
	}

	opts := db.ListOptions{Role: r.URL.Query().Get("role")}
	var err error
	if opts.Limit, err = queryInt(r, "limit"); err != nil {
		s.handleError(w, r, err)
		return
	}
	if opts.Offset, err = queryInt(r, "offset"); err != nil {
		s.handleError(w, r, err)
		return
	}

	summaries, err := s.store.ListAnalyses(r.Context(), opts)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	if summaries == nil {
		summaries = []db.AnalysisSummary{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"analyses": summaries, "count": len(summaries)})
}

// handleGetAnalysis returns one stored analysis.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	id, ok := s.analysisID(w, r)
	if !ok {
		return
	}

	rec, err := s.store.GetAnalysis(r.Context(), id)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, rec)
}

// handleDeleteAnalysis removes one stored analysis.
func (s *Server) handleDeleteAnalysis(w http.ResponseWriter, r *http.Request) {
	id, ok := s.analysisID(w, r)
	if !ok {
		return
	}

	if err := s.store.DeleteAnalysis(r.Context(), id); err != nil {
		s.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// analysisID parses the {id} path value, writing an error response on failure.
func (s *Server) analysisID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	if s.store == nil {
		s.handleError(w, r, ErrStorageDisabled)
		return uuid.Nil, false
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.handleError(w, r, &ErrValidation{Field: "id", Message: "must be a UUID"})
		return uuid.Nil, false
	}
	return id, true
}

// queryInt parses an optional non-negative integer query parameter.
func queryInt(r *http.Request, key string) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, &ErrValidation{Field: key, Message: "must be a non-negative integer"}
	}
	return n, nil
}

var _ Store = (*db.DB)(nil)
