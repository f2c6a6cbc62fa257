package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-critic/internal/fetch"
	"github.com/jonathan/resume-critic/internal/logger"
	"github.com/jonathan/resume-critic/internal/types"
)

// draftTimeout bounds a single generation attempt; past it the request
// falls back to heuristics.
const draftTimeout = 60 * time.Second

// AnalyzeRequest is the body of POST /v1/analyze. Exactly one of JobText
// and JobURL may be set; both empty means a general critique.
type AnalyzeRequest struct {
	ResumeText string `json:"resume_text" validate:"required,min=50"`
	JobText    string `json:"job_text" validate:"omitempty,max=100000"`
	JobURL     string `json:"job_url" validate:"omitempty,url"`
}

// AnalyzeResponse is the success envelope of POST /v1/analyze.
type AnalyzeResponse struct {
	Success    bool            `json:"success"`
	Analysis   *types.Critique `json:"analysis"`
	JobMatched bool            `json:"job_matched"`
	RequestID  string          `json:"request_id"`
	Timestamp  string          `json:"timestamp"`
}

// handleAnalyze produces a critique for the submitted resume. The response
// always carries a schema-valid critique: a generation failure degrades to
// the heuristic fallback rather than an error.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()
	log := s.logger.With(zap.String("request_id", requestID))

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := s.validate.Struct(&req); err != nil {
		log.Info("request validation failed", zap.Error(err))
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}
	if req.JobText != "" && req.JobURL != "" {
		s.errorResponse(w, http.StatusBadRequest, "job_text and job_url are mutually exclusive")
		return
	}

	jobText := req.JobText
	if req.JobURL != "" {
		fetched, err := fetch.JobPosting(r.Context(), req.JobURL, s.useBrowser)
		if err != nil {
			log.Warn("job posting fetch failed", zap.String("url", req.JobURL), zap.Error(err))
			s.errorResponse(w, http.StatusUnprocessableEntity, "failed to fetch job posting")
			return
		}
		jobText = fetched
	}
	jobMatched := strings.TrimSpace(jobText) != ""

	critique := s.critiqueFor(r, log, req.ResumeText, jobText)

	s.jsonResponse(w, http.StatusOK, AnalyzeResponse{
		Success:    true,
		Analysis:   critique,
		JobMatched: jobMatched,
		RequestID:  requestID,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	})
}

// critiqueFor drafts with the collaborator when one is configured and
// repairs the result; otherwise it synthesizes from heuristics. Either
// path ends in the validator, so the output is always canonical.
func (s *Server) critiqueFor(r *http.Request, log *zap.Logger, resumeText, jobText string) *types.Critique {
	var candidate map[string]any

	if s.critic != nil {
		ctx, cancel := context.WithTimeout(r.Context(), draftTimeout)
		defer cancel()

		drafted, schemaValid, err := s.critic.Draft(ctx, resumeText, jobText)
		switch {
		case err != nil:
			log.Warn("draft failed, falling back to heuristics", zap.Error(err))
		case !schemaValid:
			log.Info("draft did not satisfy schema, repairing",
				zap.String("resume_prefix", logger.Truncate(resumeText, 60)))
			candidate = drafted
		default:
			candidate = drafted
		}
	}

	return s.engine.ValidateAndRepair(candidate, resumeText, jobText)
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]any{"success": false, "error": message})
}
