package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/reqcover/reqcover/internal/analysis"
	"github.com/reqcover/reqcover/internal/parser"
	"github.com/reqcover/reqcover/pkg/models"
)

// Health check
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// AnalyzeResponse represents the coverage report for one analysis
type AnalyzeResponse struct {
	AnalysisID       string                  `json:"analysis_id"`
	Threshold        float64                 `json:"threshold"`
	RequirementCount int                     `json:"requirement_count"`
	DesignCount      int                     `json:"design_count"`
	Records          []models.CoverageRecord `json:"records"`
}

// handleAnalyze runs a coverage analysis over two uploaded documents
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	// Limit upload size
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)

	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		respondError(w, http.StatusBadRequest, "file too large or invalid form")
		return
	}

	requirements, reqName, err := formFileContent(r, "requirements")
	if err != nil {
		respondError(w, http.StatusBadRequest, "requirements file is required")
		return
	}

	design, designName, err := formFileContent(r, "design")
	if err != nil {
		respondError(w, http.StatusBadRequest, "design file is required")
		return
	}

	// Parse optional threshold parameter
	threshold := s.analysis.Threshold()
	if t := r.FormValue("threshold"); t != "" {
		if parsed, err := strconv.ParseFloat(t, 64); err == nil && parsed > 0 && parsed <= 1 {
			threshold = parsed
		}
	}

	start := time.Now()
	result, err := s.analysis.Analyze(analysis.Request{
		Requirements:     requirements,
		RequirementsName: reqName,
		Design:           design,
		DesignName:       designName,
		Notes:            r.FormValue("notes"),
		Threshold:        threshold,
	})
	s.metrics.analysisDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		s.metrics.analysesTotal.WithLabelValues("error").Inc()
		if errors.Is(err, parser.ErrInvalidEncoding) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error("analysis failed", "error", err)
		respondError(w, http.StatusInternalServerError, "analysis failed")
		return
	}
	s.metrics.analysesTotal.WithLabelValues("ok").Inc()

	analysisID := uuid.NewString()
	s.logger.Info("analysis complete",
		"analysis_id", analysisID,
		"requirements", len(result.Requirements.Items),
		"design", len(result.Design.Items),
		"threshold", threshold,
	)

	respondJSON(w, http.StatusOK, AnalyzeResponse{
		AnalysisID:       analysisID,
		Threshold:        threshold,
		RequirementCount: len(result.Requirements.Items),
		DesignCount:      len(result.Design.Items),
		Records:          result.Records,
	})
}

// formFileContent reads one uploaded file from the multipart form
func formFileContent(r *http.Request, field string) ([]byte, string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, "", err
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, "", err
	}

	return content, header.Filename, nil
}
