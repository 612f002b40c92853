package analysis

import (
	"fmt"
	"strings"

	"github.com/reqcover/reqcover/internal/coverage"
	"github.com/reqcover/reqcover/internal/parser"
	"github.com/reqcover/reqcover/pkg/models"
)

// Request carries the raw inputs for one coverage analysis
type Request struct {
	Requirements     []byte
	RequirementsName string
	Design           []byte
	DesignName       string
	Notes            string
	Threshold        float64
}

// Result is the outcome of one coverage analysis
type Result struct {
	Requirements models.Document
	Design       models.Document
	Records      []models.CoverageRecord
}

// Service runs the parse and match pipeline
type Service struct {
	coverage *coverage.Service
}

// NewService creates an analysis service with the given default threshold.
// If threshold is 0 or negative, the coverage default is used.
func NewService(threshold float64) *Service {
	return &Service{
		coverage: coverage.NewService(threshold),
	}
}

// Threshold returns the default threshold applied when a request does not
// set one.
func (s *Service) Threshold() float64 {
	return s.coverage.Threshold()
}

// Analyze parses both documents and matches every requirement item against
// the design items. Non-blank notes become one extra requirement item.
// Each call builds a fresh vector space; nothing carries across calls.
func (s *Service) Analyze(req Request) (*Result, error) {
	requirements, err := parser.Parse(req.Requirements)
	if err != nil {
		return nil, fmt.Errorf("parse requirements document: %w", err)
	}

	design, err := parser.Parse(req.Design)
	if err != nil {
		return nil, fmt.Errorf("parse design document: %w", err)
	}

	if notes := strings.TrimSpace(req.Notes); notes != "" {
		requirements = append(requirements, notes)
	}

	records := s.coverage.Match(requirements, design, req.Threshold)

	return &Result{
		Requirements: models.Document{Filename: req.RequirementsName, Items: requirements},
		Design:       models.Document{Filename: req.DesignName, Items: design},
		Records:      records,
	}, nil
}
