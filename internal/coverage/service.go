package coverage

import (
	"github.com/reqcover/reqcover/internal/similarity"
	"github.com/reqcover/reqcover/internal/tfidf"
	"github.com/reqcover/reqcover/pkg/models"
)

// DefaultThreshold is the minimum cosine similarity for a requirement to
// count as covered by the design.
const DefaultThreshold = 0.3

// IssueNotFound is the issue attached to requirements without a design match.
const IssueNotFound = "Requirement not found in design"

// Service matches requirement items against design items
type Service struct {
	threshold float64
}

// NewService creates a new coverage service with the specified threshold.
// If threshold is 0 or negative, uses DefaultThreshold (0.3).
func NewService(threshold float64) *Service {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Service{
		threshold: threshold,
	}
}

// Threshold returns the current default threshold.
func (s *Service) Threshold() float64 {
	return s.threshold
}

// Match reports, for each requirement, whether any design item reaches the
// similarity threshold. Returns one record per requirement in input order.
func (s *Service) Match(requirements, design []string, threshold float64) []models.CoverageRecord {
	// Use service threshold if not specified
	if threshold <= 0 {
		threshold = s.threshold
	}

	records := make([]models.CoverageRecord, len(requirements))
	if len(requirements) == 0 {
		return records
	}

	sims := MaxSimilarities(requirements, design)

	for i, req := range requirements {
		record := models.CoverageRecord{Requirement: req}
		if sims[i] >= threshold {
			record.Coverage = models.CoveragePresent
		} else {
			record.Coverage = models.CoverageMissing
			record.Issue = IssueNotFound
		}
		records[i] = record
	}

	return records
}

// MaxSimilarities returns, for each requirement, the highest cosine
// similarity against any design item. The TF-IDF vocabulary is built fresh
// from requirements and design combined, so scores from different calls are
// not comparable.
func MaxSimilarities(requirements, design []string) []float64 {
	sims := make([]float64, len(requirements))
	if len(requirements) == 0 {
		return sims
	}

	corpus := make([]string, 0, len(requirements)+len(design))
	corpus = append(corpus, requirements...)
	corpus = append(corpus, design...)

	vectors := tfidf.NewVectorizer().FitTransform(corpus)
	reqVectors := vectors[:len(requirements)]
	designVectors := vectors[len(requirements):]

	for i, rv := range reqVectors {
		sims[i] = similarity.MaxSimilarity(rv, designVectors)
	}

	return sims
}
