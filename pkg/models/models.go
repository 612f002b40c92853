package models

// CoverageStatus classifies whether a requirement is reflected in the design
type CoverageStatus string

const (
	CoveragePresent CoverageStatus = "Present"
	CoverageMissing CoverageStatus = "Missing"
)

// CoverageRecord represents the match outcome for a single requirement
type CoverageRecord struct {
	Requirement string         `json:"requirement"`
	Coverage    CoverageStatus `json:"coverage"`
	Issue       string         `json:"issue"`
}

// Document represents one parsed input document
type Document struct {
	Filename string   `json:"filename"`
	Items    []string `json:"items"`
}
