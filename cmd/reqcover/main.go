// Package main provides the reqcover binary: a command line check of how
// well a design document covers a requirements document.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reqcover/reqcover/internal/analysis"
	"github.com/reqcover/reqcover/internal/coverage"
	"github.com/reqcover/reqcover/internal/logging"
	"github.com/reqcover/reqcover/pkg/models"
)

const version = "0.1.0"

// maxRequirementWidth caps requirement text in table rows, matching the
// report layout of the web view
const maxRequirementWidth = 40

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		requirementsPath string
		designPath       string
		notes            string
		threshold        float64
		asJSON           bool
		withScores       bool
		logLevel         string
	)

	cmd := &cobra.Command{
		Use:   "reqcover",
		Short: "Compare release requirements against a design document",
		Long: `Reqcover splits a requirements document and a design document into
items, then reports for every requirement whether the design contains
semantically similar content.

Documents may be JSON, YAML, or plain text; the format is detected from
the content, never from the file name.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, requirementsPath, designPath, notes, threshold, asJSON, withScores, logLevel)
		},
	}

	cmd.Flags().StringVarP(&requirementsPath, "requirements", "r", "", "Requirements document path")
	cmd.Flags().StringVarP(&designPath, "design", "d", "", "Design document path")
	cmd.Flags().StringVar(&notes, "notes", "", "Additional clarifications, matched as one extra requirement")
	cmd.Flags().Float64VarP(&threshold, "threshold", "t", coverage.DefaultThreshold, "Similarity threshold in (0, 1]")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the full report as JSON")
	cmd.Flags().BoolVar(&withScores, "scores", false, "Add the best similarity score per requirement")
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	_ = cmd.MarkFlagRequired("requirements")
	_ = cmd.MarkFlagRequired("design")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "reqcover version %s\n", version)
		},
	})

	return cmd
}

func run(cmd *cobra.Command, requirementsPath, designPath, notes string, threshold float64, asJSON, withScores bool, logLevel string) error {
	if threshold <= 0 || threshold > 1 {
		return fmt.Errorf("threshold must be in (0, 1], got %v", threshold)
	}

	logger := logging.New(logLevel)

	requirements, err := os.ReadFile(requirementsPath)
	if err != nil {
		return fmt.Errorf("read requirements: %w", err)
	}

	design, err := os.ReadFile(designPath)
	if err != nil {
		return fmt.Errorf("read design: %w", err)
	}

	svc := analysis.NewService(threshold)
	result, err := svc.Analyze(analysis.Request{
		Requirements:     requirements,
		RequirementsName: requirementsPath,
		Design:           design,
		DesignName:       designPath,
		Notes:            notes,
		Threshold:        threshold,
	})
	if err != nil {
		return err
	}

	logger.Info("analysis complete",
		"requirements", len(result.Requirements.Items),
		"design", len(result.Design.Items),
	)

	out := cmd.OutOrStdout()

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result.Records)
	}

	var scores []float64
	if withScores {
		scores = coverage.MaxSimilarities(result.Requirements.Items, result.Design.Items)
	}

	fmt.Fprintln(out, "### Analysis Feedback")
	fmt.Fprint(out, renderTable(result.Records, scores))
	return nil
}

// renderTable formats the coverage report as a markdown table. Requirement
// text is capped at 40 characters; the full text stays available via --json.
func renderTable(records []models.CoverageRecord, scores []float64) string {
	var b strings.Builder

	if scores != nil {
		b.WriteString("| Requirement | Design Coverage | Issue | Score |\n")
		b.WriteString("|-------------|-----------------|-------|-------|\n")
	} else {
		b.WriteString("| Requirement | Design Coverage | Issue |\n")
		b.WriteString("|-------------|-----------------|-------|\n")
	}

	for i, rec := range records {
		requirement := truncate(rec.Requirement, maxRequirementWidth)
		if scores != nil {
			fmt.Fprintf(&b, "| %s | %s | %s | %.2f |\n", requirement, rec.Coverage, rec.Issue, scores[i])
		} else {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", requirement, rec.Coverage, rec.Issue)
		}
	}

	return b.String()
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
