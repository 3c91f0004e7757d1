package report

import (
	"fmt"

	"github.com/schemalens/schema-audit/pkg/findings"
	"github.com/schemalens/schema-audit/pkg/knowledge"
)

// Score is the numeric view of the same finding sequence the health
// label is derived from: 100 minus capped per-class deductions, floored
// at 0, with a letter grade.
type Score struct {
	Score   int      `json:"score"`
	Grade   string   `json:"grade"`
	Details []string `json:"details"`
}

// ScoreOf computes the numeric score from the findings and the number of
// schema types found on the page.
func ScoreOf(fs []findings.Finding, schemaCount int, w knowledge.ScoringWeights) Score {
	var errors, warnings, structural, opportunities int
	for _, f := range fs {
		switch {
		case f.Severity == findings.Critical:
			errors++
		case f.Category == findings.Structural:
			structural++
		case f.Severity == findings.High:
			warnings++
		case f.Category == findings.Opportunity && f.Priority >= w.OpportunityThreshold:
			opportunities++
		}
	}

	score := 100
	details := []string{}

	if schemaCount == 0 {
		score -= w.NoSchemaPenalty
		details = append(details, fmt.Sprintf("no structured data found: -%d", w.NoSchemaPenalty))
	}
	if d := capped(errors*w.ErrorPenalty, w.ErrorCap); d > 0 {
		score -= d
		details = append(details, fmt.Sprintf("%d critical error(s): -%d", errors, d))
	}
	if d := capped(warnings*w.WarningPenalty, w.WarningCap); d > 0 {
		score -= d
		details = append(details, fmt.Sprintf("%d warning(s): -%d", warnings, d))
	}
	if d := capped(structural*w.StructuralPenalty, w.StructuralCap); d > 0 {
		score -= d
		details = append(details, fmt.Sprintf("%d structural issue(s): -%d", structural, d))
	}
	if d := capped(opportunities*w.OpportunityPenalty, w.OpportunityCap); d > 0 {
		score -= d
		details = append(details, fmt.Sprintf("%d missed high-priority opportunit(ies): -%d", opportunities, d))
	}
	if score < 0 {
		score = 0
	}

	return Score{Score: score, Grade: gradeOf(score), Details: details}
}

func capped(v, limit int) int {
	if v > limit {
		return limit
	}
	return v
}

func gradeOf(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}
