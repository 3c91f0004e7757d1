// Package report assembles rule-engine findings into the severity-grouped,
// priority-sorted report consumed by callers, plus an optional numeric
// score rollup.
package report

import (
	"github.com/schemalens/schema-audit/pkg/entitygraph"
	"github.com/schemalens/schema-audit/pkg/findings"
	"github.com/schemalens/schema-audit/pkg/identity"
	"github.com/schemalens/schema-audit/pkg/knowledge"
	"github.com/schemalens/schema-audit/pkg/schema"
)

// Health labels, coarsest first.
const (
	HealthBroken    = "broken"
	HealthNeedsWork = "needs_work"
	HealthGood      = "good"
	HealthHealthy   = "healthy"
)

// SeverityCounts carries the per-severity totals.
type SeverityCounts struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

// Grouped buckets findings by severity, each bucket already sorted by
// priority. Buckets are always present, empty slices rather than null.
type Grouped struct {
	Critical []findings.Finding `json:"critical"`
	High     []findings.Finding `json:"high"`
	Medium   []findings.Finding `json:"medium"`
	Low      []findings.Finding `json:"low"`
}

// EntitySummary is the compact identity view of a resolved entity.
type EntitySummary struct {
	ID    string   `json:"id,omitempty"`
	Types []string `json:"types"`
	Name  string   `json:"name,omitempty"`
}

// IdentityView exposes the four resolved identity slots; absent slots
// are null in the JSON output.
type IdentityView struct {
	Organization *EntitySummary `json:"organization"`
	Website      *EntitySummary `json:"website"`
	Page         *EntitySummary `json:"page"`
	Author       *EntitySummary `json:"author"`
}

// GraphView is the serialized relationship graph.
type GraphView struct {
	Entities    []entitygraph.Node `json:"entities"`
	Connections []entitygraph.Edge `json:"connections"`
}

// Report is the full analysis result.
type Report struct {
	PageType        string         `json:"pageType"`
	SchemasFound    []string       `json:"schemasFound"`
	TotalIssues     int            `json:"totalIssues"`
	BySeverity      SeverityCounts `json:"bySeverity"`
	Recommendations Grouped        `json:"recommendations"`
	Identity        IdentityView   `json:"identity"`
	Graph           GraphView      `json:"graph"`
	Health          string         `json:"health"`
	Score           *Score         `json:"score,omitempty"`
}

// Build assembles the report from the finding sequence and the pipeline
// artifacts. The input slice is sorted in place by priority; grouping
// preserves that order within each bucket.
func Build(fs []findings.Finding, pageType string, schemasFound []string, id identity.Identity, graph *entitygraph.Graph, weights knowledge.ScoringWeights) Report {
	findings.SortByPriority(fs)

	grouped := Grouped{
		Critical: []findings.Finding{},
		High:     []findings.Finding{},
		Medium:   []findings.Finding{},
		Low:      []findings.Finding{},
	}
	for _, f := range fs {
		switch f.Severity {
		case findings.Critical:
			grouped.Critical = append(grouped.Critical, f)
		case findings.High:
			grouped.High = append(grouped.High, f)
		case findings.Medium:
			grouped.Medium = append(grouped.Medium, f)
		default:
			grouped.Low = append(grouped.Low, f)
		}
	}

	if schemasFound == nil {
		schemasFound = []string{}
	}

	score := ScoreOf(fs, len(schemasFound), weights)
	return Report{
		PageType:     pageType,
		SchemasFound: schemasFound,
		TotalIssues:  len(fs),
		BySeverity: SeverityCounts{
			Critical: len(grouped.Critical),
			High:     len(grouped.High),
			Medium:   len(grouped.Medium),
			Low:      len(grouped.Low),
		},
		Recommendations: grouped,
		Identity: IdentityView{
			Organization: summarize(id.Organization),
			Website:      summarize(id.Website),
			Page:         summarize(id.Page),
			Author:       summarize(id.Author),
		},
		Graph: GraphView{
			Entities:    graph.Nodes(),
			Connections: graph.Edges(),
		},
		Health: HealthOf(fs),
		Score:  &score,
	}
}

// HealthOf derives the coarse health label: broken on any critical,
// needs_work when more than 3 non-critical high or medium findings
// remain, good when anything at all was found, healthy otherwise.
func HealthOf(fs []findings.Finding) string {
	critical := 0
	attention := 0
	for _, f := range fs {
		switch f.Severity {
		case findings.Critical:
			critical++
		case findings.High, findings.Medium:
			attention++
		}
	}
	switch {
	case critical > 0:
		return HealthBroken
	case attention > 3:
		return HealthNeedsWork
	case len(fs) > 0:
		return HealthGood
	default:
		return HealthHealthy
	}
}

func summarize(e *schema.Entity) *EntitySummary {
	if e == nil {
		return nil
	}
	types := e.Types
	if types == nil {
		types = []string{}
	}
	return &EntitySummary{
		ID:    e.ID,
		Types: types,
		Name:  e.String("name"),
	}
}
