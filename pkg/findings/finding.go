// Package findings defines the diagnostic records produced by the audit
// engine. A Finding identifies one actionable problem or opportunity in a
// page's structured data, with enough context (schema type, field, entity
// id) for the reader to locate and fix it.
package findings

import "sort"

// Severity indicates the user impact of a finding
type Severity string

const (
	// Critical findings mean the markup is broken and will be ignored
	Critical Severity = "critical"
	// High findings have major rich-result impact
	High Severity = "high"
	// Medium findings carry significant improvement potential
	Medium Severity = "medium"
	// Low findings are nice to have
	Low Severity = "low"
)

// Category groups findings by the kind of problem they report
type Category string

const (
	// Broken covers invalid markup: missing types, required fields, bad formats
	Broken Category = "broken"
	// Structural covers duplicate ids, broken references, orphaned entities
	Structural Category = "structural"
	// Incomplete covers missing recommended fields
	Incomplete Category = "incomplete"
	// MissingSchema covers schemas the page type expects but does not carry
	MissingSchema Category = "missing_schema"
	// Relationships covers entity-connection problems (author, publisher, brand)
	Relationships Category = "relationships"
	// Opportunity covers rich-result and trust-signal suggestions
	Opportunity Category = "opportunity"
)

// Finding is one diagnostic emitted by the rule engine. The ID is a stable
// rule identifier, not unique per instance: two entities missing the same
// field produce two findings with the same ID.
type Finding struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
	Category    Category `json:"category"`
	Impact      string   `json:"impact,omitempty"`
	Fix         string   `json:"fix,omitempty"`
	SchemaType  string   `json:"schemaType,omitempty"`
	Field       string   `json:"field,omitempty"`
	EntityID    string   `json:"entityId,omitempty"`
	RichResult  string   `json:"richResult,omitempty"`
	Priority    int      `json:"priority"`
}

// SortByPriority orders findings by descending priority score. The sort is
// stable: ties keep their emission order, which is part of the report
// contract.
func SortByPriority(fs []Finding) {
	sort.SliceStable(fs, func(i, j int) bool {
		return fs[i].Priority > fs[j].Priority
	})
}

// CountBySeverity tallies findings per severity level.
func CountBySeverity(fs []Finding) map[Severity]int {
	counts := make(map[Severity]int, 4)
	for _, f := range fs {
		counts[f.Severity]++
	}
	return counts
}

// CountByCategory tallies findings per category.
func CountByCategory(fs []Finding) map[Category]int {
	counts := make(map[Category]int)
	for _, f := range fs {
		counts[f.Category]++
	}
	return counts
}
